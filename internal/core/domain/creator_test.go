package domain

import "testing"

func TestPlatformMatches(t *testing.T) {
	cases := []struct {
		p      Platform
		filter string
		want   bool
	}{
		{PlatformYouTube, "", true},
		{PlatformYouTube, "all", true},
		{PlatformYouTube, "ALL", true},
		{PlatformYouTube, "youtube", true},
		{PlatformYouTube, "tiktok", false},
		{PlatformTwitter, "x", true},
		{PlatformTwitter, "twitter", true},
		{PlatformLinkedIn, "x", false},
	}
	for _, c := range cases {
		if got := c.p.Matches(c.filter); got != c.want {
			t.Errorf("%s.Matches(%q) = %v, want %v", c.p, c.filter, got, c.want)
		}
	}
}

func TestEngagementRate(t *testing.T) {
	if got := EngagementRate(50, 1000); got != 5 {
		t.Fatalf("got %v, want 5", got)
	}
	if got := EngagementRate(1, 3); got != 33.33 {
		t.Fatalf("got %v, want 33.33", got)
	}
	if got := EngagementRate(10, 0); got != 0 {
		t.Fatalf("zero followers: got %v, want 0", got)
	}
}

func TestSearchQueryAccepts(t *testing.T) {
	lo, hi := int64(100), int64(1000)
	q := SearchQuery{MinFollowers: &lo, MaxFollowers: &hi, Country: "US"}

	if !q.Accepts(Creator{FollowerCount: 100, Country: "US"}) {
		t.Fatal("lower bound should be inclusive")
	}
	if !q.Accepts(Creator{FollowerCount: 1000, Country: "US"}) {
		t.Fatal("upper bound should be inclusive")
	}
	if q.Accepts(Creator{FollowerCount: 99, Country: "US"}) {
		t.Fatal("below min accepted")
	}
	if q.Accepts(Creator{FollowerCount: 500, Country: "UK"}) {
		t.Fatal("wrong country accepted")
	}
	if !(SearchQuery{Country: "all"}).Accepts(Creator{Country: "UK"}) {
		t.Fatal("country all should not filter")
	}
}

func TestCampaignCloneIsDeep(t *testing.T) {
	email := "a@example.com"
	c := Campaign{
		ID:             "c1",
		TargetCriteria: TargetCriteria(`{"niche":"Tech"}`),
		Creators:       []CampaignCreator{{Creator: Creator{ID: "x", Email: &email}}},
	}
	cp := c.Clone()
	cp.Creators[0].DisplayName = "changed"
	*cp.Creators[0].Email = "b@example.com"
	cp.TargetCriteria[2] = 'N'

	if c.Creators[0].DisplayName != "" || *c.Creators[0].Email != "a@example.com" {
		t.Fatal("clone shares state with original")
	}
	if string(c.TargetCriteria) != `{"niche":"Tech"}` {
		t.Fatalf("clone shares target criteria: %s", c.TargetCriteria)
	}
	if !c.HasCreator("x") || c.HasCreator("y") {
		t.Fatal("HasCreator mismatch")
	}
}

func TestParsePlatform(t *testing.T) {
	cases := []struct {
		in   string
		want Platform
		ok   bool
	}{
		{"TikTok", PlatformTikTok, true},
		{" youtube ", PlatformYouTube, true},
		{"x", PlatformTwitter, true},
		{"", "", false},
		{"all", "", false},
		{"myspace", "", false},
	}
	for _, c := range cases {
		got, ok := ParsePlatform(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParsePlatform(%q) = %q, %v; want %q, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestCreatorRefAccepts(t *testing.T) {
	if !(CreatorRef{ID: "1"}).Accepts(PlatformTwitch) {
		t.Fatal("empty platform should accept any")
	}
	ref := CreatorRef{ID: "1", Platform: PlatformTikTok}
	if !ref.Accepts(PlatformTikTok) || ref.Accepts(PlatformTwitch) {
		t.Fatal("platform mismatch accepted")
	}
}
