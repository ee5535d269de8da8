// Package mockdata generates the synthetic creator dataset served when no
// live platform returns results.
package mockdata

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"stormy/internal/core/domain"
)

// DefaultSize is the number of creators generated at startup.
const DefaultSize = 100

var (
	platforms = []domain.Platform{
		domain.PlatformYouTube,
		domain.PlatformTikTok,
		domain.PlatformLinkedIn,
		domain.PlatformInstagram,
		domain.PlatformTwitch,
	}
	niches    = []string{"Tech", "Fashion", "Fitness", "Gaming", "Business", "Food", "Travel", "Beauty"}
	countries = []string{"US", "UK", "Canada", "Australia", "Germany"}
)

// Generate returns n creators with ids creator-1 through creator-n. All
// randomness comes from r so tests can pass a seeded source.
func Generate(r *rand.Rand, n int) []domain.Creator {
	out := make([]domain.Creator, 0, n)
	for i := 1; i <= n; i++ {
		platform := platforms[r.IntN(len(platforms))]
		niche := niches[r.IntN(len(niches))]
		followers := int64(r.IntN(1_000_000) + 10_000)
		handle := fmt.Sprintf("%screator%d", strings.ToLower(niche), i)
		name := fmt.Sprintf("%s Creator %d", niche, i)
		email := handle + "@example.com"

		out = append(out, domain.Creator{
			ID:             fmt.Sprintf("creator-%d", i),
			Platform:       platform,
			Username:       handle,
			DisplayName:    name,
			Bio:            fmt.Sprintf("%s content creator on %s. Sharing tips and insights.", niche, platform),
			ProfileImage:   domain.AvatarURL(name),
			FollowerCount:  followers,
			EngagementRate: domain.Round2(r.Float64()*10 + 1),
			AvgViews:       int64(float64(followers) * (r.Float64()*0.1 + 0.05)),
			Country:        countries[r.IntN(len(countries))],
			Niche:          niche,
			Email:          &email,
			Verified:       r.Float64() > 0.7,
		})
	}
	return out
}

// Dataset is an immutable set of generated creators indexed by id.
type Dataset struct {
	creators []domain.Creator
	byID     map[string]int
}

// NewDataset indexes creators. The slice must not be modified afterwards.
func NewDataset(creators []domain.Creator) *Dataset {
	byID := make(map[string]int, len(creators))
	for i, c := range creators {
		byID[c.ID] = i
	}
	return &Dataset{creators: creators, byID: byID}
}

// Get returns a copy of the creator with the given id.
func (d *Dataset) Get(id string) (domain.Creator, bool) {
	i, ok := d.byID[id]
	if !ok {
		return domain.Creator{}, false
	}
	return d.creators[i], true
}

// Match returns the creators on a platform selected by platformFilter whose
// display name, bio or niche contains text, case-insensitively. An empty
// text matches every creator.
func (d *Dataset) Match(platformFilter, text string) []domain.Creator {
	needle := strings.ToLower(text)
	var out []domain.Creator
	for _, c := range d.creators {
		if !c.Platform.Matches(platformFilter) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(c.DisplayName), needle) &&
			!strings.Contains(strings.ToLower(c.Bio), needle) &&
			!strings.Contains(strings.ToLower(c.Niche), needle) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Len returns the number of creators.
func (d *Dataset) Len() int { return len(d.creators) }
