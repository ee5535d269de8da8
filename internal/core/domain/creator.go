package domain

import (
	"math"
	"net/url"
	"strings"
)

// Platform names a social network or newsletter host a creator publishes on.
type Platform string

const (
	PlatformYouTube   Platform = "YouTube"
	PlatformTikTok    Platform = "TikTok"
	PlatformInstagram Platform = "Instagram"
	PlatformTwitch    Platform = "Twitch"
	PlatformSubstack  Platform = "Substack"
	PlatformTwitter   Platform = "Twitter"
	PlatformLinkedIn  Platform = "LinkedIn"
)

// PlatformAll is the filter value selecting every platform.
const PlatformAll = "all"

// Platforms lists every known platform in search order.
var Platforms = []Platform{
	PlatformYouTube,
	PlatformTikTok,
	PlatformInstagram,
	PlatformTwitch,
	PlatformSubstack,
	PlatformTwitter,
	PlatformLinkedIn,
}

// ParsePlatform resolves a single platform from a user supplied name. It
// reports false for empty, "all" and unknown names.
func ParsePlatform(name string) (Platform, bool) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, PlatformAll) {
		return "", false
	}
	for _, p := range Platforms {
		if p.Matches(name) {
			return p, true
		}
	}
	return "", false
}

// Matches reports whether the platform is selected by a user supplied
// filter. The comparison is case-insensitive, an empty filter or "all"
// selects everything and "x" is accepted as an alias for Twitter.
func (p Platform) Matches(filter string) bool {
	f := strings.ToLower(strings.TrimSpace(filter))
	if f == "" || f == PlatformAll {
		return true
	}
	if p == PlatformTwitter && f == "x" {
		return true
	}
	return strings.ToLower(string(p)) == f
}

// Creator is the normalised record every platform adapter produces. IDs are
// platform native, so the same person on two platforms yields two records.
type Creator struct {
	ID             string   `json:"id"`
	Platform       Platform `json:"platform"`
	Username       string   `json:"username"`
	DisplayName    string   `json:"displayName"`
	Bio            string   `json:"bio"`
	ProfileImage   string   `json:"profileImage"`
	ProfileURL     string   `json:"profileUrl"`
	FollowerCount  int64    `json:"followerCount"`
	TotalPosts     int64    `json:"totalPosts"`
	TotalViews     int64    `json:"totalViews"`
	EngagementRate float64  `json:"engagementRate"` // percentage
	AvgViews       int64    `json:"avgViews"`
	AvgLikes       int64    `json:"avgLikes"`
	Country        string   `json:"country"`
	Niche          string   `json:"niche"`
	Verified       bool     `json:"verified"`
	Email          *string  `json:"email"`
	// IsReal is false for generated records and for records whose
	// metrics were partly synthesised.
	IsReal bool `json:"isReal"`
}

// CreatorRef names a creator to resolve. Ids are only unique within a
// platform; an empty Platform accepts any.
type CreatorRef struct {
	ID       string
	Platform Platform
}

// Accepts reports whether p satisfies the reference's platform.
func (r CreatorRef) Accepts(p Platform) bool {
	return r.Platform == "" || r.Platform == p
}

// UnknownCountry is used when a platform does not expose a location.
const UnknownCountry = "Unknown"

// EngagementRate returns avg/followers as a percentage rounded to two
// decimals, or 0 when the follower count is not positive.
func EngagementRate(avg, followers int64) float64 {
	if followers <= 0 {
		return 0
	}
	return Round2(float64(avg) / float64(followers) * 100)
}

// Round2 rounds f to two decimal places.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// AvatarURL returns a generated placeholder avatar keyed by name.
func AvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}
