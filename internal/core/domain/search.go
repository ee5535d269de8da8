package domain

// Result provenance reported by a search.
const (
	SourceReal = "real"
	SourceMock = "mock"
)

// SearchQuery describes a creator search. Nil bounds and an empty or "all"
// country disable the corresponding filter.
type SearchQuery struct {
	Query        string
	Platform     string
	MinFollowers *int64
	MaxFollowers *int64
	Country      string
}

// Accepts reports whether c passes the follower bounds and country filter.
func (q SearchQuery) Accepts(c Creator) bool {
	if q.MinFollowers != nil && c.FollowerCount < *q.MinFollowers {
		return false
	}
	if q.MaxFollowers != nil && c.FollowerCount > *q.MaxFollowers {
		return false
	}
	if q.Country != "" && q.Country != PlatformAll && c.Country != q.Country {
		return false
	}
	return true
}
