package domain

import (
	"encoding/json"
	"slices"
	"time"
)

const (
	// CampaignStatusDraft is the status every new campaign starts in.
	CampaignStatusDraft = "draft"
	// MembershipPending is the status of a creator just added to a campaign.
	MembershipPending = "pending"
)

// Campaign groups creators under a budget. Creators are snapshots taken
// when they were added, not references to live records.
type Campaign struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description,omitempty"`
	Budget         float64           `json:"budget"`
	TargetCriteria TargetCriteria    `json:"targetCriteria"`
	Status         string            `json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
	Creators       []CampaignCreator `json:"creators"`
}

// CampaignCreator is a creator copy tagged with its membership state.
type CampaignCreator struct {
	Creator
	Status  string    `json:"status"`
	AddedAt time.Time `json:"addedAt"`
}

// TargetCriteria is the audience description supplied by the client. It
// is kept verbatim as JSON and not used for matching.
type TargetCriteria = json.RawMessage

// EmptyTargetCriteria is stored when a campaign is created without one.
const EmptyTargetCriteria = `{}`

// HasCreator reports whether a creator with id is already a member.
func (c *Campaign) HasCreator(id string) bool {
	for i := range c.Creators {
		if c.Creators[i].ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot mutate stored state.
func (c Campaign) Clone() Campaign {
	out := c
	out.Creators = make([]CampaignCreator, len(c.Creators))
	for i, cc := range c.Creators {
		out.Creators[i] = cc
		if cc.Email != nil {
			email := *cc.Email
			out.Creators[i].Email = &email
		}
	}
	out.TargetCriteria = slices.Clone(c.TargetCriteria)
	return out
}
