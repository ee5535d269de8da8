package domain

import "time"

const (
	PlanFree       = "free"
	DefaultCredits = 25
)

// User is a registered account. It is not linked to campaigns and carries
// no session.
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FullName         string    `json:"fullName"`
	Company          string    `json:"company"`
	PlanTier         string    `json:"planTier"`
	CreditsRemaining int       `json:"creditsRemaining"`
	PasswordHash     string    `json:"-"`
	CreatedAt        time.Time `json:"createdAt"`
}
