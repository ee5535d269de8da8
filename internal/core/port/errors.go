package port

import "errors"

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrCreatorNotFound  = errors.New("creator not found")
	ErrEmailExists      = errors.New("email already exists")
	// ErrUpstream marks a failed call to a third-party platform.
	ErrUpstream = errors.New("upstream unavailable")
)
