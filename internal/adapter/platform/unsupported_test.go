package platform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"stormy/internal/core/domain"
)

func TestUnsupportedPlatformsAreEmpty(t *testing.T) {
	tw := NewTwitter(testLogger())
	li := NewLinkedIn(testLogger())

	assert.Equal(t, domain.PlatformTwitter, tw.Platform())
	assert.Equal(t, domain.PlatformLinkedIn, li.Platform())
	assert.Empty(t, tw.Search(context.Background(), "anything", 20))
	assert.Empty(t, li.Search(context.Background(), "anything", 20))
}
