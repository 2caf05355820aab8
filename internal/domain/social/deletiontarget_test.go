package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstagramTarget(t *testing.T) {
	target, err := InstagramTarget("17841400000000001")

	require.NoError(t, err)
	assert.Equal(t, ProviderInstagram, target.Provider())
	assert.Equal(t, "17841400000000001", target.AccountID())
	assert.False(t, target.IsZero())
}

func TestInstagramTarget_EmptyID(t *testing.T) {
	_, err := InstagramTarget("")
	assert.Error(t, err)
}

func TestYoutubeTarget(t *testing.T) {
	target, err := YoutubeTarget("UC123")

	require.NoError(t, err)
	assert.Equal(t, ProviderYoutube, target.Provider())
	assert.Equal(t, "UC123", target.AccountID())
}

func TestYoutubeTarget_EmptyID(t *testing.T) {
	_, err := YoutubeTarget("")
	assert.Error(t, err)
}

func TestDeletionTarget_ZeroValue(t *testing.T) {
	var target DeletionTarget
	assert.True(t, target.IsZero())
}
