package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linkedAccount(t *testing.T, businessAccountID string) *InstagramAccount {
	t.Helper()
	account, err := NewInstagramAccount(1, "My Shop", "page-1", businessAccountID, "token", "1/instagramAccount/"+businessAccountID+"/profile_picture.jpeg")
	require.NoError(t, err)
	return account
}

func TestFilterLinkedCandidates_ExcludesAlreadyLinked(t *testing.T) {
	candidates := []Candidate{
		{InstagramBusinessAccountID: "17841400000000001", Username: "shop_one"},
		{InstagramBusinessAccountID: "17841400000000002", Username: "shop_two"},
		{InstagramBusinessAccountID: "17841400000000003", Username: "shop_three"},
	}
	linked := []*InstagramAccount{
		linkedAccount(t, "17841400000000002"),
	}

	result := FilterLinkedCandidates(candidates, linked)

	require.Len(t, result, 2)
	assert.Equal(t, "shop_one", result[0].Username)
	assert.Equal(t, "shop_three", result[1].Username)
}

func TestFilterLinkedCandidates_NoLinkedAccounts(t *testing.T) {
	candidates := []Candidate{
		{InstagramBusinessAccountID: "17841400000000001"},
	}

	result := FilterLinkedCandidates(candidates, nil)

	assert.Equal(t, candidates, result)
}

func TestFilterLinkedCandidates_AllLinked(t *testing.T) {
	candidates := []Candidate{
		{InstagramBusinessAccountID: "17841400000000001"},
		{InstagramBusinessAccountID: "17841400000000002"},
	}
	linked := []*InstagramAccount{
		linkedAccount(t, "17841400000000001"),
		linkedAccount(t, "17841400000000002"),
	}

	result := FilterLinkedCandidates(candidates, linked)

	assert.Empty(t, result)
}

func TestFilterLinkedCandidates_EmptyCandidates(t *testing.T) {
	result := FilterLinkedCandidates(nil, []*InstagramAccount{linkedAccount(t, "17841400000000001")})
	assert.Empty(t, result)
}
