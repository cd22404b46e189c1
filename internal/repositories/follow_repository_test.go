package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtkhuong/warbler/internal/models"
	"github.com/dtkhuong/warbler/internal/repositories"
)

func TestFollowAndUnfollow(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewFollowRepository(db)

	alice := newTestUser(t, db, "alice")
	bob := newTestUser(t, db, "bob")

	require.NoError(t, repo.Follow(alice.ID, bob.ID))

	following, err := repo.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	followedBy, err := repo.IsFollowedBy(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, followedBy)

	// the edge is directed
	reverse, err := repo.IsFollowing(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, reverse)

	require.NoError(t, repo.Unfollow(alice.ID, bob.ID))

	following, err = repo.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	followedBy, err = repo.IsFollowedBy(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, followedBy)
}

func TestFollowTwiceKeepsOneEdge(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewFollowRepository(db)

	alice := newTestUser(t, db, "alice")
	bob := newTestUser(t, db, "bob")

	require.NoError(t, repo.Follow(alice.ID, bob.ID))
	require.NoError(t, repo.Follow(alice.ID, bob.ID))

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSelfFollowRejected(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewFollowRepository(db)

	alice := newTestUser(t, db, "alice")
	require.ErrorIs(t, repo.Follow(alice.ID, alice.ID), repositories.ErrSelfFollow)
}

func TestFollowMissingUser(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewFollowRepository(db)

	alice := newTestUser(t, db, "alice")
	require.ErrorIs(t, repo.Follow(alice.ID, 999), repositories.ErrNotFound)
}

func TestUnfollowMissingEdgeIsNoop(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewFollowRepository(db)

	alice := newTestUser(t, db, "alice")
	bob := newTestUser(t, db, "bob")

	require.NoError(t, repo.Unfollow(alice.ID, bob.ID))
}

func TestFollowingAndFollowers(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewFollowRepository(db)

	alice := newTestUser(t, db, "alice")
	bob := newTestUser(t, db, "bob")
	carol := newTestUser(t, db, "carol")

	require.NoError(t, repo.Follow(alice.ID, bob.ID))
	require.NoError(t, repo.Follow(alice.ID, carol.ID))
	require.NoError(t, repo.Follow(carol.ID, bob.ID))

	following, err := repo.Following(alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 2)

	followers, err := repo.Followers(bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)

	ids, err := repo.FollowingIDs(alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{bob.ID, carol.ID}, ids)
}
