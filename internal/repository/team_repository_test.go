package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashank123r/Creator-Chart-CMS/internal/repository"
)

func TestPostgresTeamRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresTeamRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("lists the migration-seeded roster in id order", func(t *testing.T) {
		members, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, members, 7)
		assert.Equal(t, "tm1", members[0].ID)
		assert.Equal(t, "Sarah Chen", members[0].Name)
		assert.Equal(t, "Content Manager", members[0].Role)
		assert.Equal(t, "tm7", members[6].ID)
		assert.Equal(t, "Anna Patel", members[6].Name)
	})

	t.Run("gets a member by id", func(t *testing.T) {
		member, err := repo.Get(ctx, "tm3")
		require.NoError(t, err)
		assert.Equal(t, "Emily Rodriguez", member.Name)
		assert.NotEmpty(t, member.Email)
		assert.NotEmpty(t, member.Avatar)
	})

	t.Run("returns ErrNotFound for unknown id", func(t *testing.T) {
		_, err := repo.Get(ctx, "tm99")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
