package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
	"github.com/seopulse/seopulse-api/internal/testutil"
)

func TestClientRepo_Create_Get_List_Update_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewClientRepo(db)

		owner := createTestUser(t, db)
		other := createTestUser(t, db)

		c, err := repo.Create(ctx, &model.CreateClientRequest{
			Name:    "Acme",
			Domain:  "acme.example",
			OwnerID: owner.ID,
		})
		require.NoError(t, err)
		require.NotEmpty(t, c.ID)
		assert.Equal(t, owner.ID, c.OwnerID)

		got, err := repo.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme", got.Name)

		// listing is scoped per owner
		mine, err := repo.List(ctx, model.ClientsListOptions{OwnerID: owner.ID, Limit: 10})
		require.NoError(t, err)
		require.Len(t, mine, 1)

		theirs, err := repo.List(ctx, model.ClientsListOptions{OwnerID: other.ID, Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, theirs)

		siteURL := "https://www.acme.example"
		updated, err := repo.Update(ctx, c.ID, model.UpdateClientRequest{
			Name:    testutil.StringPtr("Acme Inc"),
			SiteURL: &siteURL,
		})
		require.NoError(t, err)
		assert.Equal(t, "Acme Inc", updated.Name)
		require.NotNil(t, updated.SiteURL)
		assert.Equal(t, siteURL, *updated.SiteURL)
		// untouched field survives a partial update
		assert.Equal(t, "acme.example", updated.Domain)

		ok, err := repo.Delete(ctx, c.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		_, err = repo.GetByID(ctx, c.ID)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestClientRepo_DeleteCascadesPortfolio(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewClientRepo(db)

		owner := createTestUser(t, db)
		client := createTestClient(t, db, owner.ID)

		kw, err := NewKeywordRepo(db).Create(ctx, &model.CreateKeywordRequest{
			ClientID: client.ID,
			Term:     "landing page audit",
		})
		require.NoError(t, err)

		ok, err := repo.Delete(ctx, client.ID)
		require.NoError(t, err)
		require.True(t, ok)

		_, err = NewKeywordRepo(db).GetByID(ctx, kw.ID)
		assert.True(t, apperrors.IsNotFound(err))
	})
}
