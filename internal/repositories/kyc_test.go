package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosspayhq/wallet-core/internal/models"
)

func TestKYCRepository(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewKYCRepository(db, TxFromContext)
	ctx := context.Background()
	userID := uuid.New()

	country := "KE"
	saved, err := repo.Save(ctx, &models.KYCDocumentDB{
		UserID:          userID,
		DocType:         "passport",
		Country:         &country,
		ExtractedData:   models.Metadata{"full_name": "Wanjiru Kamau", "document_number": "AK0123456"},
		ConfidenceScore: 42.0,
		Status:          models.KYCPending,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.DocumentID)
	assert.Equal(t, models.KYCPending, saved.Status)
	assert.Nil(t, saved.ReviewedBy)
	assert.Nil(t, saved.ReviewedAt)
	assert.Equal(t, "Wanjiru Kamau", saved.ExtractedData["full_name"])

	t.Run("get", func(t *testing.T) {
		doc, err := repo.Get(ctx, saved.DocumentID)
		require.NoError(t, err)
		assert.Equal(t, userID, doc.UserID)
		assert.Equal(t, "passport", doc.DocType)
		assert.InDelta(t, 42.0, doc.ConfidenceScore, 0.0001)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := repo.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrDocumentNotFound)
	})

	t.Run("set review", func(t *testing.T) {
		reviewer := uuid.New()
		require.NoError(t, repo.SetReview(ctx, saved.DocumentID, models.KYCApproved, reviewer))

		doc, err := repo.Get(ctx, saved.DocumentID)
		require.NoError(t, err)
		assert.Equal(t, models.KYCApproved, doc.Status)
		require.NotNil(t, doc.ReviewedBy)
		assert.Equal(t, reviewer, *doc.ReviewedBy)
		require.NotNil(t, doc.ReviewedAt)
		assert.WithinDuration(t, time.Now().UTC(), *doc.ReviewedAt, time.Minute)
	})

	t.Run("set review missing", func(t *testing.T) {
		err := repo.SetReview(ctx, uuid.New(), models.KYCRejected, uuid.New())
		assert.ErrorIs(t, err, ErrDocumentNotFound)
	})
}

func TestKYCRepository_ListPending(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewKYCRepository(db, TxFromContext)
	ctx := context.Background()

	submit := func(status string) *models.KYCDocumentDB {
		t.Helper()
		doc, err := repo.Save(ctx, &models.KYCDocumentDB{
			UserID:  uuid.New(),
			DocType: "national_id",
			Status:  status,
		})
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond) // distinct created_at for ordering
		return doc
	}

	first := submit(models.KYCPending)
	submit(models.KYCApproved)
	second := submit(models.KYCPending)

	docs, err := repo.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	// Oldest submission reviewed first.
	assert.Equal(t, first.DocumentID, docs[0].DocumentID)
	assert.Equal(t, second.DocumentID, docs[1].DocumentID)

	docs, err = repo.ListPending(ctx, 1)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, first.DocumentID, docs[0].DocumentID)
}
