package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/crosspayhq/wallet-core/internal/logger"
	"github.com/crosspayhq/wallet-core/internal/models"
)

// KYCRepository stores submitted KYC documents and their review state.
type KYCRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewKYCRepository creates a KYC document repository.
func NewKYCRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *KYCRepository {
	return &KYCRepository{db: db, txGetter: txGetter}
}

func (r *KYCRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a submitted document with the collaborator's extraction output.
func (r *KYCRepository) Save(ctx context.Context, doc *models.KYCDocumentDB) (*models.KYCDocumentDB, error) {
	query := `
		INSERT INTO kyc_documents (document_id, user_id, doc_type, country, extracted_data, confidence_score, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING document_id, user_id, doc_type, country, extracted_data, confidence_score, status, reviewed_by, reviewed_at, created_at
	`

	var saved models.KYCDocumentDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query,
		uuid.New(), doc.UserID, doc.DocType, doc.Country, doc.ExtractedData, doc.ConfidenceScore, doc.Status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{doc.UserID, doc.DocType, doc.Status},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Get fetches one document. Returns ErrDocumentNotFound when absent.
func (r *KYCRepository) Get(ctx context.Context, documentID uuid.UUID) (*models.KYCDocumentDB, error) {
	const query = `
		SELECT document_id, user_id, doc_type, country, extracted_data, confidence_score, status, reviewed_by, reviewed_at, created_at
		FROM kyc_documents
		WHERE document_id = $1
	`

	var doc models.KYCDocumentDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &doc, query, documentID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{documentID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// SetReview records a manual review decision with reviewer identity and timestamp.
func (r *KYCRepository) SetReview(ctx context.Context, documentID uuid.UUID, status string, reviewedBy uuid.UUID) error {
	query := `
		UPDATE kyc_documents
		SET status = $2, reviewed_by = $3, reviewed_at = NOW()
		WHERE document_id = $1
	`
	args := []any{documentID, status, reviewedBy}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

// ListPending returns documents awaiting manual review, oldest first.
func (r *KYCRepository) ListPending(ctx context.Context, limit int) ([]models.KYCDocumentDB, error) {
	const query = `
		SELECT document_id, user_id, doc_type, country, extracted_data, confidence_score, status, reviewed_by, reviewed_at, created_at
		FROM kyc_documents
		WHERE status = 'PENDING'
		ORDER BY created_at ASC
		LIMIT $1
	`

	var docs []models.KYCDocumentDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &docs, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(docs),
		"error", err,
	)

	return docs, err
}
