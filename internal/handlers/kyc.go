package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/crosspayhq/wallet-core/internal/logger"
	"github.com/crosspayhq/wallet-core/internal/middlewares"
	"github.com/crosspayhq/wallet-core/internal/models"
)

// KYCService defines the interface that the service must implement.
type KYCService interface {
	SubmitKYC(ctx context.Context, userID uuid.UUID, docType string, country *string, extracted models.Metadata, confidence float64) (*models.KYCDocumentDB, error)
	ReviewKYC(ctx context.Context, documentID, reviewerID uuid.UUID, approve bool) (*models.KYCDocumentDB, error)
	ListPendingKYC(ctx context.Context, limit int) ([]models.KYCDocumentDB, error)
}

// SubmitKYCRequest represents the JSON body for submitting a KYC document
// swagger:model SubmitKYCRequest
type SubmitKYCRequest struct {
	// Document type
	// required: true
	// default: passport
	DocType string `json:"doc_type"`

	// Issuing country
	Country *string `json:"country,omitempty"`

	// Fields extracted from the document
	ExtractedData models.Metadata `json:"extracted_data,omitempty"`

	// Extraction confidence score, 0-100
	// required: true
	ConfidenceScore float64 `json:"confidence_score"`
}

// KYCDocumentResponse represents a KYC document
// swagger:model KYCDocumentResponse
type KYCDocumentResponse struct {
	// Document identifier
	DocumentID string `json:"document_id"`

	// Owner of the document
	UserID string `json:"user_id"`

	// Document type
	DocType string `json:"doc_type"`

	// PENDING, APPROVED or REJECTED
	Status string `json:"status"`

	// Extraction confidence score
	ConfidenceScore float64 `json:"confidence_score"`

	// Creation timestamp, RFC 3339
	CreatedAt string `json:"created_at"`
}

// ReviewKYCRequest represents the JSON body for reviewing a KYC document
// swagger:model ReviewKYCRequest
type ReviewKYCRequest struct {
	// Whether to approve the document
	// required: true
	Approve bool `json:"approve"`
}

// PendingKYCResponse represents documents awaiting manual review
// swagger:model PendingKYCResponse
type PendingKYCResponse struct {
	// Pending documents, oldest first
	Documents []KYCDocumentResponse `json:"documents"`
}

func kycDocumentResponse(doc *models.KYCDocumentDB) KYCDocumentResponse {
	return KYCDocumentResponse{
		DocumentID:      doc.DocumentID.String(),
		UserID:          doc.UserID.String(),
		DocType:         doc.DocType,
		Status:          doc.Status,
		ConfidenceScore: doc.ConfidenceScore,
		CreatedAt:       doc.CreatedAt.Format(time.RFC3339),
	}
}

// NewSubmitKYCHandler returns an HTTP handler for submitting a KYC document.
// @Summary Submit KYC document
// @Description Store a KYC document. High-confidence extractions are approved automatically and upgrade the user's spend limits.
// @Tags kyc
// @Accept json
// @Produce json
// @Param request body handlers.SubmitKYCRequest true "Submit KYC Request"
// @Success 201 {object} handlers.KYCDocumentResponse "Document stored"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /kyc [post]
// @Security BearerAuth
func NewSubmitKYCHandler(svc KYCService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.ClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req SubmitKYCRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode kyc request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.DocType == "" {
			writeError(w, http.StatusBadRequest, "Document type is required")
			return
		}

		doc, err := svc.SubmitKYC(ctx, claims.UserID, req.DocType, req.Country, req.ExtractedData, req.ConfidenceScore)
		if err != nil {
			logger.Log.Errorw("failed to submit kyc document", "userID", claims.UserID, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, kycDocumentResponse(doc))
	}
}

// NewReviewKYCHandler returns an admin-only HTTP handler for reviewing a
// pending KYC document.
// @Summary Review KYC document
// @Description Approve or reject a document. The document status and the owner's verification tier change together. Admin only.
// @Tags kyc
// @Accept json
// @Produce json
// @Param document_id path string true "Document ID"
// @Param request body handlers.ReviewKYCRequest true "Review KYC Request"
// @Success 200 {object} handlers.KYCDocumentResponse "Document reviewed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Document not found"
// @Router /admin/kyc/{document_id}/review [post]
// @Security BearerAuth
func NewReviewKYCHandler(svc KYCService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.ClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !claims.IsAdmin {
			writeError(w, http.StatusForbidden, "Forbidden")
			return
		}

		documentID, err := uuid.Parse(chi.URLParam(r, "document_id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid document id")
			return
		}

		var req ReviewKYCRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode review request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		doc, err := svc.ReviewKYC(ctx, documentID, claims.UserID, req.Approve)
		if err != nil {
			logger.Log.Errorw("failed to review kyc document",
				"documentID", documentID, "reviewerID", claims.UserID, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, kycDocumentResponse(doc))
	}
}

// NewPendingKYCHandler returns an admin-only HTTP handler listing documents
// awaiting manual review.
// @Summary List pending KYC documents
// @Description Return documents awaiting manual review, oldest first. Admin only.
// @Tags kyc
// @Produce json
// @Param limit query int false "Maximum documents to return" default(50)
// @Success 200 {object} handlers.PendingKYCResponse "Pending documents"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /admin/kyc/pending [get]
// @Security BearerAuth
func NewPendingKYCHandler(svc KYCService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.ClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !claims.IsAdmin {
			writeError(w, http.StatusForbidden, "Forbidden")
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		docs, err := svc.ListPendingKYC(ctx, limit)
		if err != nil {
			logger.Log.Errorw("failed to list pending kyc documents", "error", err)
			writeServiceError(w, err)
			return
		}

		items := make([]KYCDocumentResponse, 0, len(docs))
		for i := range docs {
			items = append(items, kycDocumentResponse(&docs[i]))
		}

		writeJSON(w, http.StatusOK, PendingKYCResponse{Documents: items})
	}
}
