package models

import (
	"time"

	"github.com/google/uuid"
)

// KYC document review statuses
const (
	KYCPending  = "PENDING"
	KYCApproved = "APPROVED"
	KYCRejected = "REJECTED"
)

// KYCDocumentDB represents a submitted KYC document. The extracted field map
// and confidence score come from the OCR collaborator; the core only consumes
// the resulting status transition.
type KYCDocumentDB struct {
	DocumentID      uuid.UUID  `json:"document_id" db:"document_id"`
	UserID          uuid.UUID  `json:"user_id" db:"user_id"`
	DocType         string     `json:"doc_type" db:"doc_type"`
	Country         *string    `json:"country" db:"country"`
	ExtractedData   Metadata   `json:"extracted_data" db:"extracted_data"`
	ConfidenceScore float64    `json:"confidence_score" db:"confidence_score"`
	Status          string     `json:"status" db:"status"`
	ReviewedBy      *uuid.UUID `json:"reviewed_by" db:"reviewed_by"`
	ReviewedAt      *time.Time `json:"reviewed_at" db:"reviewed_at"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}
