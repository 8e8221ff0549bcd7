package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Verification statuses
const (
	VerificationPending  = "PENDING"
	VerificationApproved = "APPROVED"
	VerificationRejected = "REJECTED"
)

// TierLimits holds the spend limits derived from a verification tier.
type TierLimits struct {
	Daily   decimal.Decimal
	Monthly decimal.Decimal
}

// Two-tier limit model: unverified users get the default limits,
// approved users get the verified limits.
var (
	UnverifiedLimits = TierLimits{
		Daily:   decimal.NewFromInt(100),
		Monthly: decimal.NewFromInt(1000),
	}
	VerifiedLimits = TierLimits{
		Daily:   decimal.NewFromInt(10000),
		Monthly: decimal.NewFromInt(50000),
	}
)

// LimitsForStatus returns the spend limits for a verification status.
func LimitsForStatus(status string) TierLimits {
	if status == VerificationApproved {
		return VerifiedLimits
	}
	return UnverifiedLimits
}

// UserProfileDB represents a user profile row holding verification tier and spend limits.
type UserProfileDB struct {
	UserID             uuid.UUID       `json:"user_id" db:"user_id"`
	FullName           *string         `json:"full_name" db:"full_name"`
	Country            *string         `json:"country" db:"country"`
	VerificationStatus string          `json:"verification_status" db:"verification_status"`
	DailyLimit         decimal.Decimal `json:"daily_limit" db:"daily_limit"`
	MonthlyLimit       decimal.Decimal `json:"monthly_limit" db:"monthly_limit"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at" db:"updated_at"`
}

// IsVerified reports whether the profile passed KYC review.
func (p *UserProfileDB) IsVerified() bool {
	return p.VerificationStatus == VerificationApproved
}
