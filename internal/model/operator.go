package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Operator represents a registered sales agent. The registration number
// (matricula) is the business key used to attribute ledger rows.
type Operator struct {
	BaseModel
	Name               string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	RegistrationNumber string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"registration_number" validate:"required"`
	ProfileImage       *string `gorm:"type:varchar(255)" json:"profile_image,omitempty"`
}

// OperatorListResponse wraps a page of operators for the list endpoint
type OperatorListResponse struct {
	Operators  []Operator `json:"operators"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Skip    int   `json:"skip"`
	HasMore bool  `json:"has_more"`
}

// OperatorRanking is one row of the sales ranking aggregation.
// Ordering contract: sales_count DESC, total_amount DESC, registration_number ASC.
type OperatorRanking struct {
	OperatorID         uuid.UUID       `json:"operator_id"`
	Name               string          `json:"name"`
	RegistrationNumber string          `json:"registration_number"`
	ProfileImage       *string         `json:"profile_image,omitempty"`
	SalesCount         int64           `json:"sales_count"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
}
