package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultProduct is assigned when the ledger row leaves the product cell empty
const DefaultProduct = "Pix"

// Sale is one PIX transaction attributed to an operator. Rows are created
// exclusively in bulk by the ingestion pipeline and never edited one by one.
// OperatorRegistration keeps the raw matricula from the source file so the
// record stays meaningful if the operator is later renumbered.
type Sale struct {
	BaseModel
	OperatorID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"operator_id" validate:"uuid_required"`
	Operator             *Operator       `gorm:"foreignKey:OperatorID" json:"operator,omitempty" validate:"-"`
	OperatorRegistration string          `gorm:"type:varchar(50);not null;index" json:"operator_registration" validate:"required"`
	SaleDate             time.Time       `gorm:"type:date;not null;index" json:"sale_date" validate:"required"`
	Amount               decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Product              string          `gorm:"type:varchar(100);not null;default:'Pix'" json:"product"`
}

// SaleWithOperator is a recent-sales feed row enriched with the owner's name
type SaleWithOperator struct {
	ID                   uuid.UUID       `json:"id"`
	SaleDate             time.Time       `json:"sale_date"`
	Amount               decimal.Decimal `json:"amount"`
	Product              string          `json:"product"`
	OperatorName         string          `json:"operator_name"`
	OperatorRegistration string          `json:"operator_registration"`
	CreatedAt            time.Time       `json:"created_at"`
}

// SalesSummary totals the rows matching a report filter
type SalesSummary struct {
	TotalSales  int64           `json:"total_sales"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
