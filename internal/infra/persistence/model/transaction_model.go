package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionModel mirrors the 'transactions' table. Times are epoch
// milliseconds, the unit exposed by the ledger API. user_id carries no
// foreign key: ledger rows outlive account deletion.
type TransactionModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount             decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Currency           string          `gorm:"type:varchar(10);not null"`
	Status             string          `gorm:"type:varchar(50);not null"`
	Reference          string          `gorm:"type:varchar(100);uniqueIndex;not null"`
	Narration          *string         `gorm:"type:text"`
	InitiationDateTime int64           `gorm:"column:initiation_date_time;not null;index"`
	CompletionDateTime *int64          `gorm:"column:completion_date_time"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

func (m *TransactionModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
