// file: internals/features/finance/fees/model/fee_model.go
package model

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/crud"
)

const DefaultCurrency = "IDR"

// FeeModel merepresentasikan tabel fees.
// Amount dalam satuan terkecil mata uang (IDR: rupiah).
type FeeModel struct {
	FeeID uuid.UUID `json:"fee_id" gorm:"type:uuid;primaryKey;column:fee_id"`

	FeeLabel    string `json:"fee_label" gorm:"type:varchar(200);not null;column:fee_label" validate:"required,max=200"`
	FeeAmount   int64  `json:"fee_amount" gorm:"type:bigint;not null;default:0;column:fee_amount" validate:"gte=0"`
	FeeCurrency string `json:"fee_currency" gorm:"type:char(3);not null;default:'IDR';column:fee_currency" validate:"omitempty,len=3"`

	crud.Audit `gorm:"embedded;embeddedPrefix:fee_"`
}

func (FeeModel) TableName() string { return "fees" }
