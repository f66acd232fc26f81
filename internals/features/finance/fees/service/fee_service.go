// file: internals/features/finance/fees/service/fee_service.go
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/crud"
	"schoolku_backend/internals/features/finance/fees/model"
)

var Definition = crud.Definition[model.FeeModel, uuid.UUID]{
	Name:      "fee",
	Audit:     func(m *model.FeeModel) *crud.Audit { return &m.Audit },
	KeyOf:     func(m *model.FeeModel) uuid.UUID { return m.FeeID },
	NewKey:    func(m *model.FeeModel) { crud.AssignUUID(&m.FeeID) },
	KeyParams: "/:id",
	ParseKey:  crud.ParseUUIDParam("id"),
	KeyWhere:  crud.WhereUUID("fee_id"),
	Check:     checkFee,
	Prepare:   prepareFee,
	SortColumns: map[string]string{
		"label":        "fee_label",
		"amount":       "fee_amount",
		"created_date": "fee_created_date",
		"updated_date": "fee_updated_date",
	},
	DefaultSort: "created_date",
}

func NewFeeService(store crud.Storage[model.FeeModel, uuid.UUID]) *crud.Service[model.FeeModel, uuid.UUID] {
	return crud.NewService(Definition, store, nil)
}

func checkFee(m *model.FeeModel) map[string]string {
	if strings.TrimSpace(m.FeeLabel) == "" && m.FeeLabel != "" {
		return map[string]string{"fee_label": "is required"}
	}
	for _, r := range m.FeeCurrency {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return map[string]string{"fee_currency": "must be a 3-letter code"}
		}
	}
	return nil
}

func prepareFee(_ context.Context, m *model.FeeModel, _ *model.FeeModel) error {
	m.FeeLabel = strings.TrimSpace(m.FeeLabel)
	m.FeeCurrency = strings.ToUpper(strings.TrimSpace(m.FeeCurrency))
	if m.FeeCurrency == "" {
		m.FeeCurrency = model.DefaultCurrency
	}
	return nil
}
