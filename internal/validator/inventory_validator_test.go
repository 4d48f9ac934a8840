package validator

import (
	"testing"

	"invtrack/internal/domain/model"
	"invtrack/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegisterProduct(t *testing.T) {
	v := NewInventoryValidator()

	assert.NoError(t, v.ValidateRegisterProduct(usecase.RegisterProductInput{Code: "SKU1", Name: "Widget", Price: 0}))

	err := v.ValidateRegisterProduct(usecase.RegisterProductInput{Code: "", Price: 1})
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
	assert.EqualError(t, err, "code is required")

	err = v.ValidateRegisterProduct(usecase.RegisterProductInput{Code: "SKU1", Price: -0.5})
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
	assert.EqualError(t, err, "price must be >= 0")

	err = v.ValidateRegisterProduct(usecase.RegisterProductInput{Code: "SKU1", InitialQuantity: -1})
	assert.ErrorIs(t, err, usecase.ErrInvalidQuantity)
}

func TestValidateRecordTransaction(t *testing.T) {
	v := NewInventoryValidator()
	price := 12.0
	negative := -1.0

	assert.NoError(t, v.ValidateRecordTransaction(usecase.RecordTransactionInput{
		Code: "SKU1", Kind: model.TransactionKindSale, Quantity: 1, UnitPrice: &price,
	}))
	assert.NoError(t, v.ValidateRecordTransaction(usecase.RecordTransactionInput{
		Code: "SKU1", Kind: model.TransactionKindPurchase, Quantity: 1,
	}))

	cases := map[string]struct {
		in   usecase.RecordTransactionInput
		want error
	}{
		"zero quantity":     {usecase.RecordTransactionInput{Code: "SKU1", Kind: model.TransactionKindPurchase, Quantity: 0}, usecase.ErrInvalidQuantity},
		"negative quantity": {usecase.RecordTransactionInput{Code: "SKU1", Kind: model.TransactionKindSale, Quantity: -3}, usecase.ErrInvalidQuantity},
		"unknown kind":      {usecase.RecordTransactionInput{Code: "SKU1", Kind: "refund", Quantity: 1}, usecase.ErrInvalidInput},
		"negative price":    {usecase.RecordTransactionInput{Code: "SKU1", Kind: model.TransactionKindSale, Quantity: 1, UnitPrice: &negative}, usecase.ErrInvalidInput},
		"missing code":      {usecase.RecordTransactionInput{Kind: model.TransactionKindSale, Quantity: 1}, usecase.ErrInvalidInput},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, v.ValidateRecordTransaction(tc.in), tc.want)
		})
	}
}

func TestValidateAttachImage(t *testing.T) {
	v := NewInventoryValidator()

	assert.NoError(t, v.ValidateAttachImage("SKU1", "/tmp/a.png"))
	assert.ErrorIs(t, v.ValidateAttachImage("SKU1", " "), usecase.ErrInvalidInput)
	assert.ErrorIs(t, v.ValidateAttachImage("", "a.png"), usecase.ErrInvalidInput)
}

func TestFieldName(t *testing.T) {
	assert.Equal(t, "unit price", fieldName("UnitPrice"))
	assert.Equal(t, "initial quantity", fieldName("InitialQuantity"))
}
