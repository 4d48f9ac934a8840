package validator

import (
	"errors"
	"fmt"
	"strings"

	"invtrack/internal/usecase"

	"github.com/go-playground/validator/v10"
)

type inventoryValidator struct {
	validate *validator.Validate
}

// Usecaseは interface を依存注入
func NewInventoryValidator() usecase.InventoryValidator {
	return &inventoryValidator{validate: validator.New()}
}

// 商品登録の入力を検証
func (v *inventoryValidator) ValidateRegisterProduct(in usecase.RegisterProductInput) error {
	return v.check(in)
}

// 画像の紐づけ。ファイルの存在は見ない
func (v *inventoryValidator) ValidateAttachImage(code string, path string) error {
	if strings.TrimSpace(code) == "" {
		return usecase.NewInventoryError(usecase.KindInvalidInput, "product code is required", nil)
	}
	if strings.TrimSpace(path) == "" {
		return usecase.NewInventoryError(usecase.KindInvalidInput, "image path is required", nil)
	}
	return nil
}

// 入出庫の入力を検証
func (v *inventoryValidator) ValidateRecordTransaction(in usecase.RecordTransactionInput) error {
	return v.check(in)
}

func (v *inventoryValidator) check(in interface{}) error {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return usecase.NewInventoryError(usecase.KindInvalidInput, "invalid input", err)
	}

	//数量の誤りは専用の種類で返す
	for _, e := range verrs {
		if strings.HasSuffix(e.Field(), "Quantity") {
			return usecase.NewInventoryError(usecase.KindInvalidQuantity, formatFieldError(e), nil)
		}
	}
	return usecase.NewInventoryError(usecase.KindInvalidInput, formatFieldError(verrs[0]), nil)
}

func formatFieldError(e validator.FieldError) string {
	field := fieldName(e.Field())
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be > %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, e.Param())
	}
	return field + " is invalid"
}

// UnitPrice -> unit price
func fieldName(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
