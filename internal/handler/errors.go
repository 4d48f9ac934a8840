package handler

import (
	"invtrack/internal/usecase"
)

// プロセスの終了コード。種類ごとに分ける
const (
	ExitOK                = 0
	ExitUsage             = 1
	ExitInvalidInput      = 2
	ExitDuplicateCode     = 3
	ExitProductNotFound   = 4
	ExitInsufficientStock = 5
	ExitInvalidQuantity   = 6
	ExitStorageFailure    = 7
)

// エラーの種類を終了コードに変換する。種類のないエラー（引数の数など）はExitUsage
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	ie, ok := usecase.AsInventoryError(err)
	if !ok {
		return ExitUsage
	}

	switch ie.Kind {
	case usecase.KindInvalidInput:
		return ExitInvalidInput
	case usecase.KindDuplicateCode:
		return ExitDuplicateCode
	case usecase.KindProductNotFound:
		return ExitProductNotFound
	case usecase.KindInsufficientStock:
		return ExitInsufficientStock
	case usecase.KindInvalidQuantity:
		return ExitInvalidQuantity
	case usecase.KindStorageFailure:
		return ExitStorageFailure
	}
	return ExitUsage
}

// 利用者向けのメッセージ
func Message(err error) string {
	if ie, ok := usecase.AsInventoryError(err); ok {
		switch ie.Kind {
		case usecase.KindProductNotFound:
			return "Product not found"
		case usecase.KindInsufficientStock:
			return "Not enough inventory for sale"
		case usecase.KindDuplicateCode:
			return "Product code must be unique"
		}
	}
	return err.Error()
}
