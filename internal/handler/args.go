package handler

import (
	"strconv"
	"strings"
	"time"

	"invtrack/internal/config"
	"invtrack/internal/usecase"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

// 価格は10進数の文字列で受け取る
func parsePrice(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, usecase.NewInventoryError(usecase.KindInvalidInput, "invalid price: "+s, nil)
	}
	if d.IsNegative() {
		return 0, usecase.NewInventoryError(usecase.KindInvalidInput, "price must be >= 0", nil)
	}
	f, _ := d.Float64()
	return f, nil
}

func parseQuantity(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, usecase.NewInventoryError(usecase.KindInvalidQuantity, "invalid quantity: "+s, nil)
	}
	return n, nil
}

// 空ならnil。タイムゾーンのない日付はUTCとして扱う
func parseSince(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return nil, usecase.NewInventoryError(usecase.KindInvalidInput, "invalid --since: "+s, nil)
	}
	t = t.UTC()
	return &t, nil
}

// 表は小数2桁にそろえる。json/csvは保存値をそのまま出す
func formatPrice(format string, p float64) string {
	if format == config.OutputJSON || format == config.OutputCSV {
		return decimal.NewFromFloat(p).String()
	}
	return decimal.NewFromFloat(p).StringFixed(2)
}
