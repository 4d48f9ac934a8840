package handler

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"invtrack/internal/config"
	"invtrack/internal/domain/model"
	repo "invtrack/internal/repository"
	"invtrack/internal/usecase"

	"github.com/gocarina/gocsv"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const timeLayout = time.RFC3339

// 出力用の行。json/csvで同じ列名を使う
type productRow struct {
	Code        string `json:"code" csv:"code"`
	Name        string `json:"name" csv:"name"`
	Description string `json:"description" csv:"description"`
	Price       string `json:"price" csv:"price"`
	Quantity    int64  `json:"quantity" csv:"quantity"`
}

type productDetailRow struct {
	Code        string   `json:"code" csv:"code"`
	Name        string   `json:"name" csv:"name"`
	Description string   `json:"description" csv:"description"`
	Price       string   `json:"price" csv:"price"`
	Quantity    int64    `json:"quantity" csv:"quantity"`
	Images      []string `json:"images" csv:"-"`
	//csvでは1列にまとめる
	ImageList string `json:"-" csv:"images"`
}

type transactionRow struct {
	ID          int64  `json:"id" csv:"id"`
	RecordedAt  string `json:"recorded_at" csv:"recorded_at"`
	Kind        string `json:"kind" csv:"kind"`
	ProductCode string `json:"code" csv:"code"`
	ProductName string `json:"name" csv:"name"`
	Quantity    int64  `json:"quantity" csv:"quantity"`
	UnitPrice   string `json:"unit_price" csv:"unit_price"`
	//記録後の在庫（record系のみ）
	Stock *int64 `json:"stock,omitempty" csv:"-"`
}

func toProductRow(format string, p model.Product) productRow {
	return productRow{
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Price:       formatPrice(format, p.Price),
		Quantity:    p.Quantity,
	}
}

func toProductDetailRow(format string, d usecase.ProductDetail) productDetailRow {
	paths := make([]string, 0, len(d.Images))
	for _, img := range d.Images {
		paths = append(paths, img.Path)
	}
	p := toProductRow(format, d.Product)
	return productDetailRow{
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Images:      paths,
		ImageList:   strings.Join(paths, "|"),
	}
}

func toTransactionRow(format string, t repo.TransactionWithProduct) transactionRow {
	return transactionRow{
		ID:          t.ID,
		RecordedAt:  t.RecordedAt.UTC().Format(timeLayout),
		Kind:        string(t.Kind),
		ProductCode: t.ProductCode,
		ProductName: t.ProductName,
		Quantity:    t.Quantity,
		UnitPrice:   formatPrice(format, t.UnitPrice),
	}
}

// formatに応じて書き出す。tableはtable関数に任せる
func render(w io.Writer, format string, v interface{}, rows interface{}, table func(tw *tabwriter.Writer)) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputCSV:
		return gocsv.Marshal(rows, w)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	table(tw)
	return tw.Flush()
}

func writeLine(tw *tabwriter.Writer, cols ...interface{}) {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(tw, strings.Join(parts, "\t"))
}
