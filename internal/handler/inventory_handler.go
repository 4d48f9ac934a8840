package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"invtrack/internal/domain/model"
	"invtrack/internal/usecase"

	"github.com/spf13/afero"
)

// コマンドの引数をusecaseに渡して結果を出力する
type InventoryHandler struct {
	uc     *usecase.InventoryUsecase
	fs     afero.Fs
	out    io.Writer
	format string
}

// DI
func NewInventoryHandler(uc *usecase.InventoryUsecase, fs afero.Fs, out io.Writer, format string) *InventoryHandler {
	return &InventoryHandler{uc: uc, fs: fs, out: out, format: format}
}

func (h *InventoryHandler) InitializeStore(ctx context.Context) error {
	if err := h.uc.InitializeStore(ctx); err != nil {
		return err
	}
	fmt.Fprintln(h.out, "Database initialized")
	return nil
}

// CODE NAME DESC PRICE [QTY]
func (h *InventoryHandler) RegisterProduct(ctx context.Context, args []string) error {
	price, err := parsePrice(args[3])
	if err != nil {
		return err
	}
	var qty int64
	if len(args) > 4 {
		if qty, err = parseQuantity(args[4]); err != nil {
			return err
		}
	}

	p, err := h.uc.RegisterProduct(ctx, usecase.RegisterProductInput{
		Code:            args[0],
		Name:            args[1],
		Description:     args[2],
		Price:           price,
		InitialQuantity: qty,
	})
	if err != nil {
		return err
	}

	row := toProductRow(h.format, p)
	return render(h.out, h.format, row, []productRow{row}, func(tw *tabwriter.Writer) {
		writeLine(tw, "Added product "+p.Name)
	})
}

// 画像ファイルがあることを確かめてから紐づける
func (h *InventoryHandler) AttachImage(ctx context.Context, code string, path string) error {
	ok, err := afero.Exists(h.fs, path)
	if err != nil {
		return usecase.NewInventoryError(usecase.KindStorageFailure, "check image file", err)
	}
	if !ok {
		return usecase.NewInventoryError(usecase.KindInvalidInput, "Image file does not exist: "+path, nil)
	}

	img, err := h.uc.AttachImage(ctx, code, path)
	if err != nil {
		return err
	}

	type imageRow struct {
		Code string `json:"code" csv:"code"`
		Path string `json:"path" csv:"path"`
	}
	row := imageRow{Code: strings.TrimSpace(code), Path: img.Path}
	return render(h.out, h.format, row, []imageRow{row}, func(tw *tabwriter.Writer) {
		writeLine(tw, "Image added to product")
	})
}

func (h *InventoryHandler) ListProducts(ctx context.Context) error {
	products, err := h.uc.ListProducts(ctx)
	if err != nil {
		return err
	}

	rows := make([]productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, toProductRow(h.format, p))
	}
	return render(h.out, h.format, rows, rows, func(tw *tabwriter.Writer) {
		if len(rows) == 0 {
			writeLine(tw, "No products")
			return
		}
		writeLine(tw, "CODE", "NAME", "DESCRIPTION", "PRICE", "QTY")
		for _, r := range rows {
			writeLine(tw, r.Code, r.Name, r.Description, r.Price, r.Quantity)
		}
	})
}

// 読み取り系なので、商品がなければメッセージだけ出して正常終了
func (h *InventoryHandler) ShowProduct(ctx context.Context, code string) error {
	d, err := h.uc.GetProductDetail(ctx, code)
	if errors.Is(err, usecase.ErrProductNotFound) {
		fmt.Fprintln(h.out, Message(err))
		return nil
	}
	if err != nil {
		return err
	}

	row := toProductDetailRow(h.format, d)
	return render(h.out, h.format, row, []productDetailRow{row}, func(tw *tabwriter.Writer) {
		writeLine(tw, "Code:", row.Code)
		writeLine(tw, "Name:", row.Name)
		writeLine(tw, "Description:", row.Description)
		writeLine(tw, "Price:", row.Price)
		writeLine(tw, "Quantity:", row.Quantity)
		writeLine(tw, "Images:")
		for _, p := range row.Images {
			writeLine(tw, " - "+p)
		}
	})
}

// CODE QTY [PRICE]
func (h *InventoryHandler) RecordTransaction(ctx context.Context, kind model.TransactionKind, args []string) error {
	qty, err := parseQuantity(args[1])
	if err != nil {
		return err
	}
	var price *float64
	if len(args) > 2 {
		p, err := parsePrice(args[2])
		if err != nil {
			return err
		}
		price = &p
	}

	out, err := h.uc.RecordTransaction(ctx, usecase.RecordTransactionInput{
		Code:      args[0],
		Kind:      kind,
		Quantity:  qty,
		UnitPrice: price,
	})
	if err != nil {
		return err
	}

	t := out.Transaction
	row := transactionRow{
		ID:          t.ID,
		RecordedAt:  t.RecordedAt.UTC().Format(timeLayout),
		Kind:        string(t.Kind),
		ProductCode: strings.TrimSpace(args[0]),
		Quantity:    t.Quantity,
		UnitPrice:   formatPrice(h.format, t.UnitPrice),
		Stock:       &out.Quantity,
	}
	return render(h.out, h.format, row, []transactionRow{row}, func(tw *tabwriter.Writer) {
		writeLine(tw, "Transaction recorded")
	})
}

type TransactionQuery struct {
	Code  string
	Since string
	Limit int
}

func (h *InventoryHandler) ListTransactions(ctx context.Context, q TransactionQuery) error {
	since, err := parseSince(q.Since)
	if err != nil {
		return err
	}

	txns, err := h.uc.ListTransactions(ctx, usecase.TransactionListInput{Code: q.Code, Since: since, Limit: q.Limit})
	if err != nil {
		return err
	}

	rows := make([]transactionRow, 0, len(txns))
	for _, t := range txns {
		rows = append(rows, toTransactionRow(h.format, t))
	}
	return render(h.out, h.format, rows, rows, func(tw *tabwriter.Writer) {
		if len(rows) == 0 {
			writeLine(tw, "No transactions")
			return
		}
		writeLine(tw, "ID", "RECORDED AT", "KIND", "CODE", "NAME", "QTY", "PRICE")
		for _, r := range rows {
			writeLine(tw, fmt.Sprintf("#%d", r.ID), r.RecordedAt, r.Kind, r.ProductCode, r.ProductName, r.Quantity, r.UnitPrice)
		}
	})
}
