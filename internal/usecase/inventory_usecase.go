package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"invtrack/internal/domain/model"
	repo "invtrack/internal/repository"

	"github.com/sirupsen/logrus"
)

// usecaseがValidatorInterfaceに依存する約束
type InventoryValidator interface {
	ValidateRegisterProduct(in RegisterProductInput) error
	ValidateAttachImage(code string, path string) error
	ValidateRecordTransaction(in RecordTransactionInput) error
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

type InventoryUsecase struct {
	tx           repo.TransactionManager
	products     repo.ProductRepository
	images       repo.ImageRepository
	transactions repo.TransactionRepository
	schema       repo.SchemaRepository
	validator    InventoryValidator
	clock        Clock
	log          logrus.FieldLogger
}

// DI
func NewInventoryUsecase(
	tx repo.TransactionManager,
	products repo.ProductRepository,
	images repo.ImageRepository,
	transactions repo.TransactionRepository,
	schema repo.SchemaRepository,
	validator InventoryValidator,
	clock Clock,
	log logrus.FieldLogger,
) *InventoryUsecase {
	return &InventoryUsecase{
		tx:           tx,
		products:     products,
		images:       images,
		transactions: transactions,
		schema:       schema,
		validator:    validator,
		clock:        clock,
		log:          log,
	}
}

// テーブルを用意する（何度呼んでもよい）
func (u *InventoryUsecase) InitializeStore(ctx context.Context) error {
	if err := u.schema.Migrate(ctx); err != nil {
		return storageError("initialize store", err)
	}
	u.log.Info("store initialized")
	return nil
}

// 初期化前のDBに対する操作を止める
func (u *InventoryUsecase) EnsureStoreReady(ctx context.Context) error {
	ok, err := u.schema.IsInitialized(ctx)
	if err != nil {
		return storageError("check store", err)
	}
	if !ok {
		return NewInventoryError(KindStorageFailure, "store is not initialized; run initialize-store first", nil)
	}
	return nil
}

type RegisterProductInput struct {
	Code            string  `validate:"required,max=64"`
	Name            string  `validate:"max=255"`
	Description     string
	Price           float64 `validate:"gte=0"`
	InitialQuantity int64   `validate:"gte=0"`
}

func (u *InventoryUsecase) RegisterProduct(ctx context.Context, in RegisterProductInput) (model.Product, error) {
	in.Code = strings.TrimSpace(in.Code)
	if err := u.validator.ValidateRegisterProduct(in); err != nil {
		return model.Product{}, err
	}

	p, err := u.products.Create(ctx, model.Product{
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.InitialQuantity,
	})
	if errors.Is(err, repo.ErrDuplicateKey) {
		return model.Product{}, NewInventoryError(KindDuplicateCode, "product code must be unique: "+in.Code, nil)
	}
	if err != nil {
		return model.Product{}, storageError("db error", err)
	}

	u.log.WithFields(logrus.Fields{"code": p.Code, "id": p.ID}).Info("product registered")
	return p, nil
}

func (u *InventoryUsecase) AttachImage(ctx context.Context, code string, path string) (model.Image, error) {
	code = strings.TrimSpace(code)
	if err := u.validator.ValidateAttachImage(code, path); err != nil {
		return model.Image{}, err
	}

	p, err := u.findProduct(ctx, u.products, code)
	if err != nil {
		return model.Image{}, err
	}

	img, err := u.images.Create(ctx, model.Image{ProductID: p.ID, Path: path})
	if err != nil {
		return model.Image{}, storageError("db error", err)
	}

	u.log.WithFields(logrus.Fields{"code": p.Code, "path": path}).Info("image attached")
	return img, nil
}

type RecordTransactionInput struct {
	Code     string                `validate:"required"`
	Kind     model.TransactionKind `validate:"oneof=purchase sale"`
	Quantity int64                 `validate:"gt=0"`
	//nilなら商品の現在の価格
	UnitPrice *float64 `validate:"omitempty,gte=0"`
}

type RecordTransactionOutput struct {
	Transaction model.Transaction `json:"transaction"`
	//更新後の在庫
	Quantity int64 `json:"quantity"`
}

// 入出庫を記録する。在庫の更新と履歴の追加は同じトランザクション
func (u *InventoryUsecase) RecordTransaction(ctx context.Context, in RecordTransactionInput) (RecordTransactionOutput, error) {
	in.Code = strings.TrimSpace(in.Code)
	if err := u.validator.ValidateRecordTransaction(in); err != nil {
		return RecordTransactionOutput{}, err
	}

	var out RecordTransactionOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//毎回読み直す（キャッシュした在庫は使わない）
		p, err := u.findProduct(ctx, r.Products(), in.Code)
		if err != nil {
			return err
		}

		price := p.Price
		if in.UnitPrice != nil {
			price = *in.UnitPrice
		}

		if in.Kind == model.TransactionKindSale && p.Quantity < in.Quantity {
			return NewInventoryError(KindInsufficientStock, "not enough inventory for sale", nil)
		}
		//仕入れで在庫がint64を超えると負の値に回り込む
		if in.Kind == model.TransactionKindPurchase && in.Quantity > math.MaxInt64-p.Quantity {
			return NewInventoryError(KindInvalidQuantity, "quantity too large: stock would overflow", nil)
		}
		newQty := p.Quantity + in.Kind.Delta(in.Quantity)

		txn, err := r.Inventory().SetQuantityWithTransaction(ctx, p.ID, p.Quantity, newQty, model.Transaction{
			Kind:       in.Kind,
			Quantity:   in.Quantity,
			UnitPrice:  price,
			RecordedAt: u.clock.Now().UTC(),
		})
		if errors.Is(err, repo.ErrNotFound) {
			return NewInventoryError(KindProductNotFound, "product not found", nil)
		}
		if errors.Is(err, repo.ErrConflict) {
			return storageError("stock changed while recording transaction", err)
		}
		if err != nil {
			return storageError("db error", err)
		}

		out = RecordTransactionOutput{Transaction: txn, Quantity: newQty}
		return nil
	})
	if err != nil {
		if _, ok := AsInventoryError(err); ok {
			return RecordTransactionOutput{}, err
		}
		//commit自体の失敗など
		return RecordTransactionOutput{}, storageError("db error", err)
	}

	u.log.WithFields(logrus.Fields{
		"code":     in.Code,
		"kind":     in.Kind,
		"quantity": in.Quantity,
		"stock":    out.Quantity,
	}).Info("transaction recorded")
	return out, nil
}

func (u *InventoryUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := u.products.List(ctx)
	if err != nil {
		return []model.Product{}, storageError("db error", err)
	}
	return products, nil
}

type ProductDetail struct {
	Product model.Product `json:"product"`
	Images  []model.Image `json:"images"`
}

func (u *InventoryUsecase) GetProductDetail(ctx context.Context, code string) (ProductDetail, error) {
	p, err := u.findProduct(ctx, u.products, strings.TrimSpace(code))
	if err != nil {
		return ProductDetail{}, err
	}

	images, err := u.images.ListByProductID(ctx, p.ID)
	if err != nil {
		return ProductDetail{}, storageError("db error", err)
	}
	return ProductDetail{Product: p, Images: images}, nil
}

// ゼロ値なら全件
type TransactionListInput struct {
	Code  string
	Since *time.Time
	Limit int
}

func (u *InventoryUsecase) ListTransactions(ctx context.Context, in TransactionListInput) ([]repo.TransactionWithProduct, error) {
	if in.Limit < 0 {
		return []repo.TransactionWithProduct{}, NewInventoryError(KindInvalidInput, "limit must be >= 0", nil)
	}

	rows, err := u.transactions.ListWithProduct(ctx, repo.TransactionListFilter{
		ProductCode: strings.TrimSpace(in.Code),
		Since:       in.Since,
		Limit:       in.Limit,
	})
	if err != nil {
		return []repo.TransactionWithProduct{}, storageError("db error", err)
	}
	return rows, nil
}

func (u *InventoryUsecase) findProduct(ctx context.Context, products repo.ProductRepository, code string) (model.Product, error) {
	if code == "" {
		return model.Product{}, NewInventoryError(KindInvalidInput, "product code is required", nil)
	}
	p, err := products.FindByCode(ctx, code)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewInventoryError(KindProductNotFound, "product not found: "+code, nil)
	}
	if err != nil {
		return model.Product{}, storageError("db error", err)
	}
	return p, nil
}
