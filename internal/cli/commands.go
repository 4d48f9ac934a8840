package cli

import (
	"invtrack/internal/config"
	"invtrack/internal/domain/model"
	"invtrack/internal/handler"
	"invtrack/internal/middleware"

	"github.com/spf13/cobra"
)

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "invtrack",
		Short:             "Track products, images and stock transactions",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.String("env-file", ".env", "dotenv file loaded before reading the environment")
	flags.String("db", "inventory.db", "sqlite database file")
	flags.String("driver", "sqlite", "database driver (sqlite or postgres)")
	flags.String("database-url", "", "postgres connection string")
	flags.String("log-level", "warn", "log level")
	flags.String("log-file", "", "write logs to this file with rotation")
	flags.StringP("output", "o", "table", "output format (table, json or csv)")

	config.SetDefaults(a.v)
	//Lookupできないフラグはないのでエラーにはならない
	_ = config.BindFlags(a.v, flags)

	root.AddCommand(
		a.initializeStoreCommand(),
		a.registerProductCommand(),
		a.attachImageCommand(),
		a.listProductsCommand(),
		a.showProductCommand(),
		a.recordCommand(model.TransactionKindPurchase),
		a.recordCommand(model.TransactionKindSale),
		a.listTransactionsCommand(),
	)
	return root
}

// データ系コマンドの共通middleware
func (a *app) dataCommand(run middleware.CommandFunc) func(cmd *cobra.Command, args []string) error {
	return middleware.Chain(run,
		middleware.WithRunLogging(a),
		a.openStore,
		middleware.RequireStore(a),
	)
}

func (a *app) initializeStoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "initialize-store",
		Aliases: []string{"init-db"},
		Short:   "Create the tables (safe to run again)",
		Args:    cobra.NoArgs,
		//初期化はテーブルがなくても実行する
		RunE: middleware.Chain(func(cmd *cobra.Command, args []string) error {
			return a.h.InitializeStore(cmd.Context())
		}, middleware.WithRunLogging(a), a.openStore),
	}
}

func (a *app) registerProductCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "register-product CODE NAME DESC PRICE [QTY]",
		Aliases: []string{"add-product"},
		Short:   "Register a new product",
		Args:    cobra.RangeArgs(4, 5),
		RunE: a.dataCommand(func(cmd *cobra.Command, args []string) error {
			return a.h.RegisterProduct(cmd.Context(), args)
		}),
	}
}

func (a *app) attachImageCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "attach-image CODE IMAGE_PATH",
		Aliases: []string{"add-image"},
		Short:   "Attach an existing image file to a product",
		Args:    cobra.ExactArgs(2),
		RunE: a.dataCommand(func(cmd *cobra.Command, args []string) error {
			return a.h.AttachImage(cmd.Context(), args[0], args[1])
		}),
	}
}

func (a *app) listProductsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-products",
		Short: "List all products",
		Args:  cobra.NoArgs,
		RunE: a.dataCommand(func(cmd *cobra.Command, args []string) error {
			return a.h.ListProducts(cmd.Context())
		}),
	}
}

func (a *app) showProductCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show-product CODE",
		Short: "Show a product with its images",
		Args:  cobra.ExactArgs(1),
		RunE: a.dataCommand(func(cmd *cobra.Command, args []string) error {
			return a.h.ShowProduct(cmd.Context(), args[0])
		}),
	}
}

// record-purchase / record-sale
func (a *app) recordCommand(kind model.TransactionKind) *cobra.Command {
	cmd := &cobra.Command{
		Args: cobra.RangeArgs(2, 3),
		RunE: a.dataCommand(func(cmd *cobra.Command, args []string) error {
			return a.h.RecordTransaction(cmd.Context(), kind, args)
		}),
	}
	if kind == model.TransactionKindSale {
		cmd.Use = "record-sale CODE QTY [PRICE]"
		cmd.Aliases = []string{"sell"}
		cmd.Short = "Record a sale (fails when stock is insufficient)"
	} else {
		cmd.Use = "record-purchase CODE QTY [PRICE]"
		cmd.Aliases = []string{"buy"}
		cmd.Short = "Record a purchase"
	}
	return cmd
}

func (a *app) listTransactionsCommand() *cobra.Command {
	var q handler.TransactionQuery
	cmd := &cobra.Command{
		Use:   "list-transactions",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: a.dataCommand(func(cmd *cobra.Command, args []string) error {
			return a.h.ListTransactions(cmd.Context(), q)
		}),
	}
	cmd.Flags().StringVar(&q.Code, "code", "", "only this product code")
	cmd.Flags().StringVar(&q.Since, "since", "", "only transactions at or after this date")
	cmd.Flags().IntVar(&q.Limit, "limit", 0, "maximum number of rows (0 = all)")
	return cmd
}
