package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"invtrack/internal/config"
	"invtrack/internal/handler"
	"invtrack/internal/infra/db"
	"invtrack/internal/infra/logger"
	infraRepo "invtrack/internal/infra/repository"
	"invtrack/internal/middleware"
	"invtrack/internal/usecase"
	"invtrack/internal/validator"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// Runに渡す外部の部品。ゼロ値ならOSのものを使う
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	FS     afero.Fs
	Clock  usecase.Clock
}

type utcClock struct{}

func (utcClock) Now() time.Time {
	return time.Now().UTC()
}

// 1回のコマンド実行で使う状態
type app struct {
	opts Options
	v    *viper.Viper

	cfg config.Config
	log *logrus.Logger
	gdb *gorm.DB
	uc  *usecase.InventoryUsecase
	h   *handler.InventoryHandler
}

// Runはargsのコマンドを実行して終了コードを返す
func Run(ctx context.Context, args []string, opts Options) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	if opts.Clock == nil {
		opts.Clock = utcClock{}
	}

	a := &app{opts: opts, v: viper.New()}
	a.v.SetFs(opts.FS)
	defer a.close()

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(opts.Stderr, "Error: "+handler.Message(err))
	}
	return handler.ExitCode(err)
}

// PersistentPreRunE。設定とloggerだけ用意する（DBはまだ開かない）
func (a *app) setup(cmd *cobra.Command, args []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadDotEnv(envFile); err != nil {
		return err
	}

	if file := a.v.GetString("config"); file != "" {
		a.v.SetConfigFile(file)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logger.New(cfg.Log, a.opts.Stderr)
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

// DBを開いてusecaseとhandlerを組み立てる
func (a *app) openStore(next middleware.CommandFunc) middleware.CommandFunc {
	return func(cmd *cobra.Command, args []string) error {
		gdb, err := db.Connect(a.cfg.Database, logger.Gorm(a.log, a.cfg.Database.Debug))
		if err != nil {
			return usecase.NewInventoryError(usecase.KindStorageFailure, "open store", err)
		}
		a.gdb = gdb

		//Repository（GORM実装）生成
		productRepo := infraRepo.NewProductGormRepository(gdb)
		imageRepo := infraRepo.NewImageGormRepository(gdb)
		txnRepo := infraRepo.NewTransactionGormRepository(gdb)
		schemaRepo := infraRepo.NewSchemaGormRepository(gdb)
		txm := infraRepo.NewTxManagerGorm(gdb)

		//Usecase生成
		a.uc = usecase.NewInventoryUsecase(
			txm, productRepo, imageRepo, txnRepo, schemaRepo,
			validator.NewInventoryValidator(), a.opts.Clock, a.log,
		)

		//Handler生成
		a.h = handler.NewInventoryHandler(a.uc, a.opts.FS, a.opts.Stdout, a.cfg.Output)

		return next(cmd, args)
	}
}

func (a *app) close() {
	if err := db.Close(a.gdb); err != nil && a.log != nil {
		a.log.WithError(err).Warn("close store")
	}
}

func (a *app) Logger() logrus.FieldLogger {
	if a.log == nil {
		return logrus.StandardLogger()
	}
	return a.log
}

func (a *app) EnsureStoreReady(ctx context.Context) error {
	if a.uc == nil {
		return errors.New("store is not open")
	}
	return a.uc.EnsureStoreReady(ctx)
}
