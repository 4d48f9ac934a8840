package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	OutputTable = "table"
	OutputJSON  = "json"
	OutputCSV   = "csv"
)

// Configはアプリ全体の設定
type Config struct {
	Database Database
	Log      Log
	Output   string // table/json/csv
}

type Database struct {
	Driver       string // sqlite/postgres
	Path         string // sqliteのファイル
	URL          string // postgresのDSN
	Debug        bool   // SQLをログに出す
	MaxOpenConns int
}

type Log struct {
	Level  string
	Format string // text/json
	File   string // 空ならstderr
}

// キーと環境変数・既定値を登録する
func SetDefaults(v *viper.Viper) {
	v.SetEnvPrefix("INVTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("db.driver", DriverSQLite)
	v.SetDefault("db.path", "inventory.db")
	v.SetDefault("db.url", "")
	v.SetDefault("db.debug", false)
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("output", OutputTable)

	//DATABASE_URLも受け付ける
	_ = v.BindEnv("db.url", "INVTRACK_DB_URL", "DATABASE_URL")
}

// 設定キーとフラグ名の対応
var flagKeys = map[string]string{
	"config":       "config",
	"db":           "db.path",
	"driver":       "db.driver",
	"database-url": "db.url",
	"log-level":    "log.level",
	"log-file":     "log.file",
	"output":       "output",
}

// BindFlagsはflagsにあるフラグだけをviperのキーに結びつける。
// 指定されたフラグは環境変数・設定ファイルより優先される
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// .envがあれば読み込む（なければ何もしない）
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Loadはviperから設定を組み立てて検証する
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Database: Database{
			Driver:       strings.ToLower(strings.TrimSpace(v.GetString("db.driver"))),
			Path:         strings.TrimSpace(v.GetString("db.path")),
			URL:          strings.TrimSpace(v.GetString("db.url")),
			Debug:        v.GetBool("db.debug"),
			MaxOpenConns: v.GetInt("db.max_open_conns"),
		},
		Log: Log{
			Level:  strings.ToLower(strings.TrimSpace(v.GetString("log.level"))),
			Format: strings.ToLower(strings.TrimSpace(v.GetString("log.format"))),
			File:   strings.TrimSpace(v.GetString("log.file")),
		},
		Output: strings.ToLower(strings.TrimSpace(v.GetString("output"))),
	}

	//必須チェック
	switch cfg.Database.Driver {
	case DriverSQLite:
		if cfg.Database.Path == "" {
			return Config{}, fmt.Errorf("db.path is required")
		}
	case DriverPostgres:
		if cfg.Database.URL == "" {
			return Config{}, fmt.Errorf("db.url is required for postgres")
		}
	default:
		return Config{}, fmt.Errorf("db.driver must be %s or %s", DriverSQLite, DriverPostgres)
	}
	if cfg.Database.MaxOpenConns < 1 {
		return Config{}, fmt.Errorf("db.max_open_conns must be >= 1")
	}

	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return Config{}, fmt.Errorf("log.level: %w", err)
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("log.format must be text or json")
	}

	switch cfg.Output {
	case OutputTable, OutputJSON, OutputCSV:
	default:
		return Config{}, fmt.Errorf("output must be %s, %s or %s", OutputTable, OutputJSON, OutputCSV)
	}

	return cfg, nil
}
