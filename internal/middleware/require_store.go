package middleware

import (
	"context"

	"github.com/spf13/cobra"
)

type StoreChecker interface {
	EnsureStoreReady(ctx context.Context) error
}

// テーブルがないDBに対してデータ系コマンドを実行させない
func RequireStore(store StoreChecker) Middleware {
	return func(next CommandFunc) CommandFunc {
		return func(cmd *cobra.Command, args []string) error {
			if err := store.EnsureStoreReady(cmd.Context()); err != nil {
				return err
			}
			return next(cmd, args)
		}
	}
}
