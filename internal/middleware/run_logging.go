package middleware

import (
	"time"

	"invtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// 設定を読んだ後でloggerが決まるので、実行時に取り出す
type LoggerSource interface {
	Logger() logrus.FieldLogger
}

// コマンド1回ごとにrun_idを振って開始と終了を記録する
func WithRunLogging(src LoggerSource) Middleware {
	return func(next CommandFunc) CommandFunc {
		return func(cmd *cobra.Command, args []string) error {
			log := src.Logger().WithFields(logrus.Fields{
				"run_id":  uuid.NewString(),
				"command": cmd.Name(),
			})
			start := time.Now()
			log.Debug("command started")

			err := next(cmd, args)

			log = log.WithField("duration_ms", time.Since(start).Milliseconds())
			if err != nil {
				//種類が分かるものは種類も出す
				if ie, ok := usecase.AsInventoryError(err); ok {
					log = log.WithField("kind", ie.Kind)
				}
				log.WithError(err).Warn("command failed")
				return err
			}
			log.Info("command finished")
			return nil
		}
	}
}
