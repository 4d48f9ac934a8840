package middleware

import "github.com/spf13/cobra"

// cobraのRunEと同じ形
type CommandFunc func(cmd *cobra.Command, args []string) error

type Middleware func(next CommandFunc) CommandFunc

// 先頭のmiddlewareが一番外側
func Chain(h CommandFunc, mws ...Middleware) CommandFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
