package observers

import (
	"context"

	einocb "github.com/cloudwego/eino/callbacks"

	logx "github.com/convodesk/triage-core/pkg/logger"
)

// NewGraphLogger builds a callbacks.Handler that logs every node lifecycle
// event in the triage graph. Attach it via compose.WithCallbacks(...) when
// invoking the compiled graph.
func NewGraphLogger() einocb.Handler {
	return einocb.NewHandlerBuilder().
		OnStartFn(func(ctx context.Context, info *einocb.RunInfo, input einocb.CallbackInput) context.Context {
			logx.Debug().
				Str("node", info.Name).
				Str("component", string(info.Component)).
				Msg("Stage started")
			return ctx
		}).
		OnEndFn(func(ctx context.Context, info *einocb.RunInfo, output einocb.CallbackOutput) context.Context {
			logx.Debug().
				Str("node", info.Name).
				Str("component", string(info.Component)).
				Msg("Stage finished")
			return ctx
		}).
		OnErrorFn(func(ctx context.Context, info *einocb.RunInfo, err error) context.Context {
			logx.Error().
				Err(err).
				Str("node", info.Name).
				Str("component", string(info.Component)).
				Msg("Stage failed")
			return ctx
		}).
		Build()
}
