package closenicely

import (
	"context"
	"io"

	"github.com/klothoplatform/kbpipeline/pkg/logging"
	"go.uber.org/zap"
)

// OrDebug closes closer and logs a failure at debug level on the context logger.
// Use it for deferred closes where the error cannot change the outcome.
func OrDebug(ctx context.Context, name string, closer io.Closer) {
	FuncOrDebug(ctx, name, closer.Close)
}

func FuncOrDebug(ctx context.Context, name string, closer func() error) {
	if err := closer(); err != nil {
		logging.GetLogger(ctx).Debug("Failed to close resource", zap.String("resource", name), zap.Error(err))
	}
}
