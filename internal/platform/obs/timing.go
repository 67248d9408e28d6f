package obs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// RequestID returns the request id stored in ctx, or "" outside a request.
func RequestID(ctx context.Context) string {
	reqID, _ := ctx.Value(RequestIDKey).(string)
	return reqID
}

// Time logs the duration of op when the returned func is called (typically deferred),
// including the error errp points at, if any.
func Time(ctx context.Context, logger *zap.Logger, op string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		fields := []zap.Field{
			zap.String("req_id", RequestID(ctx)),
			zap.String("op", op),
			zap.Int64("dur_ms", time.Since(start).Milliseconds()),
		}

		if errp != nil && *errp != nil {
			logger.Warn("op failed", append(fields, zap.Error(*errp))...)
			return
		}
		logger.Debug("op done", fields...)
	}
}
