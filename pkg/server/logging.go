package server

import (
	"context"
	"time"

	"github.com/bufbuild/connect-go"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-Id"

// NewLoggingInterceptor logs every call with its outcome and a request id,
// taken from the caller when present and generated otherwise.
func NewLoggingInterceptor(logger *zap.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			requestID := req.Header().Get(RequestIDHeader)
			if len(requestID) == 0 {
				requestID = uuid.NewString()
			}

			start := time.Now()
			res, err := next(ctx, req)

			fields := []zap.Field{
				zap.String("procedure", req.Spec().Procedure),
				zap.String("request_id", requestID),
				zap.Duration("duration", time.Since(start)),
			}

			if err != nil {
				logger.Info("request failed", append(fields, zap.Stringer("code", connect.CodeOf(err)), zap.Error(err))...)

				return nil, err
			}

			logger.Info("request handled", fields...)
			res.Header().Set(RequestIDHeader, requestID)

			return res, nil
		}
	}
}
