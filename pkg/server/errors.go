package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/model"
)

var (
	ErrNotRecipeAuthor = fmt.Errorf("%w: only the author or staff may change this recipe", model.ErrForbidden)
	errInternal        = errors.New("internal error")
)

// NewErrorInterceptor turns domain errors into connect errors. Errors of an
// unknown kind are logged and replaced, so store details never reach the caller.
func NewErrorInterceptor(logger *zap.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			res, err := next(ctx, req)
			if err != nil {
				return nil, ToConnectError(logger, req.Spec().Procedure, err)
			}

			return res, nil
		}
	}
}

func ToConnectError(logger *zap.Logger, procedure string, err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	switch {
	case errors.Is(err, model.ErrValidation):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, model.ErrConflict):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, model.ErrNotInCollection):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, model.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, model.ErrForbidden):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		logger.Error("internal error", zap.String("procedure", procedure), zap.Error(err))

		return connect.NewError(connect.CodeInternal, errInternal)
	}
}
