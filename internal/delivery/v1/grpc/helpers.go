package grpc

import (
	"context"
	"errors"

	"github.com/DRSN-tech/kitchen-backend/pkg/e"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func GRPCErrorResponse(err error) error {
	switch {
	case errors.Is(err, e.ErrUnknownCategory):
		return status.Error(codes.InvalidArgument, e.ErrUnknownCategory.Error())
	case errors.Is(err, e.ErrValidation):
		return status.Error(codes.InvalidArgument, e.ErrValidation.Error())
	case errors.Is(err, e.ErrSessionNotFound), errors.Is(err, e.ErrItemNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, e.ErrEmptyCart):
		return status.Error(codes.FailedPrecondition, e.ErrEmptyCart.Error())
	case errors.Is(err, e.ErrCartChanged):
		return status.Error(codes.Aborted, e.ErrCartChanged.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}
