// Package grpcerr converts intake service errors into gRPC status errors.
package grpcerr

import (
	"context"
	"errors"

	"dnsintake/internal/services/intake"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FromIntake returns the status reported to clients for err.
func FromIntake(err error) *status.Status {
	code, msg := classify(err)
	return status.New(code, msg)
}

func classify(err error) (codes.Code, string) {
	switch {
	case errors.Is(err, intake.ErrMalformedInput):
		return codes.InvalidArgument, err.Error()
	case errors.Is(err, intake.ErrBlocklistDisabled):
		return codes.FailedPrecondition, "blocklist is disabled"
	case errors.Is(err, intake.ErrUnavailable):
		return codes.Unavailable, "store unavailable"
	case errors.Is(err, intake.ErrRejected):
		return codes.Internal, "event rejected"
	case errors.Is(err, context.Canceled):
		return codes.Canceled, "request canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded, "deadline exceeded"
	}
	return codes.Internal, "internal error"
}
