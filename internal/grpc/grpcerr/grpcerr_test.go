package grpcerr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"dnsintake/internal/services/intake"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestFromIntake(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"malformed", fmt.Errorf("op: %w", intake.ErrMalformedInput), codes.InvalidArgument},
		{"blocklist disabled", intake.ErrBlocklistDisabled, codes.FailedPrecondition},
		{"unavailable", fmt.Errorf("op: %w: boom", intake.ErrUnavailable), codes.Unavailable},
		{"rejected", intake.ErrRejected, codes.Internal},
		{"canceled", fmt.Errorf("op: %w", context.Canceled), codes.Canceled},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"other", errors.New("boom"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := FromIntake(tt.err)

			assert.Equal(t, tt.want, st.Code())
			assert.Equal(t, tt.want, status.Code(st.Err()))
		})
	}
}

func TestFromIntake_HidesInternalDetail(t *testing.T) {
	st := FromIntake(fmt.Errorf("mongo: dial tcp 10.0.0.5:27017: %w", intake.ErrUnavailable))

	assert.Equal(t, "store unavailable", st.Message())
}
