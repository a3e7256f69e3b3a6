package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errDriver = errors.New("connection refused")

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", fmt.Errorf("%w: delivery d1", ErrNotFound), KindNotFound},
		{"backend", fmt.Errorf("%w: %w", ErrBackendUnavailable, errDriver), KindBackendUnavailable},
		{"key not found", fmt.Errorf("%w: %w", ErrKeyNotFound, errDriver), KindKeyNotFound},
		{"invalid cipher", fmt.Errorf("%w: %w", ErrInvalidCipherText, errDriver), KindInvalidCipherText},
		{"transaction", fmt.Errorf("%w: %w", ErrTransactionFailure, errDriver), KindTransactionFailure},
		{"transaction wins over backend", fmt.Errorf("%w: %w", ErrTransactionFailure, fmt.Errorf("%w: %w", ErrBackendUnavailable, errDriver)), KindTransactionFailure},
		{"unclassified", errors.New("boom"), KindInternal},
		{"context", context.DeadlineExceeded, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestRootCause(t *testing.T) {
	wrapped := fmt.Errorf("%w: %w", ErrTransactionFailure, fmt.Errorf("update: %w", errDriver))
	assert.Same(t, errDriver, RootCause(wrapped))

	assert.Same(t, errDriver, RootCause(errDriver))
	assert.Nil(t, RootCause(nil))
}

func TestRootCause_Joined(t *testing.T) {
	joined := errors.Join(ErrBackendUnavailable, errDriver)
	assert.Same(t, errDriver, RootCause(joined))
}

func TestRootCause_StopsAtTypedError(t *testing.T) {
	dial := &net.OpError{
		Op:   "dial",
		Net:  "tcp",
		Addr: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 5432},
		Err:  os.NewSyscallError("connect", syscall.ECONNREFUSED),
	}
	err := fmt.Errorf("%w: %w", ErrBackendUnavailable, fmt.Errorf("ping: %w", dial))

	assert.Same(t, dial, RootCause(err))
	assert.Equal(t, "BackendUnavailable(dial tcp 127.0.0.1:5432: connect: connection refused)", Describe(err))
}

func TestRootCause_KeepsSentinelDetail(t *testing.T) {
	errUnsupported := errors.New("unsupported driver")
	err := fmt.Errorf("%w: %w", ErrInternal, fmt.Errorf("%w: %q", errUnsupported, "oracle"))

	assert.Equal(t, `Internal(unsupported driver: "oracle")`, Describe(err))
}

func TestDescribe(t *testing.T) {
	err := fmt.Errorf("%w: %w", ErrTransactionFailure, errDriver)
	assert.Equal(t, "TransactionFailure(connection refused)", Describe(err))

	assert.Equal(t, "Internal(boom)", Describe(errors.New("boom")))
	assert.Empty(t, Describe(nil))
}
