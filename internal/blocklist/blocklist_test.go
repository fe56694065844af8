package blocklist

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBlocklist(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	bl, err := NewRedis(
		context.Background(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		"redis://"+mr.Addr(),
		"",
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bl.Close() })

	return bl, mr
}

func TestBlockAndCheck(t *testing.T) {
	bl, mr := newTestBlocklist(t)
	ctx := context.Background()

	ip := gofakeit.IPv4Address()

	blocked, err := bl.IsBlocked(ctx, ip)
	require.NoError(t, err)
	assert.False(t, blocked)

	require.NoError(t, bl.Block(ctx, ip))
	require.NoError(t, bl.Block(ctx, ip))

	blocked, err = bl.IsBlocked(ctx, ip)
	require.NoError(t, err)
	assert.True(t, blocked)

	members, err := mr.Members(DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, []string{ip}, members)
}

func TestIsBlocked_ServerDown(t *testing.T) {
	bl, mr := newTestBlocklist(t)

	mr.Close()

	_, err := bl.IsBlocked(context.Background(), gofakeit.IPv4Address())
	assert.Error(t, err)
}

func TestNewRedis_InvalidURL(t *testing.T) {
	_, err := NewRedis(
		context.Background(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		"not-a-url",
		"",
	)
	assert.Error(t, err)
}
