package metrics

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncPublishFailure(t *testing.T) {
	before := testutil.ToFloat64(publishFailures.WithLabelValues("greeting"))

	IncPublishFailure("greeting")
	IncPublishFailure("greeting")

	assert.Equal(t, before+2, testutil.ToFloat64(publishFailures.WithLabelValues("greeting")))
}

func TestObserve(t *testing.T) {
	ObserveRequest("SayHello", 0, 3*time.Millisecond)
	ObserveHTTPRequest("POST /dns-query", 200, time.Millisecond)
	ObserveInsert("http", "ok", time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(grpcRequests, "dnsintake_grpc_request"))
	assert.Equal(t, 1, testutil.CollectAndCount(httpRequests, "dnsintake_http_request"))
	assert.Equal(t, 1, testutil.CollectAndCount(inserts, "dnsintake_storage_insert"))
}

func TestListen_StopsOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Listen(ctx, "127.0.0.1", port) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("metrics server did not stop")
	}
}
