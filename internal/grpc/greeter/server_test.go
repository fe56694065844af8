package greeter

import (
	"context"
	"io"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"testing"
	"time"

	helloworld "dnsintake/gen/go/helloworld"
	"dnsintake/internal/domain/models"
	"dnsintake/internal/services/intake"
	"dnsintake/internal/storage"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type memStore struct {
	mu     sync.Mutex
	events []models.IngestedEvent
	err    error
}

func (s *memStore) SaveEvent(_ context.Context, event models.IngestedEvent) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return strconv.Itoa(len(s.events)), nil
}

func newClient(t *testing.T, store *memStore) helloworld.GreeterClient {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := intake.New(log, store, nil, nil, time.Second, time.Second)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	Register(srv, svc)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return helloworld.NewGreeterClient(conn)
}

func TestSayHello(t *testing.T) {
	store := &memStore{}
	client := newClient(t, store)

	name := gofakeit.Name()
	before := time.Now().UTC()
	resp, err := client.SayHello(context.Background(), &helloworld.HelloRequest{Name: name})
	after := time.Now().UTC()

	require.NoError(t, err)
	assert.Equal(t, "Hello, "+name+"!", resp.GetMessage())

	require.Len(t, store.events, 1)
	assert.Equal(t, resp.GetMessage(), store.events[0].Payload)
	assert.WithinRange(t, store.events[0].ReceivedAt, before, after)
}

func TestSayHello_FormattingCharacters(t *testing.T) {
	client := newClient(t, &memStore{})

	for _, name := range []string{"", "%", "%s%d", "50% off"} {
		resp, err := client.SayHello(context.Background(), &helloworld.HelloRequest{Name: name})

		require.NoError(t, err)
		assert.Equal(t, "Hello, "+name+"!", resp.GetMessage())
	}
}

func TestSayHello_StoreUnavailable(t *testing.T) {
	client := newClient(t, &memStore{err: storage.ErrStoreUnavailable})

	resp, err := client.SayHello(context.Background(), &helloworld.HelloRequest{Name: "gopher"})

	assert.Nil(t, resp)
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestSayHello_StoreRejected(t *testing.T) {
	client := newClient(t, &memStore{err: storage.ErrStoreRejected})

	_, err := client.SayHello(context.Background(), &helloworld.HelloRequest{Name: "gopher"})

	assert.Equal(t, codes.Internal, status.Code(err))
}
