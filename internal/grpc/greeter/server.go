package greeter

import (
	"context"
	"time"

	helloworld "dnsintake/gen/go/helloworld"
	"dnsintake/internal/grpc/grpcerr"
	"dnsintake/internal/lib/metrics"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
)

type Greeter interface {
	SayHello(ctx context.Context, name string) (string, error)
}

type serverAPI struct {
	helloworld.UnimplementedGreeterServer
	greeter Greeter
}

func Register(gRPC *grpc.Server, greeter Greeter) {
	helloworld.RegisterGreeterServer(gRPC, &serverAPI{greeter: greeter})
}

func (s *serverAPI) SayHello(
	ctx context.Context,
	req *helloworld.HelloRequest) (*helloworld.HelloReply, error) {
	start := time.Now()
	var exitCode int = int(codes.OK)
	defer func() {
		metrics.ObserveRequest("SayHello", exitCode, time.Since(start))
	}()

	message, err := s.greeter.SayHello(ctx, req.GetName())
	if err != nil {
		st := grpcerr.FromIntake(err)
		exitCode = int(st.Code())
		return nil, st.Err()
	}

	return &helloworld.HelloReply{Message: message}, nil
}
