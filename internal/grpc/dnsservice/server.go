package dnsservice

import (
	"context"
	"time"

	dnsv1 "dnsintake/gen/go/dns/v1"
	"dnsintake/internal/domain/models"
	"dnsintake/internal/grpc/grpcerr"
	"dnsintake/internal/lib/metrics"
	"dnsintake/internal/services/intake"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
)

type DNSIntake interface {
	RecordDNSRequest(ctx context.Context, source string, q models.DNSQuery) (string, error)
	BlockIP(ctx context.Context, ip string) error
}

type serverAPI struct {
	dnsv1.UnimplementedDnsServiceServer
	intake DNSIntake
}

func Register(gRPC *grpc.Server, dnsIntake DNSIntake) {
	dnsv1.RegisterDnsServiceServer(gRPC, &serverAPI{intake: dnsIntake})
}

func (s *serverAPI) SendDnsRequest(
	ctx context.Context,
	req *dnsv1.DnsRequest) (*dnsv1.DnsResponse, error) {
	start := time.Now()
	var exitCode int = int(codes.OK)
	defer func() {
		metrics.ObserveRequest("SendDnsRequest", exitCode, time.Since(start))
	}()

	result, err := s.intake.RecordDNSRequest(ctx, models.SourceDNS, models.DNSQuery{
		IPAddress: req.GetIpAddress(),
		Domain:    req.GetDomain(),
		QueryType: req.GetQueryType(),
		Timestamp: req.GetTimestamp(),
	})
	if err != nil {
		st := grpcerr.FromIntake(err)
		exitCode = int(st.Code())
		return nil, st.Err()
	}

	return &dnsv1.DnsResponse{Status: result}, nil
}

func (s *serverAPI) BlockIp(
	ctx context.Context,
	req *dnsv1.BlockIpRequest) (*dnsv1.BlockIpResponse, error) {
	start := time.Now()
	var exitCode int = int(codes.OK)
	defer func() {
		metrics.ObserveRequest("BlockIp", exitCode, time.Since(start))
	}()

	if err := s.intake.BlockIP(ctx, req.GetIpAddress()); err != nil {
		st := grpcerr.FromIntake(err)
		exitCode = int(st.Code())
		return nil, st.Err()
	}

	return &dnsv1.BlockIpResponse{Status: intake.StatusSuccess}, nil
}
