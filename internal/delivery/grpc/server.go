package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/vogiaan1904/ticketbottle-datetime/pkg/logger"
)

// ServiceName is the name health checks are reported under.
const ServiceName = "ticketbottle.datetime.v1.DateTimeService"

// Server wraps a grpc.Server that exposes the standard health service.
type Server struct {
	*grpc.Server
	health *health.Server
}

func NewServer(l logger.Logger) *Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(LoggingInterceptor(l)))
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Server{Server: srv, health: hs}
}

// Shutdown reports NOT_SERVING so load balancers drain, then stops.
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.GracefulStop()
}

func LoggingInterceptor(l logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		l.Infow(ctx, "gRPC request",
			"method", info.FullMethod,
			"code", status.Code(err).String(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return resp, err
	}
}
