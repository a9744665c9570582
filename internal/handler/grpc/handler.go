// Package grpc exposes the operational gRPC surface of the avatar dashboard:
// the standard health-checking service and server reflection.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// ServiceName is the health-check name reported next to the overall ("")
// server status.
const ServiceName = "avatar-dashboard"

// Handler is the root gRPC transport handler.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger.WithComponent("grpc"),
	}
}

// Init builds a gRPC server with the health and reflection services
// registered and reports SERVING for both the server and ServiceName.
func (h *Handler) Init() *grpc.Server {
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(h.withLogging))

	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return server
}

// Shutdown flips every status to NOT_SERVING so that probes fail while the
// server drains.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// withLogging attaches the handler logger to the call context and writes one
// access-log line per unary call.
func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := next(h.logger.WithContext(ctx), req)

	h.logger.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
