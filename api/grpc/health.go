package grpcserver

import (
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name reported on the health check.
const ServiceName = "leaguehub.API"

// HealthServer serves the gRPC health check of the HTTP API.
type HealthServer struct {
	grpcServer   *grpc.Server
	healthServer *health.Server
	listener     net.Listener
	logger       *zap.Logger
}

// NewHealthServer listens on addr and registers the health service, starting as NOT_SERVING.
func NewHealthServer(addr string, logger *zap.Logger) (*HealthServer, error) {
	// Start a TCP listener.
	list, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	// Create the server and register the health check.
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	return &HealthServer{
		grpcServer:   grpcServer,
		healthServer: healthServer,
		listener:     list,
		logger:       logger,
	}, nil
}

// Addr returns the address the server listens on.
func (s *HealthServer) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve runs the gRPC server in a goroutine.
func (s *HealthServer) Serve() {
	go func() {
		s.logger.Info("Running gRPC health server", zap.String("addr", s.listener.Addr().String()))
		if err := s.grpcServer.Serve(s.listener); err != nil {
			s.logger.Error("Failed to serve grpc", zap.Error(err))
		}
	}()
}

// SetServing changes the reported status of the API.
func (s *HealthServer) SetServing(serving bool) {
	status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if serving {
		status = grpc_health_v1.HealthCheckResponse_SERVING
	}
	s.healthServer.SetServingStatus(ServiceName, status)
}

// Stop sets the status to not serving and stops gracefully.
func (s *HealthServer) Stop() {
	s.SetServing(false)
	s.healthServer.Shutdown()
	s.grpcServer.GracefulStop()
}
