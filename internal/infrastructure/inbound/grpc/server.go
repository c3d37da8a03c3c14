package grpc_server

import (
	"fmt"
	"log/slog"
	"net"

	ports "pinstack-publish-service/internal/domain/ports/output"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const ServiceName = "pinstack.publish.v1.PublishService"

// Server exposes the standard gRPC health service for the publish service.
type Server struct {
	server  *grpc.Server
	health  *health.Server
	address string
	port    int
	log     ports.Logger
}

func NewServer(address string, port int, log ports.Logger, metrics ports.MetricsProvider) *Server {
	server := grpc.NewServer(
		grpc.UnaryInterceptor(grpc_middleware.ChainUnaryServer(
			UnaryLoggerInterceptor(log),
			UnaryMetricsInterceptor(metrics),
			grpc_recovery.UnaryServerInterceptor(),
		)),
	)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	reflection.Register(server)

	return &Server{
		server:  server,
		health:  healthServer,
		address: address,
		port:    port,
		log:     log,
	}
}

// SetServing flips the health status of the whole server and the publish
// service together.
func (s *Server) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(ServiceName, st)
}

func (s *Server) Run() error {
	address := fmt.Sprintf("%s:%d", s.address, s.port)
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen: %v", err)
	}

	s.SetServing(true)
	s.log.Info("Starting gRPC server", slog.Int("port", s.port))
	return s.server.Serve(lis)
}

func (s *Server) Shutdown() error {
	s.health.Shutdown()
	s.server.GracefulStop()
	return nil
}
