// Package grpc exposes UserService and ApplicationService over the
// JobTrackerService gRPC API.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/jobtracker/internal/logging"
	pb "github.com/dmitrijs2005/jobtracker/internal/proto"
	"github.com/dmitrijs2005/jobtracker/internal/records"
	"github.com/dmitrijs2005/jobtracker/internal/server/auth"
	"github.com/dmitrijs2005/jobtracker/internal/server/config"
	"github.com/dmitrijs2005/jobtracker/internal/server/metrics"
	"github.com/dmitrijs2005/jobtracker/internal/server/services"
	"google.golang.org/grpc"
)

type userSvc interface {
	Register(ctx context.Context, email, password string) (*services.Session, error)
	Login(ctx context.Context, email, password string) (*services.Session, error)
	LoginAnonymously(ctx context.Context) (*services.Session, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, id auth.Identity, refreshToken string) error
}

type applicationSvc interface {
	List(ctx context.Context, userID string) ([]records.Application, error)
	Create(ctx context.Context, userID string, f records.Fields) (string, error)
	Get(ctx context.Context, userID, id string) (records.Application, error)
	Update(ctx context.Context, userID, id string, f records.Fields) error
	Delete(ctx context.Context, userID, id string) error
	Export(ctx context.Context, userID string) (*services.ExportResult, error)
}

type GRPCServer struct {
	pb.UnimplementedJobTrackerServiceServer
	address      string
	users        userSvc
	applications applicationSvc
	logger       logging.Logger
	jwtSecret    []byte
	metrics      *metrics.Metrics
	limiter      *RateLimiter
}

// NewGRPCServer wires the services into a server listening on cfg.EndpointAddrGRPC.
// m may be nil, in which case no RPC metrics are recorded.
func NewGRPCServer(cfg *config.Config, l logging.Logger, us userSvc, as applicationSvc, m *metrics.Metrics) (*GRPCServer, error) {
	limiter, err := NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
	if err != nil {
		return nil, err
	}
	return &GRPCServer{
		address:      cfg.EndpointAddrGRPC,
		logger:       l.With("module", "grpc_server"),
		users:        us,
		applications: as,
		jwtSecret:    []byte(cfg.SecretKey),
		metrics:      m,
		limiter:      limiter,
	}, nil
}

// NewServer builds a *grpc.Server with the interceptor chain and the
// service registered, ready to Serve on any listener.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.metricsInterceptor,
		s.rateLimitInterceptor,
		s.accessTokenInterceptor,
	))
	pb.RegisterJobTrackerServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gPRC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
