package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/duetdiary/internal/logging"
	pb "github.com/dmitrijs2005/duetdiary/internal/proto"
	"github.com/dmitrijs2005/duetdiary/internal/server/gate"
	"github.com/dmitrijs2005/duetdiary/internal/server/models"
	"github.com/dmitrijs2005/duetdiary/internal/server/services"
	"github.com/dmitrijs2005/duetdiary/internal/timex"
	"google.golang.org/grpc"
)

// RevealService is the subset of services.RevealService used by the transport.
type RevealService interface {
	EnsureMember(ctx context.Context, coupleID, userID string) (*models.Couple, error)
	State(ctx context.Context, coupleID string) (gate.State, error)
	TriggerReveal(ctx context.Context, coupleID string) (*models.RevealSnapshot, error)
	GetSnapshot(ctx context.Context, coupleID string, year int) (*models.RevealSnapshot, error)
	ListRevealedYears(ctx context.Context, coupleID string) ([]models.RevealedYear, error)
	ComputeStats(ctx context.Context, coupleID string, year *int) (models.RevealStats, error)
}

// CheckpointService is the subset of services.CheckpointService used by the transport.
type CheckpointService interface {
	IsCheckpointDay(ctx context.Context, coupleID string) (services.CheckpointDay, error)
	NextCheckpointDate(ctx context.Context, coupleID string) (timex.Date, bool, error)
	GetCheckpointEntry(ctx context.Context, coupleID, viewerID string, configID *string) (*services.CheckpointResult, error)
	GetCheckpointHistory(ctx context.Context, coupleID, viewerID string) ([]models.CheckpointHistoryItem, error)
	GetUnrevealedCount(ctx context.Context, coupleID, viewerID string) (int, error)
	ListConfigs(ctx context.Context, coupleID string) ([]models.CheckpointConfig, error)
	SaveConfig(ctx context.Context, coupleID string, cfg models.CheckpointConfig) (*models.CheckpointConfig, error)
	DeleteConfig(ctx context.Context, coupleID, id string) error
}

type GRPCServer struct {
	pb.UnimplementedDisclosureServiceServer
	address     string
	reveals     RevealService
	checkpoints CheckpointService
	logger      logging.Logger
	jwtSecret   []byte
}

func NewGRPCServer(a string, l logging.Logger, rs RevealService, cs CheckpointService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		reveals:     rs,
		checkpoints: cs,
		jwtSecret:   []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	// registers service
	pb.RegisterDisclosureServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
