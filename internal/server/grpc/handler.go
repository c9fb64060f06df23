package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/duetdiary/internal/common"
	pb "github.com/dmitrijs2005/duetdiary/internal/proto"
	"github.com/dmitrijs2005/duetdiary/internal/server/gate"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps domain errors onto gRPC codes. Unknown errors are logged and
// hidden behind a generic Internal status.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrNotAMember):
		return status.Error(codes.PermissionDenied, common.ErrNotAMember.Error())
	case errors.Is(err, common.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrInvalidState), errors.Is(err, common.ErrNotYetEligible):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrConflict), errors.Is(err, common.ErrStaleState):
		return status.Error(codes.Aborted, "concurrent update, retry")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		s.logger.Error(ctx, "request failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

// validateID rejects ids the uuid columns would not accept.
func validateID(field, id string) error {
	if id == "" {
		return status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	if len(id) != 36 {
		return status.Errorf(codes.InvalidArgument, "%s is not a valid id", field)
	}
	if _, err := uuid.Parse(id); err != nil {
		return status.Errorf(codes.InvalidArgument, "%s is not a valid id", field)
	}
	return nil
}

func viewerFrom(ctx context.Context) (string, error) {
	viewer, _ := ctx.Value(common.UserIDKey).(string)
	if viewer == "" {
		return "", status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return viewer, nil
}

// member resolves the caller and checks that they belong to coupleID.
func (s *GRPCServer) member(ctx context.Context, coupleID string) (string, error) {
	viewer, err := viewerFrom(ctx)
	if err != nil {
		return "", err
	}
	if err := validateID("couple_id", coupleID); err != nil {
		return "", err
	}
	if _, err := s.reveals.EnsureMember(ctx, coupleID, viewer); err != nil {
		return "", s.toStatus(ctx, err)
	}
	return viewer, nil
}

func (s *GRPCServer) IsReadyToReveal(ctx context.Context, req *pb.CoupleRequest) (*pb.IsReadyToRevealResponse, error) {
	if _, err := s.member(ctx, req.GetCoupleId()); err != nil {
		return nil, err
	}
	st, err := s.reveals.State(ctx, req.GetCoupleId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.IsReadyToRevealResponse{Ready: st == gate.ReadyToOpen, State: st.String()}, nil
}

func (s *GRPCServer) TriggerReveal(ctx context.Context, req *pb.CoupleRequest) (*pb.SnapshotResponse, error) {
	if _, err := s.member(ctx, req.GetCoupleId()); err != nil {
		return nil, err
	}
	snap, err := s.reveals.TriggerReveal(ctx, req.GetCoupleId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SnapshotResponse{Snapshot: toSnapshot(snap)}, nil
}

func (s *GRPCServer) GetSnapshot(ctx context.Context, req *pb.GetSnapshotRequest) (*pb.SnapshotResponse, error) {
	if _, err := s.member(ctx, req.GetCoupleId()); err != nil {
		return nil, err
	}
	if req.GetYear() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "year is required")
	}
	snap, err := s.reveals.GetSnapshot(ctx, req.GetCoupleId(), int(req.GetYear()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SnapshotResponse{Snapshot: toSnapshot(snap)}, nil
}

func (s *GRPCServer) ListRevealedYears(ctx context.Context, req *pb.CoupleRequest) (*pb.ListRevealedYearsResponse, error) {
	if _, err := s.member(ctx, req.GetCoupleId()); err != nil {
		return nil, err
	}
	years, err := s.reveals.ListRevealedYears(ctx, req.GetCoupleId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := &pb.ListRevealedYearsResponse{Years: make([]*pb.RevealedYear, 0, len(years))}
	for _, y := range years {
		out.Years = append(out.Years, &pb.RevealedYear{Year: int32(y.Year), RevealedAt: timestamp(y.RevealedAt)})
	}
	return out, nil
}

// GetStats returns live statistics; year 0 means all time.
func (s *GRPCServer) GetStats(ctx context.Context, req *pb.GetStatsRequest) (*pb.GetStatsResponse, error) {
	if _, err := s.member(ctx, req.GetCoupleId()); err != nil {
		return nil, err
	}
	if req.GetYear() < 0 {
		return nil, status.Error(codes.InvalidArgument, "year must not be negative")
	}
	var year *int
	if y := int(req.GetYear()); y > 0 {
		year = &y
	}
	st, err := s.reveals.ComputeStats(ctx, req.GetCoupleId(), year)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetStatsResponse{Stats: toStats(st)}, nil
}

func (s *GRPCServer) IsCheckpointDay(ctx context.Context, req *pb.CoupleRequest) (*pb.IsCheckpointDayResponse, error) {
	if _, err := s.member(ctx, req.GetCoupleId()); err != nil {
		return nil, err
	}
	day, err := s.checkpoints.IsCheckpointDay(ctx, req.GetCoupleId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.IsCheckpointDayResponse{Date: day.Date.String(), Matched: day.Matched, Configs: toConfigs(day.Configs)}, nil
}

func (s *GRPCServer) GetNextCheckpointDate(ctx context.Context, req *pb.CoupleRequest) (*pb.GetNextCheckpointDateResponse, error) {
	if _, err := s.member(ctx, req.GetCoupleId()); err != nil {
		return nil, err
	}
	next, ok, err := s.checkpoints.NextCheckpointDate(ctx, req.GetCoupleId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	if !ok {
		return &pb.GetNextCheckpointDateResponse{}, nil
	}
	return &pb.GetNextCheckpointDateResponse{Found: true, Date: next.String()}, nil
}

func (s *GRPCServer) GetCheckpointEntry(ctx context.Context, req *pb.GetCheckpointEntryRequest) (*pb.GetCheckpointEntryResponse, error) {
	viewer, err := s.member(ctx, req.GetCoupleId())
	if err != nil {
		return nil, err
	}
	var configID *string
	if id := req.GetConfigId(); id != "" {
		if err := validateID("config_id", id); err != nil {
			return nil, err
		}
		configID = &id
	}
	res, err := s.checkpoints.GetCheckpointEntry(ctx, req.GetCoupleId(), viewer, configID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toCheckpointEntryResponse(res), nil
}

func (s *GRPCServer) GetCheckpointHistory(ctx context.Context, req *pb.CoupleRequest) (*pb.GetCheckpointHistoryResponse, error) {
	viewer, err := s.member(ctx, req.GetCoupleId())
	if err != nil {
		return nil, err
	}
	items, err := s.checkpoints.GetCheckpointHistory(ctx, req.GetCoupleId(), viewer)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetCheckpointHistoryResponse{Items: toHistory(items)}, nil
}

func (s *GRPCServer) GetUnrevealedCount(ctx context.Context, req *pb.CoupleRequest) (*pb.GetUnrevealedCountResponse, error) {
	viewer, err := s.member(ctx, req.GetCoupleId())
	if err != nil {
		return nil, err
	}
	n, err := s.checkpoints.GetUnrevealedCount(ctx, req.GetCoupleId(), viewer)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetUnrevealedCountResponse{Count: int32(n)}, nil
}

func (s *GRPCServer) ListCheckpointConfigs(ctx context.Context, req *pb.CoupleRequest) (*pb.ListCheckpointConfigsResponse, error) {
	if _, err := s.member(ctx, req.GetCoupleId()); err != nil {
		return nil, err
	}
	configs, err := s.checkpoints.ListConfigs(ctx, req.GetCoupleId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ListCheckpointConfigsResponse{Configs: toConfigs(configs)}, nil
}

func (s *GRPCServer) SaveCheckpointConfig(ctx context.Context, req *pb.SaveCheckpointConfigRequest) (*pb.SaveCheckpointConfigResponse, error) {
	if _, err := s.member(ctx, req.GetCoupleId()); err != nil {
		return nil, err
	}
	if req.GetConfig() == nil {
		return nil, status.Error(codes.InvalidArgument, "config is required")
	}
	cfg, err := fromConfig(req.GetConfig())
	if err != nil {
		return nil, err
	}
	saved, err := s.checkpoints.SaveConfig(ctx, req.GetCoupleId(), cfg)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SaveCheckpointConfigResponse{Config: toConfig(*saved)}, nil
}

func (s *GRPCServer) DeleteCheckpointConfig(ctx context.Context, req *pb.DeleteCheckpointConfigRequest) (*pb.DeleteCheckpointConfigResponse, error) {
	if _, err := s.member(ctx, req.GetCoupleId()); err != nil {
		return nil, err
	}
	if err := validateID("config_id", req.GetConfigId()); err != nil {
		return nil, err
	}
	if err := s.checkpoints.DeleteConfig(ctx, req.GetCoupleId(), req.GetConfigId()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DeleteCheckpointConfigResponse{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}
