package stats

import (
	"context"
	"errors"

	statspb "github.com/RentLinkDrive/RentLinkDrive/internal/api/proto/stats"
	"github.com/RentLinkDrive/RentLinkDrive/internal/booking"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type GRPCServer struct {
	statspb.UnimplementedStatsServiceServer
	svc *Service
}

func NewGRPCServer(svc *Service) *GRPCServer {
	return &GRPCServer{svc: svc}
}

func (s *GRPCServer) OwnerStats(ctx context.Context, req *statspb.OwnerStatsRequest) (*statspb.OwnerStatsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	snap, err := s.svc.OwnerStats(ctx, req.GetOwnerEmail())
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrOwnerNotFound):
			return nil, status.Error(codes.NotFound, err.Error())
		case errors.Is(err, booking.ErrInvalidArgument):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		default:
			return nil, status.Error(codes.Internal, err.Error())
		}
	}
	return &statspb.OwnerStatsResponse{
		OwnerId:           snap.OwnerID,
		TotalRevenueCents: snap.TotalRevenueCents,
		ActiveVehicles:    snap.ActiveVehicles,
		PendingBookings:   snap.PendingBookings,
		CompletedBookings: snap.CompletedBookings,
	}, nil
}

func (s *GRPCServer) AdminStats(ctx context.Context, _ *statspb.AdminStatsRequest) (*statspb.AdminStatsResponse, error) {
	snap, err := s.svc.AdminStats(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &statspb.AdminStatsResponse{
		TotalUsers:        snap.TotalUsers,
		TotalVehicles:     snap.TotalVehicles,
		TotalBookings:     snap.TotalBookings,
		TotalRevenueCents: snap.TotalRevenueCents,
	}, nil
}
