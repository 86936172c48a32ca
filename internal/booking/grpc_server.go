package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	bookingpb "github.com/RentLinkDrive/RentLinkDrive/internal/api/proto/booking"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// 对外日期统一为日历日字符串。
const dateLayout = "2006-01-02"

type GRPCServer struct {
	bookingpb.UnimplementedBookingServiceServer
	svc *Service
}

func NewGRPCServer(svc *Service) *GRPCServer {
	return &GRPCServer{svc: svc}
}

func (s *GRPCServer) CreateBooking(ctx context.Context, req *bookingpb.CreateBookingRequest) (*bookingpb.CreateBookingResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	pickup, err := parseDate(req.GetPickupDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "pickup_date: "+err.Error())
	}
	ret, err := parseDate(req.GetReturnDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "return_date: "+err.Error())
	}

	b, err := s.svc.CreateBooking(ctx, CreateBookingInput{
		VehicleID:  req.GetVehicleId(),
		RenterID:   req.GetRenterId(),
		PickupDate: pickup,
		ReturnDate: ret,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &bookingpb.CreateBookingResponse{Booking: toPBBooking(b)}, nil
}

func (s *GRPCServer) ConfirmPayment(ctx context.Context, req *bookingpb.ConfirmPaymentRequest) (*bookingpb.ConfirmPaymentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	b, err := s.svc.ConfirmPayment(ctx, req.GetBookingId(), PaymentDetails{Method: req.GetPaymentMethod()})
	if err != nil {
		return nil, toStatus(err)
	}
	return &bookingpb.ConfirmPaymentResponse{Booking: toPBBooking(b)}, nil
}

func (s *GRPCServer) CancelBooking(ctx context.Context, req *bookingpb.CancelBookingRequest) (*bookingpb.CancelBookingResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	b, err := s.svc.CancelBooking(ctx, req.GetBookingId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &bookingpb.CancelBookingResponse{Booking: toPBBooking(b)}, nil
}

func (s *GRPCServer) GetBooking(ctx context.Context, req *bookingpb.GetBookingRequest) (*bookingpb.GetBookingResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	b, err := s.svc.GetBooking(ctx, req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &bookingpb.GetBookingResponse{Booking: toPBBooking(b)}, nil
}

func (s *GRPCServer) ListRenterBookings(ctx context.Context, req *bookingpb.ListRenterBookingsRequest) (*bookingpb.ListRenterBookingsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	bs, err := s.svc.ListByRenter(ctx, req.GetRenterId())
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]*bookingpb.Booking, 0, len(bs))
	for i := range bs {
		b := bs[i]
		out = append(out, toPBBooking(&b))
	}
	return &bookingpb.ListRenterBookingsResponse{Bookings: out}, nil
}

func (s *GRPCServer) CheckAvailability(ctx context.Context, req *bookingpb.CheckAvailabilityRequest) (*bookingpb.CheckAvailabilityResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	pickup, err := parseDate(req.GetPickupDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "pickup_date: "+err.Error())
	}
	ret, err := parseDate(req.GetReturnDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "return_date: "+err.Error())
	}
	ok, err := s.svc.CheckAvailability(ctx, req.GetVehicleId(), pickup, ret)
	if err != nil {
		return nil, toStatus(err)
	}
	return &bookingpb.CheckAvailabilityResponse{Available: ok}, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("required, format YYYY-MM-DD")
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, errors.New("invalid date, format YYYY-MM-DD")
	}
	return t, nil
}

// toStatus 把领域错误翻译为 gRPC 状态码。
func toStatus(err error) error {
	var ise *InvalidStateError
	switch {
	case errors.Is(err, ErrVehicleNotFound),
		errors.Is(err, ErrRenterNotFound),
		errors.Is(err, ErrOwnerNotFound),
		errors.Is(err, ErrBookingNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrInvalidRange):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrDateConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.As(err, &ise):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func toPBBooking(b *Booking) *bookingpb.Booking {
	if b == nil {
		return nil
	}
	out := &bookingpb.Booking{
		Id:              b.ID,
		VehicleId:       b.VehicleID,
		RenterId:        b.RenterID,
		Status:          string(b.Status),
		PickupDate:      b.PickupDate.Format(dateLayout),
		ReturnDate:      b.ReturnDate.Format(dateLayout),
		TotalPriceCents: b.TotalPriceCents,
		Currency:        b.Currency,
		PaymentMethod:   b.PaymentMethod,
		CreatedAt:       b.CreatedAt.Unix(),
		UpdatedAt:       b.UpdatedAt.Unix(),
	}
	if b.PaidAt != nil {
		out.PaidAt = b.PaidAt.Unix()
	}
	if b.CancelledAt != nil {
		out.CancelledAt = b.CancelledAt.Unix()
	}
	return out
}
