// Package rpc is the gRPC surface of the reservation service. Handlers
// do presence checks and delegation only; all semantics live in the
// manager.
package rpc

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"reservation-service/internal/infra/repository"

	pb "reservation-service/gen/reservationpb"
)

// ReservationManager is the slice of the manager the RPC surface needs.
type ReservationManager interface {
	Reserve(ctx context.Context, rsvp *pb.Reservation) (*pb.Reservation, error)
	ChangeStatus(ctx context.Context, id int64) (*pb.Reservation, error)
	UpdateNote(ctx context.Context, id int64, note string) (*pb.Reservation, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*pb.Reservation, error)
	Query(ctx context.Context, q *pb.ReservationQuery) (<-chan repository.QueryItem, error)
	Filter(ctx context.Context, f *pb.ReservationFilter) ([]*pb.Reservation, *pb.FilterPager, error)
}

type Service struct {
	pb.UnimplementedReservationServiceServer

	manager ReservationManager
	logger  *slog.Logger
}

func NewService(manager ReservationManager, logger *slog.Logger) *Service {
	return &Service{manager: manager, logger: logger}
}

func (s *Service) Reserve(ctx context.Context, req *pb.ReserveRequest) (*pb.ReserveResponse, error) {
	if req.GetReservation() == nil {
		return nil, status.Error(codes.InvalidArgument, "reservation is required")
	}

	rsvp, err := s.manager.Reserve(ctx, req.GetReservation())
	if err != nil {
		return nil, err
	}
	return &pb.ReserveResponse{Reservation: rsvp}, nil
}

func (s *Service) Confirm(ctx context.Context, req *pb.ConfirmRequest) (*pb.ConfirmResponse, error) {
	if req.GetId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	rsvp, err := s.manager.ChangeStatus(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	return &pb.ConfirmResponse{Reservation: rsvp}, nil
}

func (s *Service) Update(ctx context.Context, req *pb.UpdateRequest) (*pb.UpdateResponse, error) {
	if req.GetId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	rsvp, err := s.manager.UpdateNote(ctx, req.GetId(), req.GetNote())
	if err != nil {
		return nil, err
	}
	return &pb.UpdateResponse{Reservation: rsvp}, nil
}

// Cancel deletes the reservation and deliberately returns an empty
// response; the row is gone, there is nothing truthful to echo back.
func (s *Service) Cancel(ctx context.Context, req *pb.CancelRequest) (*pb.CancelResponse, error) {
	if req.GetId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	if err := s.manager.Delete(ctx, req.GetId()); err != nil {
		return nil, err
	}
	return &pb.CancelResponse{}, nil
}

func (s *Service) Get(ctx context.Context, req *pb.GetRequest) (*pb.GetResponse, error) {
	if req.GetId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	rsvp, err := s.manager.Get(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	return &pb.GetResponse{Reservation: rsvp}, nil
}

func (s *Service) Query(req *pb.QueryRequest, stream pb.ReservationService_QueryServer) error {
	if req.GetQuery() == nil {
		return status.Error(codes.InvalidArgument, "query is required")
	}

	ch, err := s.manager.Query(stream.Context(), req.GetQuery())
	if err != nil {
		return err
	}
	return s.relay(stream, ch)
}

func (s *Service) Filter(ctx context.Context, req *pb.FilterRequest) (*pb.FilterResponse, error) {
	if req.GetFilter() == nil {
		return nil, status.Error(codes.InvalidArgument, "filter is required")
	}

	reservations, pager, err := s.manager.Filter(ctx, req.GetFilter())
	if err != nil {
		return nil, err
	}
	return &pb.FilterResponse{Pager: pager, Reservations: reservations}, nil
}

// Listen is declared at the wire level but not yet served. The change
// feed already lands in rsvp.reservation_changes and fires NOTIFY on
// reservation_update; serving it here is pending a consumer.
func (s *Service) Listen(_ *pb.ListenRequest, _ pb.ReservationService_ListenServer) error {
	return status.Error(codes.Unimplemented, "listen is not implemented")
}
