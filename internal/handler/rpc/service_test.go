//go:build unit

package rpc_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/handler/rpc"
	"reservation-service/internal/infra/repository"
	"reservation-service/internal/pkg/errs"
	rpcmock "reservation-service/tests/mock/rpc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "reservation-service/gen/reservationpb"
)

func newService(t *testing.T) (*rpc.Service, *rpcmock.MockReservationManager) {
	t.Helper()
	ctrl := gomock.NewController(t)
	manager := rpcmock.NewMockReservationManager(ctrl)
	return rpc.NewService(manager, slog.Default()), manager
}

func sampleReservation(id int64) *pb.Reservation {
	rsvp := reservation.NewPending("john", "room_1",
		time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 7, 0, 0, 0, time.UTC),
		"")
	rsvp.Id = id
	return rsvp
}

func assertCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	require.True(t, ok, "expected a status error, got %v", err)
	assert.Equal(t, code, st.Code())
}

func TestServiceReserve(t *testing.T) {
	ctx := context.Background()

	t.Run("success: delegates to the manager", func(t *testing.T) {
		svc, manager := newService(t)
		in := sampleReservation(0)
		out := sampleReservation(7)
		manager.EXPECT().Reserve(ctx, in).Return(out, nil)

		resp, err := svc.Reserve(ctx, &pb.ReserveRequest{Reservation: in})
		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.GetReservation().GetId())
	})

	t.Run("error: missing payload", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Reserve(ctx, &pb.ReserveRequest{})
		assertCode(t, err, codes.InvalidArgument)
	})

	t.Run("error: conflict surfaces as AlreadyExists", func(t *testing.T) {
		svc, manager := newService(t)
		in := sampleReservation(0)
		manager.EXPECT().Reserve(ctx, in).
			Return(nil, errs.NewConflict(errs.ConflictInfo{Raw: "taken"}, nil))

		_, err := svc.Reserve(ctx, &pb.ReserveRequest{Reservation: in})
		assertCode(t, err, codes.AlreadyExists)
	})
}

func TestServiceUnaryIDChecks(t *testing.T) {
	ctx := context.Background()

	t.Run("error: zero id is rejected before the manager", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Confirm(ctx, &pb.ConfirmRequest{})
		assertCode(t, err, codes.InvalidArgument)

		_, err = svc.Update(ctx, &pb.UpdateRequest{Note: "x"})
		assertCode(t, err, codes.InvalidArgument)

		_, err = svc.Cancel(ctx, &pb.CancelRequest{})
		assertCode(t, err, codes.InvalidArgument)

		_, err = svc.Get(ctx, &pb.GetRequest{})
		assertCode(t, err, codes.InvalidArgument)
	})

	t.Run("success: confirm returns the confirmed reservation", func(t *testing.T) {
		svc, manager := newService(t)
		confirmed := sampleReservation(3)
		confirmed.Status = pb.ReservationStatus_RESERVATION_STATUS_CONFIRMED
		manager.EXPECT().ChangeStatus(ctx, int64(3)).Return(confirmed, nil)

		resp, err := svc.Confirm(ctx, &pb.ConfirmRequest{Id: 3})
		require.NoError(t, err)
		assert.Equal(t, pb.ReservationStatus_RESERVATION_STATUS_CONFIRMED, resp.GetReservation().GetStatus())
	})

	t.Run("success: cancel returns an empty response", func(t *testing.T) {
		svc, manager := newService(t)
		manager.EXPECT().Delete(ctx, int64(3)).Return(nil)

		resp, err := svc.Cancel(ctx, &pb.CancelRequest{Id: 3})
		require.NoError(t, err)
		assert.Nil(t, resp.GetReservation())
	})

	t.Run("error: get on a missing row maps to NotFound", func(t *testing.T) {
		svc, manager := newService(t)
		manager.EXPECT().Get(ctx, int64(9)).Return(nil, errs.ErrNotFound)

		_, err := svc.Get(ctx, &pb.GetRequest{Id: 9})
		assertCode(t, err, codes.NotFound)
	})

	t.Run("success: update note", func(t *testing.T) {
		svc, manager := newService(t)
		updated := sampleReservation(3)
		updated.Note = "new note"
		manager.EXPECT().UpdateNote(ctx, int64(3), "new note").Return(updated, nil)

		resp, err := svc.Update(ctx, &pb.UpdateRequest{Id: 3, Note: "new note"})
		require.NoError(t, err)
		assert.Equal(t, "new note", resp.GetReservation().GetNote())
	})
}

func TestServiceFilter(t *testing.T) {
	ctx := context.Background()

	t.Run("success: page and pager pass through", func(t *testing.T) {
		svc, manager := newService(t)
		filter := &pb.ReservationFilter{UserId: "john", PageSize: 10}
		page := []*pb.Reservation{sampleReservation(3), sampleReservation(4)}
		pager := &pb.FilterPager{Prev: 3, Next: -1, Total: 2}
		manager.EXPECT().Filter(ctx, filter).Return(page, pager, nil)

		resp, err := svc.Filter(ctx, &pb.FilterRequest{Filter: filter})
		require.NoError(t, err)
		assert.Len(t, resp.GetReservations(), 2)
		assert.Equal(t, int64(3), resp.GetPager().GetPrev())
	})

	t.Run("error: missing payload", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Filter(ctx, &pb.FilterRequest{})
		assertCode(t, err, codes.InvalidArgument)
	})
}

// stubQueryStream satisfies ReservationService_QueryServer for relay tests.
type stubQueryStream struct {
	grpc.ServerStream
	ctx     context.Context
	sent    []*pb.Reservation
	sendErr error
}

func (s *stubQueryStream) Context() context.Context { return s.ctx }

func (s *stubQueryStream) Send(r *pb.Reservation) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, r)
	return nil
}

func items(in ...repository.QueryItem) <-chan repository.QueryItem {
	ch := make(chan repository.QueryItem, len(in))
	for _, item := range in {
		ch <- item
	}
	close(ch)
	return ch
}

func TestServiceQuery(t *testing.T) {
	ctx := context.Background()
	query := &pb.ReservationQuery{UserId: "john"}

	t.Run("success: forwards items in producer order", func(t *testing.T) {
		svc, manager := newService(t)
		stream := &stubQueryStream{ctx: ctx}
		manager.EXPECT().Query(ctx, query).Return(items(
			repository.QueryItem{Reservation: sampleReservation(1)},
			repository.QueryItem{Reservation: sampleReservation(2)},
		), nil)

		err := svc.Query(&pb.QueryRequest{Query: query}, stream)
		require.NoError(t, err)
		require.Len(t, stream.sent, 2)
		assert.Equal(t, int64(1), stream.sent[0].GetId())
		assert.Equal(t, int64(2), stream.sent[1].GetId())
	})

	t.Run("success: mid-stream error is not terminal", func(t *testing.T) {
		svc, manager := newService(t)
		stream := &stubQueryStream{ctx: ctx}
		manager.EXPECT().Query(ctx, query).Return(items(
			repository.QueryItem{Reservation: sampleReservation(1)},
			repository.QueryItem{Err: errs.NewDb(errors.New("bad row"))},
			repository.QueryItem{Reservation: sampleReservation(3)},
		), nil)

		err := svc.Query(&pb.QueryRequest{Query: query}, stream)
		require.NoError(t, err)
		assert.Len(t, stream.sent, 2)
	})

	t.Run("error: trailing error fails the stream", func(t *testing.T) {
		svc, manager := newService(t)
		stream := &stubQueryStream{ctx: ctx}
		manager.EXPECT().Query(ctx, query).Return(items(
			repository.QueryItem{Reservation: sampleReservation(1)},
			repository.QueryItem{Err: errs.NewDb(errors.New("cursor died"))},
		), nil)

		err := svc.Query(&pb.QueryRequest{Query: query}, stream)
		assertCode(t, err, codes.Internal)
		assert.Len(t, stream.sent, 1)
	})

	t.Run("error: missing payload", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.Query(&pb.QueryRequest{}, &stubQueryStream{ctx: ctx})
		assertCode(t, err, codes.InvalidArgument)
	})

	t.Run("error: invalid query propagates", func(t *testing.T) {
		svc, manager := newService(t)
		manager.EXPECT().Query(ctx, query).Return(nil, errs.NewInvalidStatus(9))

		err := svc.Query(&pb.QueryRequest{Query: query}, &stubQueryStream{ctx: ctx})
		assertCode(t, err, codes.InvalidArgument)
	})

	t.Run("error: failed send aborts the relay", func(t *testing.T) {
		svc, manager := newService(t)
		stream := &stubQueryStream{ctx: ctx, sendErr: errors.New("transport closed")}
		manager.EXPECT().Query(ctx, query).Return(items(
			repository.QueryItem{Reservation: sampleReservation(1)},
		), nil)

		err := svc.Query(&pb.QueryRequest{Query: query}, stream)
		assert.Error(t, err)
	})
}

func TestServiceListen(t *testing.T) {
	svc, _ := newService(t)

	err := svc.Listen(&pb.ListenRequest{}, nil)
	assertCode(t, err, codes.Unimplemented)
}
