//go:build e2e

package repository_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/infra/repository"
	"reservation-service/internal/pkg/errs"
	"reservation-service/tests/common/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "reservation-service/gen/reservationpb"
)

func newManager(t *testing.T) *repository.Manager {
	t.Helper()
	pool, _ := dbtest.NewPool(t)
	return repository.NewManager(pool, slog.Default())
}

func at(day, hour int) time.Time {
	return time.Date(2024, 1, day, hour, 0, 0, 0, time.UTC)
}

func timestamp(t time.Time) *timestamppb.Timestamp {
	return timestamppb.New(t)
}

func TestReserve(t *testing.T) {
	ctx := context.Background()
	manager := newManager(t)

	t.Run("success: valid window gets an id", func(t *testing.T) {
		rsvp := reservation.NewPending("john", "ocean_view_room_1", at(1, 7), at(3, 7), "arriving at 3pm")

		reserved, err := manager.Reserve(ctx, rsvp)
		require.NoError(t, err)

		assert.Greater(t, reserved.GetId(), int64(0))
		assert.Equal(t, rsvp.GetUserId(), reserved.GetUserId())
		assert.Equal(t, rsvp.GetResourceId(), reserved.GetResourceId())
		assert.Equal(t, rsvp.GetNote(), reserved.GetNote())
		assert.Equal(t, pb.ReservationStatus_RESERVATION_STATUS_PENDING, reserved.GetStatus())
	})

	t.Run("success: out of range status coerces to pending", func(t *testing.T) {
		rsvp := reservation.NewPending("john", "room_9", at(10, 7), at(12, 7), "")
		rsvp.Status = pb.ReservationStatus(42)

		reserved, err := manager.Reserve(ctx, rsvp)
		require.NoError(t, err)
		assert.Equal(t, pb.ReservationStatus_RESERVATION_STATUS_PENDING, reserved.GetStatus())
	})

	t.Run("error: overlapping window reports the existing one", func(t *testing.T) {
		first := reservation.NewPending("john", "room_2", at(1, 7), at(3, 7), "")
		_, err := manager.Reserve(ctx, first)
		require.NoError(t, err)

		second := reservation.NewPending("lei", "room_2", at(2, 7), at(4, 7), "")
		_, err = manager.Reserve(ctx, second)

		require.Error(t, err)
		var rsvpErr *errs.Error
		require.ErrorAs(t, err, &rsvpErr)
		require.Equal(t, errs.KindConflict, rsvpErr.Kind())

		info := rsvpErr.Conflict()
		require.True(t, info.Parsed, "detail should parse: %s", info.Raw)
		assert.Equal(t, "room_2", info.Window.Rid)
		assert.Equal(t, at(1, 7), info.Window.Start)
		assert.Equal(t, at(3, 7), info.Window.End)
	})

	t.Run("error: invalid input never reaches the database", func(t *testing.T) {
		rsvp := reservation.NewPending("", "room_3", at(1, 7), at(3, 7), "")
		_, err := manager.Reserve(ctx, rsvp)
		assert.True(t, errs.IsKind(err, errs.KindInvalidUserID))
	})
}

func TestChangeStatus(t *testing.T) {
	ctx := context.Background()
	manager := newManager(t)

	reserved, err := manager.Reserve(ctx,
		reservation.NewPending("john", "room_1", at(1, 7), at(3, 7), ""))
	require.NoError(t, err)

	t.Run("success: pending becomes confirmed", func(t *testing.T) {
		confirmed, err := manager.ChangeStatus(ctx, reserved.GetId())
		require.NoError(t, err)
		assert.Equal(t, pb.ReservationStatus_RESERVATION_STATUS_CONFIRMED, confirmed.GetStatus())
	})

	t.Run("error: second confirm finds no pending row", func(t *testing.T) {
		_, err := manager.ChangeStatus(ctx, reserved.GetId())
		assert.True(t, errs.IsKind(err, errs.KindNotFound))
	})

	t.Run("error: unknown id", func(t *testing.T) {
		_, err := manager.ChangeStatus(ctx, 99999)
		assert.True(t, errs.IsKind(err, errs.KindNotFound))
	})
}

func TestUpdateNoteAndGet(t *testing.T) {
	ctx := context.Background()
	manager := newManager(t)

	reserved, err := manager.Reserve(ctx,
		reservation.NewPending("john", "room_1", at(1, 7), at(3, 7), "old note"))
	require.NoError(t, err)

	t.Run("success: note replaced", func(t *testing.T) {
		updated, err := manager.UpdateNote(ctx, reserved.GetId(), "new note")
		require.NoError(t, err)
		assert.Equal(t, "new note", updated.GetNote())
	})

	t.Run("success: get round-trips the row", func(t *testing.T) {
		got, err := manager.Get(ctx, reserved.GetId())
		require.NoError(t, err)

		assert.Equal(t, reserved.GetId(), got.GetId())
		assert.Equal(t, "john", got.GetUserId())
		assert.Equal(t, "room_1", got.GetResourceId())
		assert.True(t, got.GetStart().AsTime().Equal(at(1, 7)))
		assert.True(t, got.GetEnd().AsTime().Equal(at(3, 7)))
	})

	t.Run("error: get after delete", func(t *testing.T) {
		require.NoError(t, manager.Delete(ctx, reserved.GetId()))

		_, err := manager.Get(ctx, reserved.GetId())
		assert.True(t, errs.IsKind(err, errs.KindNotFound))
	})

	t.Run("success: deleting a missing row is not an error", func(t *testing.T) {
		assert.NoError(t, manager.Delete(ctx, reserved.GetId()))
	})
}

func TestQuery(t *testing.T) {
	ctx := context.Background()
	manager := newManager(t)

	_, err := manager.Reserve(ctx,
		reservation.NewPending("john", "room_1", at(1, 7), at(3, 7), ""))
	require.NoError(t, err)
	_, err = manager.Reserve(ctx,
		reservation.NewPending("john", "room_1", at(5, 7), at(7, 7), ""))
	require.NoError(t, err)

	query := func() *pb.ReservationQuery {
		return &pb.ReservationQuery{
			UserId: "john",
			Start:  timestamp(at(1, 0)),
			End:    timestamp(at(10, 0)),
			Status: pb.ReservationStatus_RESERVATION_STATUS_PENDING,
		}
	}

	t.Run("success: items arrive in ascending start order then the channel closes", func(t *testing.T) {
		ch, err := manager.Query(ctx, query())
		require.NoError(t, err)

		var starts []time.Time
		for item := range ch {
			require.NoError(t, item.Err)
			starts = append(starts, item.Reservation.GetStart().AsTime())
		}
		require.Len(t, starts, 2)
		assert.True(t, starts[0].Before(starts[1]))
	})

	t.Run("success: descending order flips the stream", func(t *testing.T) {
		q := query()
		q.IsDesc = true

		ch, err := manager.Query(ctx, q)
		require.NoError(t, err)

		var starts []time.Time
		for item := range ch {
			require.NoError(t, item.Err)
			starts = append(starts, item.Reservation.GetStart().AsTime())
		}
		require.Len(t, starts, 2)
		assert.True(t, starts[0].After(starts[1]))
	})

	t.Run("success: cancelled context stops the producer", func(t *testing.T) {
		cancelCtx, cancel := context.WithCancel(ctx)
		ch, err := manager.Query(cancelCtx, query())
		require.NoError(t, err)

		cancel()
		// Drain; the producer must close the channel rather than hang.
		for range ch {
		}
	})

	t.Run("error: out of range status", func(t *testing.T) {
		q := query()
		q.Status = pb.ReservationStatus(7)

		_, err := manager.Query(ctx, q)
		assert.True(t, errs.IsKind(err, errs.KindInvalidStatus))
	})
}

func TestFilter(t *testing.T) {
	ctx := context.Background()
	manager := newManager(t)

	// 19 sequential ids, one per day, all pending.
	for i := range 19 {
		_, err := manager.Reserve(ctx, reservation.NewPending(
			"john",
			fmt.Sprintf("room_%d", i),
			at(1+i, 7), at(1+i, 19),
			"",
		))
		require.NoError(t, err)
	}

	filter := func(cursor int64, isDesc bool) *pb.ReservationFilter {
		return &pb.ReservationFilter{
			UserId:   "john",
			Status:   pb.ReservationStatus_RESERVATION_STATUS_PENDING,
			Cursor:   cursor,
			PageSize: 10,
			IsDesc:   isDesc,
		}
	}

	t.Run("success: middle page", func(t *testing.T) {
		page, pager, err := manager.Filter(ctx, filter(2, false))
		require.NoError(t, err)

		require.Len(t, page, 10)
		assert.Equal(t, int64(3), pager.GetPrev())
		assert.Equal(t, int64(12), pager.GetNext())
		assert.Equal(t, int64(19), pager.GetTotal())
	})

	t.Run("success: last page has no next", func(t *testing.T) {
		page, pager, err := manager.Filter(ctx, filter(12, false))
		require.NoError(t, err)

		require.Len(t, page, 7)
		assert.Equal(t, int64(13), pager.GetPrev())
		assert.Equal(t, int64(-1), pager.GetNext())
	})

	t.Run("success: descending page comes back ascending", func(t *testing.T) {
		page, pager, err := manager.Filter(ctx, filter(13, true))
		require.NoError(t, err)

		require.Len(t, page, 10)
		assert.Equal(t, int64(3), page[0].GetId())
		assert.Equal(t, int64(12), page[len(page)-1].GetId())
		assert.Equal(t, int64(3), pager.GetPrev())
		assert.Equal(t, int64(12), pager.GetNext())
	})

	t.Run("success: zero cursor starts from the beginning", func(t *testing.T) {
		page, pager, err := manager.Filter(ctx, filter(0, false))
		require.NoError(t, err)

		require.Len(t, page, 10)
		assert.Equal(t, int64(1), pager.GetPrev())
		assert.Equal(t, int64(10), pager.GetNext())
	})
}
