package repository

import (
	"context"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/pkg/errs"
	"reservation-service/internal/pkg/pgconv"

	pb "reservation-service/gen/reservationpb"
)

// queryBuffer bounds the producer channel. A slow stream consumer
// backpressures the cursor instead of growing memory.
const queryBuffer = 128

// QueryItem is one element of a streaming query: a decoded row or the
// error that replaced it. Errors are items, not terminators; the producer
// keeps going after a bad row.
type QueryItem struct {
	Reservation *pb.Reservation
	Err         error
}

// Query validates the query and launches a producer goroutine that feeds
// rows into a bounded channel. The channel closes when the cursor is
// drained or ctx is cancelled; cancelling ctx is how a departed consumer
// stops the producer.
func (m *Manager) Query(ctx context.Context, q *pb.ReservationQuery) (<-chan QueryItem, error) {
	if err := reservation.ValidateQuery(q); err != nil {
		return nil, err
	}

	status := reservation.CoerceStatus(int32(q.GetStatus()))

	rows, err := m.pool.Query(ctx,
		`SELECT `+reservationColumns+` FROM rsvp.query($1, $2, $3, $4, $5::rsvp.reservation_status, $6, $7, $8)`,
		pgconv.TextOrNil(q.GetUserId()),
		pgconv.TextOrNil(q.GetResourceId()),
		q.GetStart().AsTime(),
		q.GetEnd().AsTime(),
		reservation.StatusToSQL(status),
		q.GetIsDesc(),
		q.GetPage(),
		q.GetPageSize(),
	)
	if err != nil {
		return nil, errs.FromDB(err)
	}

	ch := make(chan QueryItem, queryBuffer)
	go func() {
		defer close(ch)
		defer rows.Close()

		for rows.Next() {
			rsvp, err := reservation.DecodeRow(rows)
			item := QueryItem{Reservation: rsvp}
			if err != nil {
				item = QueryItem{Err: errs.FromDB(err)}
			}
			select {
			case ch <- item:
			case <-ctx.Done():
				return
			}
		}
		if err := rows.Err(); err != nil {
			select {
			case ch <- QueryItem{Err: errs.FromDB(err)}:
			case <-ctx.Done():
			}
		}
	}()
	return ch, nil
}
