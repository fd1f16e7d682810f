// Package repository implements the reservation manager on top of a pgx
// connection pool. Every operation is a single statement running in its
// own implicit transaction; conflict detection is delegated entirely to
// the exclusion constraint on rsvp.reservations.
package repository

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/pkg/errs"
	"reservation-service/internal/pkg/pgconv"

	pb "reservation-service/gen/reservationpb"
)

const reservationColumns = "id, user_id, resource_id, timespan, note, status"

type Manager struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewManager(pool *pgxpool.Pool, logger *slog.Logger) *Manager {
	return &Manager{pool: pool, logger: logger}
}

// Reserve validates and inserts a reservation, returning a copy carrying
// the generated id. An out-of-range status code is coerced to pending
// rather than rejected.
func (m *Manager) Reserve(ctx context.Context, rsvp *pb.Reservation) (*pb.Reservation, error) {
	if err := reservation.ValidateReservation(rsvp); err != nil {
		return nil, err
	}

	status := reservation.CoerceStatus(int32(rsvp.GetStatus()))

	var id int64
	err := m.pool.QueryRow(ctx,
		`INSERT INTO rsvp.reservations (user_id, resource_id, timespan, note, status)
		 VALUES ($1, $2, $3, $4, $5::rsvp.reservation_status)
		 RETURNING id`,
		rsvp.GetUserId(),
		rsvp.GetResourceId(),
		reservation.Timespan(rsvp),
		pgconv.TextOrNil(rsvp.GetNote()),
		reservation.StatusToSQL(status),
	).Scan(&id)
	if err != nil {
		return nil, errs.FromDB(err)
	}

	reserved := &pb.Reservation{
		Id:         id,
		UserId:     rsvp.GetUserId(),
		ResourceId: rsvp.GetResourceId(),
		Start:      rsvp.GetStart(),
		End:        rsvp.GetEnd(),
		Note:       rsvp.GetNote(),
		Status:     status,
	}
	return reserved, nil
}

// ChangeStatus confirms a pending reservation. The conditional update is
// the concurrency control: of two racing confirms only one sees the
// pending row, the loser gets zero rows back and surfaces NotFound.
func (m *Manager) ChangeStatus(ctx context.Context, id int64) (*pb.Reservation, error) {
	if err := reservation.ValidateReservationID(id); err != nil {
		return nil, err
	}

	row := m.pool.QueryRow(ctx,
		`UPDATE rsvp.reservations SET status = 'confirmed'
		 WHERE id = $1 AND status = 'pending'
		 RETURNING `+reservationColumns,
		id,
	)
	rsvp, err := reservation.DecodeRow(row)
	if err != nil {
		return nil, errs.FromDB(err)
	}
	return rsvp, nil
}

// UpdateNote replaces the note of an existing reservation.
func (m *Manager) UpdateNote(ctx context.Context, id int64, note string) (*pb.Reservation, error) {
	if err := reservation.ValidateReservationID(id); err != nil {
		return nil, err
	}

	row := m.pool.QueryRow(ctx,
		`UPDATE rsvp.reservations SET note = $2
		 WHERE id = $1
		 RETURNING `+reservationColumns,
		id, pgconv.TextOrNil(note),
	)
	rsvp, err := reservation.DecodeRow(row)
	if err != nil {
		return nil, errs.FromDB(err)
	}
	return rsvp, nil
}

// Delete removes a reservation. Deleting a missing row is not an error
// here; a follow-up Get will report NotFound.
func (m *Manager) Delete(ctx context.Context, id int64) error {
	if err := reservation.ValidateReservationID(id); err != nil {
		return err
	}

	if _, err := m.pool.Exec(ctx, `DELETE FROM rsvp.reservations WHERE id = $1`, id); err != nil {
		return errs.FromDB(err)
	}
	return nil
}

// Get fetches a reservation by id.
func (m *Manager) Get(ctx context.Context, id int64) (*pb.Reservation, error) {
	if err := reservation.ValidateReservationID(id); err != nil {
		return nil, err
	}

	row := m.pool.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM rsvp.reservations WHERE id = $1`, id)
	rsvp, err := reservation.DecodeRow(row)
	if err != nil {
		return nil, errs.FromDB(err)
	}
	return rsvp, nil
}
