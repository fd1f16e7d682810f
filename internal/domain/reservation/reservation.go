// Package reservation carries the value-level semantics of a reservation:
// validation of inbound messages, status mapping between the wire enum and
// the database enum, and timespan handling. The wire messages themselves
// are the value objects; this package never stores state.
package reservation

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"reservation-service/internal/pkg/pgconv"

	pb "reservation-service/gen/reservationpb"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// NewPending builds a pending reservation for the half-open window
// [start, end). Used by callers and heavily by tests.
func NewPending(userID, resourceID string, start, end time.Time, note string) *pb.Reservation {
	return &pb.Reservation{
		UserId:     userID,
		ResourceId: resourceID,
		Start:      timestamppb.New(start.UTC()),
		End:        timestamppb.New(end.UTC()),
		Note:       note,
		Status:     pb.ReservationStatus_RESERVATION_STATUS_PENDING,
	}
}

// Timespan returns the [start, end) range value for the reservation.
func Timespan(rsvp *pb.Reservation) pgtype.Range[pgtype.Timestamptz] {
	return pgconv.TimespanFromProto(rsvp.GetStart(), rsvp.GetEnd())
}

// DecodeRow scans one reservations row in column order
// (id, user_id, resource_id, timespan, note, status).
//
// Both timespan bounds must be present: the insert path always writes a
// bounded range and the column is NOT NULL, so an unbounded range is a
// data-model violation and panics rather than limping on.
func DecodeRow(row pgx.Row) (*pb.Reservation, error) {
	var (
		id                 int64
		userID, resourceID string
		span               pgtype.Range[pgtype.Timestamptz]
		note               pgtype.Text
		status             string
	)
	if err := row.Scan(&id, &userID, &resourceID, &span, &note, &status); err != nil {
		return nil, err
	}

	if !span.Lower.Valid || !span.Upper.Valid {
		panic(fmt.Sprintf("reservation %d has an unbounded timespan", id))
	}

	return &pb.Reservation{
		Id:         id,
		UserId:     userID,
		ResourceId: resourceID,
		Start:      pgconv.ProtoFromPgtype(span.Lower),
		End:        pgconv.ProtoFromPgtype(span.Upper),
		Note:       pgconv.StringFromPgtype(note),
		Status:     StatusFromSQL(status),
	}, nil
}
