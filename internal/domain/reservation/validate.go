package reservation

import (
	"reservation-service/internal/pkg/errs"

	"google.golang.org/protobuf/types/known/timestamppb"

	pb "reservation-service/gen/reservationpb"
)

// ValidateReservation enforces well-formedness of an inbound reservation:
// non-empty user and resource ids and a valid half-open time range. Status
// is intentionally not validated here; see CoerceStatus.
func ValidateReservation(rsvp *pb.Reservation) error {
	if rsvp.GetUserId() == "" {
		return errs.NewInvalidUserID(rsvp.GetUserId())
	}
	if rsvp.GetResourceId() == "" {
		return errs.NewInvalidResourceID(rsvp.GetResourceId())
	}
	return validateRange(rsvp.GetStart(), rsvp.GetEnd())
}

// ValidateQuery enforces a valid range and an in-range status code on a
// streaming query.
func ValidateQuery(q *pb.ReservationQuery) error {
	if !StatusInRange(int32(q.GetStatus())) {
		return errs.NewInvalidStatus(int32(q.GetStatus()))
	}
	return validateRange(q.GetStart(), q.GetEnd())
}

// ValidateReservationID rejects the zero sentinel and negative ids.
func ValidateReservationID(id int64) error {
	if id <= 0 {
		return errs.NewInvalidReservationID(id)
	}
	return nil
}

// validateRange requires both endpoints and start strictly before end.
func validateRange(start, end *timestamppb.Timestamp) error {
	if start == nil || end == nil {
		return errs.ErrInvalidTime
	}
	if !start.AsTime().Before(end.AsTime()) {
		return errs.ErrInvalidTime
	}
	return nil
}
