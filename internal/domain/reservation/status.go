package reservation

import (
	pb "reservation-service/gen/reservationpb"
)

// Status names as stored in the rsvp.reservation_status database enum.
const (
	statusUnknown   = "unknown"
	statusPending   = "pending"
	statusConfirmed = "confirmed"
	statusBlocked   = "blocked"
)

// StatusInRange reports whether code names a member of the wire enum.
func StatusInRange(code int32) bool {
	_, ok := pb.ReservationStatus_name[code]
	return ok
}

// CoerceStatus maps a wire status code to the value written to storage.
// Out-of-range codes and the unknown sentinel both collapse to pending;
// the wire enum is deliberately permissive on insert.
func CoerceStatus(code int32) pb.ReservationStatus {
	s := pb.ReservationStatus(code)
	if !StatusInRange(code) || s == pb.ReservationStatus_RESERVATION_STATUS_UNKNOWN {
		return pb.ReservationStatus_RESERVATION_STATUS_PENDING
	}
	return s
}

// StatusToSQL renders a wire status as the database enum label.
func StatusToSQL(s pb.ReservationStatus) string {
	switch s {
	case pb.ReservationStatus_RESERVATION_STATUS_PENDING:
		return statusPending
	case pb.ReservationStatus_RESERVATION_STATUS_CONFIRMED:
		return statusConfirmed
	case pb.ReservationStatus_RESERVATION_STATUS_BLOCKED:
		return statusBlocked
	default:
		return statusUnknown
	}
}

// StatusFromSQL maps a database enum label back to the wire enum. The
// mapping is total: unknown is never written by this service but rows
// holding it must still decode.
func StatusFromSQL(label string) pb.ReservationStatus {
	switch label {
	case statusPending:
		return pb.ReservationStatus_RESERVATION_STATUS_PENDING
	case statusConfirmed:
		return pb.ReservationStatus_RESERVATION_STATUS_CONFIRMED
	case statusBlocked:
		return pb.ReservationStatus_RESERVATION_STATUS_BLOCKED
	default:
		return pb.ReservationStatus_RESERVATION_STATUS_UNKNOWN
	}
}
