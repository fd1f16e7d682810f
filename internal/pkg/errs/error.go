package errs

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind classifies every failure the reservation core can produce.
type Kind int

const (
	KindUnknown Kind = iota
	KindReadConfig
	KindParseConfig
	KindDb
	KindConflict
	KindNotFound
	KindInvalidTime
	KindInvalidUserID
	KindInvalidReservationID
	KindInvalidResourceID
	KindInvalidStatus
)

func (k Kind) String() string {
	switch k {
	case KindReadConfig:
		return "READ_CONFIG"
	case KindParseConfig:
		return "PARSE_CONFIG"
	case KindDb:
		return "DB_FAILURE"
	case KindConflict:
		return "CONFLICT"
	case KindNotFound:
		return "NOT_FOUND"
	case KindInvalidTime:
		return "INVALID_TIME"
	case KindInvalidUserID:
		return "INVALID_USER_ID"
	case KindInvalidReservationID:
		return "INVALID_RESERVATION_ID"
	case KindInvalidResourceID:
		return "INVALID_RESOURCE_ID"
	case KindInvalidStatus:
		return "INVALID_STATUS"
	default:
		return "UNKNOWN"
	}
}

// Error is the typed failure value used across the manager and the RPC
// surface. Exactly one payload field is populated, depending on the kind.
type Error struct {
	kind     Kind
	conflict ConflictInfo // KindConflict
	str      string       // KindInvalidUserID / KindInvalidResourceID
	id       int64        // KindInvalidReservationID
	code     int32        // KindInvalidStatus
	cause    error        // KindDb / KindReadConfig / KindParseConfig
}

var (
	ErrUnknown     = &Error{kind: KindUnknown}
	ErrNotFound    = &Error{kind: KindNotFound}
	ErrInvalidTime = &Error{kind: KindInvalidTime}
)

func NewReadConfig(cause error) *Error  { return &Error{kind: KindReadConfig, cause: cause} }
func NewParseConfig(cause error) *Error { return &Error{kind: KindParseConfig, cause: cause} }

func NewDb(cause error) *Error {
	return &Error{kind: KindDb, cause: Wrap(cause, "database operation failed")}
}

func NewConflict(info ConflictInfo, cause error) *Error {
	return &Error{kind: KindConflict, conflict: info, cause: cause}
}

func NewInvalidUserID(id string) *Error     { return &Error{kind: KindInvalidUserID, str: id} }
func NewInvalidResourceID(id string) *Error { return &Error{kind: KindInvalidResourceID, str: id} }
func NewInvalidReservationID(id int64) *Error {
	return &Error{kind: KindInvalidReservationID, id: id}
}
func NewInvalidStatus(code int32) *Error { return &Error{kind: KindInvalidStatus, code: code} }

func (e *Error) Error() string {
	switch e.kind {
	case KindReadConfig:
		return "failed to read configuration file"
	case KindParseConfig:
		return "failed to parse configuration file"
	case KindDb:
		return "database error: " + e.cause.Error()
	case KindConflict:
		return "conflict reservation: " + e.conflict.String()
	case KindNotFound:
		return "no reservation found by the given condition"
	case KindInvalidTime:
		return "invalid start or end time for the reservation"
	case KindInvalidUserID:
		return fmt.Sprintf("invalid user id: %q", e.str)
	case KindInvalidReservationID:
		return fmt.Sprintf("invalid reservation id: %d", e.id)
	case KindInvalidResourceID:
		return fmt.Sprintf("invalid resource id: %q", e.str)
	case KindInvalidStatus:
		return fmt.Sprintf("invalid status: %d", e.code)
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Kind() Kind { return e.kind }

// Conflict returns the parsed or raw conflict detail. Only meaningful for
// KindConflict.
func (e *Error) Conflict() ConflictInfo { return e.conflict }

// InvalidString returns the offending user or resource id.
func (e *Error) InvalidString() string { return e.str }

// InvalidID returns the offending reservation id.
func (e *Error) InvalidID() int64 { return e.id }

// InvalidCode returns the offending status code.
func (e *Error) InvalidCode() int32 { return e.code }

// Equal reports structural equality between two errors. Db errors compare
// equal regardless of the underlying driver payload so tests stay tractable.
func (e *Error) Equal(other *Error) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.kind != other.kind {
		return false
	}
	switch e.kind {
	case KindConflict:
		return e.conflict.Equal(other.conflict)
	case KindInvalidUserID, KindInvalidResourceID:
		return e.str == other.str
	case KindInvalidReservationID:
		return e.id == other.id
	case KindInvalidStatus:
		return e.code == other.code
	default:
		return true
	}
}

// GRPCStatus maps the taxonomy onto RPC status codes. The grpc status
// package picks this up via status.FromError, so handlers can return an
// *Error unchanged.
func (e *Error) GRPCStatus() *status.Status {
	switch e.kind {
	case KindConflict:
		return status.New(codes.AlreadyExists, e.Error())
	case KindNotFound:
		return status.New(codes.NotFound, e.Error())
	case KindInvalidTime, KindInvalidUserID, KindInvalidReservationID,
		KindInvalidResourceID, KindInvalidStatus:
		return status.New(codes.InvalidArgument, e.Error())
	default:
		return status.New(codes.Internal, e.Error())
	}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == kind
	}
	return false
}

// FromDB classifies a pgx driver error into the taxonomy. An
// exclusion-constraint violation (23P01) on rsvp.reservations becomes a
// conflict carrying the parsed window; a missing row becomes NotFound;
// anything else is a plain Db error.
func FromDB(err error) *Error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23P01" && pgErr.SchemaName == "rsvp" && pgErr.TableName == "reservations" {
			return NewConflict(ParseConflict(pgErr.Detail), err)
		}
		return NewDb(err)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &Error{kind: KindNotFound, cause: err}
	}
	return NewDb(err)
}
