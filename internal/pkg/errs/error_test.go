//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"reservation-service/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestFromDB(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		expectKind errs.Kind
	}{
		{
			name: "success: exclusion violation on rsvp.reservations becomes conflict",
			err: &pgconn.PgError{
				Code:       "23P01",
				SchemaName: "rsvp",
				TableName:  "reservations",
				Detail:     sampleDetail,
			},
			expectKind: errs.KindConflict,
		},
		{
			name: "success: exclusion violation on another table stays db failure",
			err: &pgconn.PgError{
				Code:       "23P01",
				SchemaName: "public",
				TableName:  "bookings",
			},
			expectKind: errs.KindDb,
		},
		{
			name:       "success: missing row becomes not found",
			err:        pgx.ErrNoRows,
			expectKind: errs.KindNotFound,
		},
		{
			name:       "success: generic driver error becomes db failure",
			err:        errors.New("connection refused"),
			expectKind: errs.KindDb,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := errs.FromDB(tc.err)

			assert.Equal(t, tc.expectKind, actual.Kind())
			assert.True(t, errs.IsKind(actual, tc.expectKind))
		})
	}

	t.Run("success: conflict carries the parsed window", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:       "23P01",
			SchemaName: "rsvp",
			TableName:  "reservations",
			Detail:     sampleDetail,
		}

		actual := errs.FromDB(pgErr)

		require.Equal(t, errs.KindConflict, actual.Kind())
		require.True(t, actual.Conflict().Parsed)
		assert.Equal(t, "room_2", actual.Conflict().Window.Rid)
	})
}

func TestErrorEqual(t *testing.T) {
	conflict := errs.FromDB(&pgconn.PgError{
		Code: "23P01", SchemaName: "rsvp", TableName: "reservations", Detail: sampleDetail,
	})

	testCases := []struct {
		name     string
		a, b     *errs.Error
		expected bool
	}{
		{name: "success: same sentinel", a: errs.ErrNotFound, b: errs.ErrNotFound, expected: true},
		{name: "success: db errors ignore the cause", a: errs.NewDb(errors.New("a")), b: errs.NewDb(errors.New("b")), expected: true},
		{name: "success: same invalid user id", a: errs.NewInvalidUserID("alice"), b: errs.NewInvalidUserID("alice"), expected: true},
		{name: "error: different invalid user id", a: errs.NewInvalidUserID("alice"), b: errs.NewInvalidUserID("bob"), expected: false},
		{name: "error: different kinds", a: errs.ErrNotFound, b: errs.ErrInvalidTime, expected: false},
		{name: "error: different status codes", a: errs.NewInvalidStatus(5), b: errs.NewInvalidStatus(6), expected: false},
		{name: "success: same conflict window", a: conflict, b: conflict, expected: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Equal(tc.b))
		})
	}
}

func TestGRPCStatus(t *testing.T) {
	testCases := []struct {
		name       string
		err        *errs.Error
		expectCode codes.Code
	}{
		{name: "conflict maps to AlreadyExists", err: errs.NewConflict(errs.ConflictInfo{Raw: "x"}, nil), expectCode: codes.AlreadyExists},
		{name: "not found maps to NotFound", err: errs.ErrNotFound, expectCode: codes.NotFound},
		{name: "invalid time maps to InvalidArgument", err: errs.ErrInvalidTime, expectCode: codes.InvalidArgument},
		{name: "invalid user id maps to InvalidArgument", err: errs.NewInvalidUserID(""), expectCode: codes.InvalidArgument},
		{name: "invalid reservation id maps to InvalidArgument", err: errs.NewInvalidReservationID(-1), expectCode: codes.InvalidArgument},
		{name: "invalid status maps to InvalidArgument", err: errs.NewInvalidStatus(99), expectCode: codes.InvalidArgument},
		{name: "db failure maps to Internal", err: errs.NewDb(errors.New("boom")), expectCode: codes.Internal},
		{name: "unknown maps to Internal", err: errs.ErrUnknown, expectCode: codes.Internal},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			st, ok := status.FromError(tc.err)

			require.True(t, ok)
			assert.Equal(t, tc.expectCode, st.Code())
			assert.Equal(t, tc.err.Error(), st.Message())
		})
	}
}
