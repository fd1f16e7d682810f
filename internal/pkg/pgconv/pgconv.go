// Package pgconv converts between pgtype values and the wire-level
// protobuf representation of reservations.
package pgconv

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Timespan builds the half-open [start, end) tstzrange value used for both
// inserts and conflict checks. Everywhere in this system the lower bound is
// inclusive and the upper bound exclusive.
func Timespan(start, end time.Time) pgtype.Range[pgtype.Timestamptz] {
	return pgtype.Range[pgtype.Timestamptz]{
		Lower:     pgtype.Timestamptz{Time: start.UTC(), Valid: true},
		Upper:     pgtype.Timestamptz{Time: end.UTC(), Valid: true},
		LowerType: pgtype.Inclusive,
		UpperType: pgtype.Exclusive,
		Valid:     true,
	}
}

// TimespanFromProto is Timespan over protobuf timestamps. Callers validate
// presence first; nil endpoints are a programming error here.
func TimespanFromProto(start, end *timestamppb.Timestamp) pgtype.Range[pgtype.Timestamptz] {
	return Timespan(start.AsTime(), end.AsTime())
}

// ProtoFromPgtype converts a scanned timestamptz into a wire timestamp.
func ProtoFromPgtype(t pgtype.Timestamptz) *timestamppb.Timestamp {
	return timestamppb.New(t.Time.UTC())
}

// TextOrNil maps the empty string, which means "any" in query and filter
// requests, to SQL NULL.
func TextOrNil(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

// StringFromPgtype returns the text value, or "" for NULL.
func StringFromPgtype(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}
