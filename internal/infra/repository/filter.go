package repository

import (
	"context"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/pkg/errs"
	"reservation-service/internal/pkg/pgconv"

	pb "reservation-service/gen/reservationpb"
)

// Filter pages through reservations with a keyset cursor and returns the
// page together with its pager. Pages always come back ascending by id;
// a descending filter is reversed before the pager is computed.
func (m *Manager) Filter(ctx context.Context, f *pb.ReservationFilter) ([]*pb.Reservation, *pb.FilterPager, error) {
	status := reservation.CoerceStatus(int32(f.GetStatus()))
	pageSize := normalizePageSize(f.GetPageSize())

	rows, err := m.pool.Query(ctx,
		`SELECT `+reservationColumns+` FROM rsvp.filter($1, $2, $3::rsvp.reservation_status, $4, $5, $6)`,
		pgconv.TextOrNil(f.GetUserId()),
		pgconv.TextOrNil(f.GetResourceId()),
		reservation.StatusToSQL(status),
		cursorOrNil(f.GetCursor()),
		f.GetIsDesc(),
		pageSize,
	)
	if err != nil {
		return nil, nil, errs.FromDB(err)
	}
	defer rows.Close()

	var page []*pb.Reservation
	for rows.Next() {
		rsvp, err := reservation.DecodeRow(rows)
		if err != nil {
			return nil, nil, errs.FromDB(err)
		}
		page = append(page, rsvp)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, errs.FromDB(err)
	}

	if f.GetIsDesc() {
		reversePage(page)
	}

	total, err := m.countFiltered(ctx, f, status)
	if err != nil {
		return nil, nil, err
	}

	pager := buildPager(page, pageSize)
	pager.Total = total
	return page, pager, nil
}

// countFiltered issues the separate COUNT(*) that feeds the pager total.
func (m *Manager) countFiltered(ctx context.Context, f *pb.ReservationFilter, status pb.ReservationStatus) (int64, error) {
	var total int64
	err := m.pool.QueryRow(ctx,
		`SELECT count(*) FROM rsvp.reservations
		 WHERE status = $1::rsvp.reservation_status
		   AND ($2::text IS NULL OR user_id = $2)
		   AND ($3::text IS NULL OR resource_id = $3)`,
		reservation.StatusToSQL(status),
		pgconv.TextOrNil(f.GetUserId()),
		pgconv.TextOrNil(f.GetResourceId()),
	).Scan(&total)
	if err != nil {
		return 0, errs.FromDB(err)
	}
	return total, nil
}

// cursorOrNil maps the zero sentinel to SQL NULL so the stored function
// picks its direction-dependent default.
func cursorOrNil(cursor int64) any {
	if cursor <= 0 {
		return nil
	}
	return cursor
}

func reversePage(page []*pb.Reservation) {
	for i, j := 0, len(page)-1; i < j; i, j = i+1, j-1 {
		page[i], page[j] = page[j], page[i]
	}
}
