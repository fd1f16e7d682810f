package repository

import (
	pb "reservation-service/gen/reservationpb"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// normalizePageSize mirrors the clamp applied inside the stored function
// so the pager's full-page check agrees with what the database returned.
func normalizePageSize(size int32) int32 {
	switch {
	case size < 1:
		return defaultPageSize
	case size > maxPageSize:
		return maxPageSize
	default:
		return size
	}
}

// buildPager derives cursors from a page already in ascending id order.
// Prev is the first element's id, or -1 for an empty page. Next is the
// last element's id only when the page is full; a short page is the last
// one and gets -1.
func buildPager(page []*pb.Reservation, pageSize int32) *pb.FilterPager {
	pager := &pb.FilterPager{Prev: -1, Next: -1}
	if len(page) == 0 {
		return pager
	}
	pager.Prev = page[0].GetId()
	if len(page) == int(pageSize) {
		pager.Next = page[len(page)-1].GetId()
	}
	return pager
}
