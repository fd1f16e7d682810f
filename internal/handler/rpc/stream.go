package rpc

import (
	"reservation-service/internal/infra/repository"

	pb "reservation-service/gen/reservationpb"
)

// relay drains the producer channel into the server stream.
//
// A per-item error is not immediately terminal: the producer keeps going
// after a bad row, so the error is held back while the stream continues.
// Only an error that turns out to be the last item before the channel
// closes fails the RPC; earlier ones are logged and dropped. Items are
// forwarded in producer order, and a failed Send aborts the relay, which
// cancels the stream context and stops the producer.
func (s *Service) relay(stream pb.ReservationService_QueryServer, ch <-chan repository.QueryItem) error {
	var pending error
	for item := range ch {
		if pending != nil {
			s.logger.Warn("dropping non-terminal query stream error", "error", pending.Error())
			pending = nil
		}
		if item.Err != nil {
			pending = item.Err
			continue
		}
		if err := stream.Send(item.Reservation); err != nil {
			return err
		}
	}
	return pending
}
