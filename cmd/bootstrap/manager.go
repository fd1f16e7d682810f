package bootstrap

import (
	"go.uber.org/fx"

	"reservation-service/internal/handler/rpc"
	"reservation-service/internal/infra/repository"
)

var ManagerModule = fx.Module("manager",
	fx.Provide(
		repository.NewManager,
		func(m *repository.Manager) rpc.ReservationManager { return m },
	),
)
