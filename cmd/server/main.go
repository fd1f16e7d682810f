package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"reservation-service/cmd/bootstrap"
)

func main() {
	app := fx.New(
		bootstrap.Module,
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start", "error", err.Error())
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop cleanly", "error", err.Error())
		os.Exit(1)
	}
}
