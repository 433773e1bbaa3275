package main

import (
	"log/slog"
	"os"

	"spinwin_backend/internal/app"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
