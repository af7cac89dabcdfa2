package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/despensa-app/expiry-notifier/loadtest/internal/stub"
)

// Stub upstream for load runs: serves seedable Firestore documents and
// Identity Toolkit accounts and swallows EmailJS sends, so the scanner can
// be driven hard without touching Firebase or a mail provider.
func main() {
	port := os.Getenv("STUB_PORT")
	if port == "" {
		port = "9090"
	}

	storage := stub.NewInventoryStorage()
	handler := stub.NewHandler(storage)

	r := gin.Default()
	handler.Register(r)

	slog.Info("stub server starting", slog.String("port", port))
	if err := r.Run(":" + port); err != nil {
		slog.Error("stub server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
