package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/khata-app/khata/internal/config"
	"github.com/khata-app/khata/internal/httpapi"
	"github.com/khata-app/khata/internal/middleware"
	"github.com/khata-app/khata/internal/service"
	"github.com/khata-app/khata/internal/storage/sqlite"
	"github.com/khata-app/khata/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	budget := service.NewBudgetService(store, nil)
	ledger := service.NewLedgerService(store, nil)

	api := httpapi.NewServer(budget, ledger)
	handler := middleware.Logging(middleware.Metrics(middleware.CORS(api.Routes())))

	// Wrap with h2c so HTTP/2 works without TLS
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("Server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
