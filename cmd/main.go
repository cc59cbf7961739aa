package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	httpapi "github.com/tinoosan/fungible/internal/httpapi/v1"
	"github.com/tinoosan/fungible/internal/ledger"
	"github.com/tinoosan/fungible/internal/service/balance"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Logger (slog to stdout). Level via LOG_LEVEL; format via LOG_FORMAT (json|text, default json)
	logger := buildLoggerFromEnv()
	slog.SetDefault(logger)

	currency := envOr("BOOK_CURRENCY", "USD")
	reg := balance.NewRegistry()
	// token keeps 64-bit accounts and balances, coin 32-bit ones
	token := ledger.New[uint64, uint64]()
	coin := ledger.New[uint32, uint32]()
	if err := balance.Mount(reg, "token", currency, token); err != nil {
		logger.Error("mount book failed", "book", "token", "err", err)
		os.Exit(1)
	}
	if err := balance.Mount(reg, "coin", currency, coin); err != nil {
		logger.Error("mount book failed", "book", "coin", "err", err)
		os.Exit(1)
	}

	// Optional dev seed for local runs
	if dev := strings.ToLower(strings.TrimSpace(os.Getenv("DEV_SEED"))); dev == "1" || dev == "true" || dev == "yes" {
		token.SetBalance(1, 100)
		coin.SetBalance(1, 100)
		logger.Info("DEV seed", "books", []string{"token", "coin"}, "owner", 1, "amount_minor", 100)
		printDevSeedBanner(reg.Books())
	}

	svc := balance.New(reg, logger)
	srv := &http.Server{
		Addr:              envOr("HTTP_ADDR", ":8080"),
		Handler:           httpapi.New(svc, logger).Handler(),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("balance service listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctxShutdown); err != nil {
			logger.Error("server shutdown error", "err", err)
		}
	case err := <-errCh:
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

// printDevSeedBanner prints the seeded books to stdout for easy copy/paste.
func printDevSeedBanner(books []balance.Info) {
	fmt.Println("==================== DEV SEED ====================")
	for _, b := range books {
		fmt.Printf("%s (%d-bit, %s): owner 1 = 100\n", b.Code, b.Bits, b.Currency)
	}
	fmt.Println("==================================================")
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// parseLogLevel maps env values to slog.Leveler
func parseLogLevel(s string) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func buildLoggerFromEnv() *slog.Logger {
	level := parseLogLevel(os.Getenv("LOG_LEVEL"))
	format := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_FORMAT")))
	if format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}
	// default to JSON
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
