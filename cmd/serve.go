package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nextlevelbuilder/dayclaw/internal/agent"
	"github.com/nextlevelbuilder/dayclaw/internal/channels/telegram"
	"github.com/nextlevelbuilder/dayclaw/internal/config"
	dayhttp "github.com/nextlevelbuilder/dayclaw/internal/http"
	"github.com/nextlevelbuilder/dayclaw/internal/intent"
	"github.com/nextlevelbuilder/dayclaw/internal/providers"
	"github.com/nextlevelbuilder/dayclaw/internal/scheduler"
	"github.com/nextlevelbuilder/dayclaw/internal/search"
	"github.com/nextlevelbuilder/dayclaw/internal/store"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the webhook server (and optional Telegram channel)",
		Run: func(cmd *cobra.Command, args []string) {
			if err := runServe(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s\n", err)
				os.Exit(1)
			}
		},
	}
}

func runServe() error {
	cfg := loadConfig()
	ctx := context.Background()

	backend, err := buildBackend(cfg)
	if err != nil {
		return err
	}
	st, err := store.Open(ctx, backend)
	if err != nil {
		return err
	}
	slog.Info("store ready", "backend", backend.Name(), "senders", len(st.SenderIDs()))

	provider, err := providers.New(cfg.Provider.Name, cfg.Provider.APIKey, cfg.Provider.APIBase, cfg.Provider.Model)
	if err != nil {
		return err
	}

	augmenter := search.NewAugmenter(cfg.Search.BraveAPIKey)
	if !augmenter.Enabled() {
		slog.Warn("search: no brave api key, real-time context degrades to the unavailable marker")
	}

	assistant := agent.New(agent.Config{
		Store:     st,
		Provider:  provider,
		Gate:      intent.NewGate(provider, cfg.Provider.ClassifierModel),
		Augmenter: augmenter,
		MaxTurns:  cfg.Memory.MaxTurns,
	})

	mux := http.NewServeMux()
	mux.Handle("/webhook", dayhttp.NewWebhookHandler(assistant, cfg.HTTP.Token))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: mux}

	var channel *telegram.Channel
	if cfg.Telegram.Enabled && cfg.Telegram.Token != "" {
		channel, err = telegram.NewChannel(cfg.Telegram.Token, assistant)
		if err != nil {
			return err
		}
		if err := channel.Start(ctx); err != nil {
			return err
		}
	}

	var reminders *scheduler.Service
	if channel != nil {
		reminders = scheduler.NewService(scheduler.Config{
			MorningCron: cfg.Reminders.MorningCron,
			NightCron:   cfg.Reminders.NightCron,
		}, st, channel)
		reminders.Start()
	} else if cfg.Reminders.MorningCron != "" || cfg.Reminders.NightCron != "" {
		slog.Warn("reminders configured but no outbound channel, skipping")
	}

	watcher := startConfigWatcher()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("webhook server listening", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		slog.Info("shutting down", "signal", sig.String())
	}

	if watcher != nil {
		watcher.Stop()
	}
	if reminders != nil {
		reminders.Stop()
	}
	if channel != nil {
		channel.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	// Final snapshot so the last in-flight mutation is not lost on the way out.
	return st.Save(context.Background())
}

func buildBackend(cfg *config.Config) (store.Backend, error) {
	switch cfg.Store.Backend {
	case "", "file":
		return store.NewFileBackend(cfg.Store.Path), nil
	case "redis":
		return store.NewRedisBackend(cfg.Store.RedisURL, cfg.Store.RedisKey)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
}

// startConfigWatcher hot-reloads the log level on config file edits.
// Returns nil when the config file does not exist.
func startConfigWatcher() *config.Watcher {
	path := resolveConfigPath()
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	watcher, err := config.NewWatcher(path)
	if err != nil {
		slog.Warn("config: watcher unavailable", "error", err)
		return nil
	}
	watcher.OnChange(func(cfg *config.Config) {
		setLogLevel(cfg.LogLevel)
	})
	if err := watcher.Start(); err != nil {
		slog.Warn("config: watcher failed to start", "error", err)
		return nil
	}
	return watcher
}
