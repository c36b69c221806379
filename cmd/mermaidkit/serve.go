package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aretw0/mermaidkit"
	httpAdapter "github.com/aretw0/mermaidkit/internal/adapters/http"
	"github.com/aretw0/mermaidkit/internal/adapters/redis"
	"github.com/aretw0/mermaidkit/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP render server",
	Long: `Serves POST /render, GET /kinds, GET /metrics and GET /healthz.
With --redis, rendered documents are cached in Redis.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")
		ttl, _ := cmd.Flags().GetDuration("cache-ttl")

		if tui.IsTerminal(os.Stderr) {
			tui.PrintBanner(os.Stderr, strings.TrimSpace(mermaidkit.Version))
		}

		opts := []httpAdapter.Option{httpAdapter.WithLogger(logger)}
		if redisAddr != "" {
			cache := redis.New(redisAddr, os.Getenv("REDIS_PASSWORD"), 0, redis.WithTTL(ttl))
			defer cache.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			err := cache.Ping(ctx)
			cancel()
			if err != nil {
				return err
			}
			opts = append(opts, httpAdapter.WithCache(cache))
			logger.Info("render cache enabled", "redis", redisAddr, "ttl", ttl)
		}

		srv := &http.Server{
			Addr:              ":" + port,
			Handler:           httpAdapter.NewHandler(opts...),
			ReadHeaderTimeout: 10 * time.Second,
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting mermaidkit server", "address", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(shutdown)

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				return srv.Close()
			}
			logger.Info("server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for the render cache (disabled when empty)")
	serveCmd.Flags().Duration("cache-ttl", time.Hour, "Expiration of cached renders (0 keeps them forever)")
}
