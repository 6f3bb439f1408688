package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "taskflow.app/taskflow/internal/configs"
	httpapi "taskflow.app/taskflow/internal/http"
	middleware "taskflow.app/taskflow/internal/http/middlewares"
	"taskflow.app/taskflow/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task tracking HTTP API on the configured store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		taskService := services.NewTaskService(newStore(cfg))

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := taskService.Init(ctx); err != nil {
			log.Printf("initial load failed, starting with an empty collection: %v", err)
		}

		e := echo.New()

		if cfg.RedisAddr != "" {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			e.Use(middleware.RedisRateLimiter(redisClient, cfg.RateLimit, time.Minute))
		} else {
			e.Use(middleware.RateLimiter(cfg.RateLimit, time.Minute))
		}

		handler := httpapi.NewHandler(taskService)
		httpapi.Register(e, handler)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		echoCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(echoCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
