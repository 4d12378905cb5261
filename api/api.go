package main

import (
	"context"
	"encoding/json"
	"fmt"
	"leaguehub/api/filters"
	grpcserver "leaguehub/api/grpc"
	"leaguehub/api/middleware"
	"leaguehub/api/modules"
	"leaguehub/api/routes"
	"leaguehub/pkg/config"
	"leaguehub/pkg/logger"
	"leaguehub/pkg/redis"
	"leaguehub/scheduler"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the CLI, serving is the default.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "leaguehub",
		Short:        "Featured players and champion catalog API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "warm",
			Short: "Resolve the catalog version and fetch the catalog once",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runWarm(cmd.Context())
			},
		},
		newFeaturedCmd(),
	)

	return root
}

// newFeaturedCmd runs a single aggregation and prints it.
func newFeaturedCmd() *cobra.Command {
	var qp filters.FeaturedQueryParams

	cmd := &cobra.Command{
		Use:   "featured",
		Short: "Print the featured players of a platform as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeatured(cmd.Context(), &qp)
		},
	}

	cmd.Flags().StringVar(&qp.Platform, "platform", "euw1", "platform code")
	cmd.Flags().StringVar(&qp.Queue, "queue", "RANKED_SOLO_5x5", "queue name or id")
	cmd.Flags().StringVar(&qp.Limit, "limit", "10", "amount of players, from 1 to 20")

	return cmd
}

// app is what every command is built from.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	sink   *logger.FileSink
	redis  *redis.RedisClient
	module *modules.Module
}

// newApp loads the configuration and wires the modules.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("couldn't initialize the configuration: %w", err)
	}

	zapLogger, sink, err := logger.New(cfg.Logs)
	if err != nil {
		return nil, fmt.Errorf("couldn't initialize the logger: %w", err)
	}

	a := &app{cfg: cfg, logger: zapLogger, sink: sink}

	// Redis is optional, a unreachable one only means memory caching.
	if cfg.Redis.Enabled() {
		client := redis.NewClient(cfg.Redis)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()

		if err := client.Ping(pingCtx); err != nil {
			zapLogger.Warn("Redis unreachable, using memory caches only", zap.Error(err))
			client.Close()
		} else {
			a.redis = client
		}
	}

	a.module = modules.NewModule(&modules.ModuleDependencies{
		Config: cfg,
		Logger: zapLogger,
		Redis:  a.redis,
	})

	return a, nil
}

// close releases everything in reverse order.
func (a *app) close() {
	a.module.Close()
	if a.redis != nil {
		a.redis.Close()
	}
	a.logger.Sync()
	if a.sink != nil {
		a.sink.Close()
	}
}

// runServe starts the HTTP API, the optional gRPC health check and the scheduler until a signal arrives.
func runServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	// Start the background jobs.
	schedulerDeps := &scheduler.SchedulerDeps{
		Config: &a.cfg.Scheduler,
		Warmer: a.module.ChampionService,
		Logger: a.logger,
	}
	if a.sink != nil {
		schedulerDeps.Uploader = a.sink
	}

	s, err := scheduler.New(ctx, schedulerDeps)
	if err != nil {
		return err
	}
	s.Start()
	defer s.Shutdown()

	// Start the health check if configured.
	var health *grpcserver.HealthServer
	if a.cfg.Server.GRPCAddr != "" {
		health, err = grpcserver.NewHealthServer(a.cfg.Server.GRPCAddr, a.logger)
		if err != nil {
			return fmt.Errorf("couldn't start the grpc server: %w", err)
		}
		health.Serve()
		health.SetServing(true)
		defer health.Stop()
	}

	// Create a new router with the routes setup.
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logger(a.logger),
		middleware.Recovery(a.logger),
		middleware.CORS(),
	)

	router := routes.NewRouter(engine)
	router.SetupRoutes(a.module.Handlers()...)

	a.logger.Info("Starting HTTP server", zap.String("addr", a.cfg.Server.Addr))
	err = router.Run(ctx, a.cfg.Server.Addr)

	if health != nil {
		health.SetServing(false)
	}
	a.logger.Info("HTTP server stopped")

	return err
}

// runWarm fills the catalog once and prints a summary.
func runWarm(ctx context.Context) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	listing, err := a.module.ChampionService.Warm(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("version %s, %d champions\n", listing.Version, listing.Count)
	return nil
}

// runFeatured does a single aggregation and prints the result.
func runFeatured(ctx context.Context, qp *filters.FeaturedQueryParams) error {
	filter, err := filters.NewFeaturedFilter(qp)
	if err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	result, _, err := a.module.FeaturedService.GetFeatured(ctx, filter)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
