package scheduler

import (
	"context"
	"fmt"
	"leaguehub/pkg/config"
	"leaguehub/scheduler/jobs"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Scheduler runs the background jobs of the API.
type Scheduler struct {
	scheduler gocron.Scheduler
	logger    *zap.Logger
}

// SchedulerDeps is the dependency list of the scheduler.
type SchedulerDeps struct {
	Config *config.SchedulerConfiguration
	// Warmer is optional, without it there is no warmup job.
	Warmer jobs.CatalogWarmer
	// Uploader is optional, without it there is no log shipping.
	Uploader jobs.LogUploader
	Logger   *zap.Logger
}

// New creates the scheduler with every enabled job registered.
func New(ctx context.Context, deps *SchedulerDeps) (*Scheduler, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("scheduler")

	// Failed runs are only logged, the next tick tries again.
	onError := gocron.WithEventListeners(
		gocron.AfterJobRunsWithError(func(jobID uuid.UUID, jobName string, err error) {
			logger.Warn("Job failed", zap.String("job", jobName), zap.Error(err))
		}),
	)

	// Create a new scheduler with options.
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	// Register the catalog warmup, the first run fills the caches before any request.
	if deps.Warmer != nil && deps.Config.WarmInterval > 0 {
		_, err = s.NewJob(
			gocron.DurationJob(deps.Config.WarmInterval),
			gocron.NewTask(
				jobs.WarmCatalog,
				ctx,
				deps.Warmer,
				logger,
			),
			gocron.WithName("catalog-warmup"),
			gocron.WithTags("cache"),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			gocron.WithStartAt(gocron.WithStartImmediately()),
			onError,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create catalog warmup job: %w", err)
		}
	}

	// Register the log shipping.
	if deps.Uploader != nil && deps.Config.ShipInterval > 0 {
		_, err = s.NewJob(
			gocron.DurationJob(deps.Config.ShipInterval),
			gocron.NewTask(
				func() error {
					return jobs.ShipLogs(ctx, deps.Uploader, time.Now())
				},
			),
			gocron.WithName("log-shipping"),
			gocron.WithTags("logs"),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			onError,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create log shipping job: %w", err)
		}
	}

	return &Scheduler{
		scheduler: s,
		logger:    logger,
	}, nil
}

// Start runs the registered jobs.
func (s *Scheduler) Start() {
	s.logger.Info("Starting scheduler", zap.Int("jobs", len(s.scheduler.Jobs())))
	s.scheduler.Start()
}

// Shutdown stops the scheduler and waits for the running jobs.
func (s *Scheduler) Shutdown() error {
	s.logger.Info("Shutting down scheduler")
	return s.scheduler.Shutdown()
}
