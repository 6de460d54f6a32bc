package devicesync

import (
	"context"
	"time"

	"device-sync/core/metrics"
	"device-sync/core/reconcile"
	"device-sync/feature/dcim/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs the synchronization jobs.
type Service struct {
	db      *gorm.DB
	logger  *zap.Logger
	metrics *metrics.Metrics
	archive *Archive
	tags    *TagRegistry
	scanner *Scanner
	applier *Applier
}

// NewService creates a new synchronization service. m and archive may be nil.
func NewService(db *gorm.DB, logger *zap.Logger, m *metrics.Metrics, archive *Archive, cfg Config) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	tags := NewTagRegistry(db)
	return &Service{
		db:      db,
		logger:  logger,
		metrics: m,
		archive: archive,
		tags:    tags,
		scanner: NewScanner(db, tags, m, cfg.BatchSize),
		applier: NewApplier(db, tags, m),
	}
}

// EnsureTags creates every missing exemption tag. Jobs expect it to have run once.
func (s *Service) EnsureTags(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.tags.EnsureAll(ctx)
	if err != nil {
		s.logger.Error("Failed to ensure exemption tags", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Exemption tags ready", zap.Int("count", len(tags)))
	return tags, nil
}

// Scan reports missing components on every device.
func (s *Service) Scan(ctx context.Context) (*Result, error) {
	return s.run(ctx, JobScan, false, func(log *JobLog) error {
		return s.scanner.Run(ctx, log)
	})
}

// Apply creates missing components on the selected devices.
func (s *Service) Apply(ctx context.Context, ids []uint, opts reconcile.Options) (*Result, error) {
	return s.run(ctx, JobApply, opts.DryRun, func(log *JobLog) error {
		return s.applier.Run(ctx, ids, opts, log)
	})
}

// Reports lists archived result IDs of job.
func (s *Service) Reports(ctx context.Context, job string) ([]string, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	return s.archive.List(ctx, job)
}

// Report loads an archived result.
func (s *Service) Report(ctx context.Context, job, id string) (*Result, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	return s.archive.Load(ctx, job, id)
}

// run executes fn as one job run. The result is returned even when fn fails.
func (s *Service) run(ctx context.Context, job string, dryRun bool, fn func(*JobLog) error) (*Result, error) {
	log := NewJobLog(job, s.logger)
	log.Result().DryRun = dryRun

	err := fn(log)
	res := log.Finish(err)
	s.metrics.ObserveJob(job, res.Status, res.FinishedAt.Sub(res.StartedAt))

	if s.archive != nil {
		// Archive even when the request was cancelled.
		actx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()
		if key, aerr := s.archive.Store(actx, res); aerr != nil {
			s.logger.Warn("Failed to archive job report", zap.String("job", job), zap.String("id", res.ID), zap.Error(aerr))
		} else {
			s.logger.Debug("Archived job report", zap.String("key", key))
		}
	}
	return res, err
}
