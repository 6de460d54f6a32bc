package devicesync

import (
	"context"
	"fmt"

	"device-sync/core/metrics"
	"device-sync/core/reconcile"
	"device-sync/feature/dcim/models"

	"gorm.io/gorm"
)

// Scanner reports devices missing components their device type defines. It never writes.
type Scanner struct {
	db        *gorm.DB
	tags      *TagRegistry
	metrics   *metrics.Metrics
	batchSize int
}

// NewScanner creates a scanner. batchSize bounds how many devices are loaded at once.
func NewScanner(db *gorm.DB, tags *TagRegistry, m *metrics.Metrics, batchSize int) *Scanner {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &Scanner{db: db, tags: tags, metrics: m, batchSize: batchSize}
}

// tally counts missing components per category for metrics.
type tally struct {
	missing  int
	exempted int
}

// Run scans every device. For each category with missing components it logs a
// warning, or an info note when the category's exemption tag is on the device
// or its device type. Exemption tags are looked up, never created: a missing tag
// fails the run. Tags are re-read from the database at the start of every run.
func (s *Scanner) Run(ctx context.Context, log *JobLog) error {
	s.tags.Invalidate()

	cats := Categories()
	exempt := make([]*models.Tag, len(cats))
	for i, c := range cats {
		tag, err := s.tags.Lookup(ctx, c)
		if err != nil {
			return err
		}
		exempt[i] = tag
	}

	templates := newTemplateIndex(s.db)
	counts := make([]tally, len(cats))

	var batch []models.Device
	err := s.db.WithContext(ctx).
		Preload("Tags").
		Preload("DeviceType.Tags").
		FindInBatches(&batch, s.batchSize, func(_ *gorm.DB, _ int) error {
			for i := range batch {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := s.scanDevice(ctx, &batch[i], cats, exempt, templates, counts, log); err != nil {
					return err
				}
			}
			return nil
		}).Error
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	for i, c := range cats {
		s.metrics.SetMissing(c.Name(), false, counts[i].missing)
		s.metrics.SetMissing(c.Name(), true, counts[i].exempted)
	}
	return nil
}

func (s *Scanner) scanDevice(ctx context.Context, d *models.Device, cats []Category, exempt []*models.Tag, templates *templateIndex, counts []tally, log *JobLog) error {
	summary := log.Summary()
	summary.Devices++

	for i, c := range cats {
		want, err := templates.names(ctx, c, i, d.DeviceTypeID)
		if err != nil {
			return err
		}
		if len(want) == 0 {
			continue
		}

		have, err := c.DeviceNames(ctx, s.db, d.ID)
		if err != nil {
			return err
		}

		missing := reconcile.Missing(want, have)
		if len(missing) == 0 {
			continue
		}

		if d.HasTag(exempt[i].ID) {
			log.Info(d, c.Key(), fmt.Sprintf("Missing %s %s (exempted)", c.Key(), reconcile.FormatNames(missing)), missing)
			summary.Exempted++
			counts[i].exempted += len(missing)
			continue
		}

		log.Warning(d, c.Key(), fmt.Sprintf("Missing %s %s", c.Key(), reconcile.FormatNames(missing)), missing)
		log.MarkDevice(d)
		summary.Missing++
		summary.MissingComponents += len(missing)
		counts[i].missing += len(missing)
	}
	return nil
}

// templateIndex memoizes template names per device type and category for one run.
type templateIndex struct {
	db    *gorm.DB
	cache map[uint][][]string
}

func newTemplateIndex(db *gorm.DB) *templateIndex {
	return &templateIndex{db: db, cache: make(map[uint][][]string)}
}

func (t *templateIndex) names(ctx context.Context, c Category, idx int, deviceTypeID uint) ([]string, error) {
	row, ok := t.cache[deviceTypeID]
	if !ok {
		row = make([][]string, len(categories))
		t.cache[deviceTypeID] = row
	}
	if row[idx] != nil {
		return row[idx], nil
	}

	names, err := c.TemplateNames(ctx, t.db, deviceTypeID)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	row[idx] = names
	return names, nil
}
