package devicesync

import (
	"context"
	"errors"
	"fmt"

	"device-sync/core/metrics"
	"device-sync/core/reconcile"
	"device-sync/feature/dcim/models"

	"gorm.io/gorm"
)

var (
	// ErrNoDevices is returned when the applier is given no device IDs.
	ErrNoDevices = errors.New("no devices selected")
	// ErrDeviceNotFound is returned when a selected device ID does not exist.
	ErrDeviceNotFound = errors.New("device not found")
)

// Applier creates missing components on selected devices from their device type templates.
type Applier struct {
	db      *gorm.DB
	tags    *TagRegistry
	metrics *metrics.Metrics
}

// NewApplier creates an applier.
func NewApplier(db *gorm.DB, tags *TagRegistry, m *metrics.Metrics) *Applier {
	return &Applier{db: db, tags: tags, metrics: m}
}

// Run synchronizes the devices with the given IDs, in the order given.
// Categories are processed in table order, each in its own transaction, so a
// failure leaves earlier categories committed. Exempted categories are skipped.
func (a *Applier) Run(ctx context.Context, ids []uint, opts reconcile.Options, log *JobLog) error {
	devices, err := a.loadDevices(ctx, ids)
	if err != nil {
		return err
	}

	cats := Categories()
	exempt := make([]*models.Tag, len(cats))
	for i, c := range cats {
		tag, _, err := a.tags.Ensure(ctx, c)
		if err != nil {
			return err
		}
		exempt[i] = tag
	}

	summary := log.Summary()
	for di := range devices {
		d := &devices[di]
		summary.Devices++

		for i, c := range cats {
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.HasTag(exempt[i].ID) {
				log.Info(d, c.Key(), fmt.Sprintf("%s exempted", c.Key()), nil)
				summary.Exempted++
				continue
			}

			if opts.DryRun {
				missing, err := a.missing(ctx, a.db, c, d)
				if err != nil {
					return err
				}
				if len(missing) > 0 {
					log.Info(d, c.Key(), fmt.Sprintf("Would create %d %s", len(missing), c.Key()), missing)
					summary.Missing++
					summary.MissingComponents += len(missing)
				}
				continue
			}

			var (
				missing []string
				created int
			)
			err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				var err error
				missing, err = a.missing(ctx, tx, c, d)
				if err != nil {
					return err
				}
				created, err = c.Instantiate(ctx, tx, d, missing)
				return err
			})
			if err != nil {
				return fmt.Errorf("device %s: %w", d.DisplayName(), err)
			}
			if created == 0 {
				continue
			}

			log.Success(d, c.Key(), fmt.Sprintf("Created %d %s", created, c.Key()), missing, created)
			summary.Missing++
			summary.MissingComponents += len(missing)
			summary.Created += created
			a.metrics.AddCreated(c.Name(), created)
		}
	}
	return nil
}

// missing lists template names of c not yet present on d.
func (a *Applier) missing(ctx context.Context, db *gorm.DB, c Category, d *models.Device) ([]string, error) {
	want, err := c.TemplateNames(ctx, db, d.DeviceTypeID)
	if err != nil {
		return nil, err
	}
	if len(want) == 0 {
		return nil, nil
	}
	have, err := c.DeviceNames(ctx, db, d.ID)
	if err != nil {
		return nil, err
	}
	return reconcile.Missing(want, have), nil
}

// loadDevices fetches the devices with their tags, keeping the order of ids
// and dropping repeats. Every ID must exist.
func (a *Applier) loadDevices(ctx context.Context, ids []uint) ([]models.Device, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, ErrNoDevices
	}

	var found []models.Device
	err := a.db.WithContext(ctx).
		Preload("Tags").
		Preload("DeviceType.Tags").
		Where("id IN ?", ids).
		Find(&found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load devices: %w", err)
	}

	byID := make(map[uint]models.Device, len(found))
	for _, d := range found {
		byID[d.ID] = d
	}

	devices := make([]models.Device, 0, len(ids))
	for _, id := range ids {
		d, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrDeviceNotFound, id)
		}
		devices = append(devices, d)
	}
	return devices, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
