// Package dcimtest provides an in-memory inventory database and fixture helpers for tests.
package dcimtest

import (
	"testing"

	"device-sync/core/database"
	"device-sync/feature/dcim/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns a migrated, empty SQLite in-memory inventory.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, models.All()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Create inserts every value, failing the test on error.
func Create(t testing.TB, db *gorm.DB, values ...any) {
	t.Helper()
	for _, v := range values {
		require.NoError(t, db.Create(v).Error)
	}
}

// DeviceType creates a device type with the given model name.
func DeviceType(t testing.TB, db *gorm.DB, model string) *models.DeviceType {
	t.Helper()
	dt := &models.DeviceType{Manufacturer: "Acme", Model: model, Slug: model}
	Create(t, db, dt)
	return dt
}

// Device creates a device of the given device type.
func Device(t testing.TB, db *gorm.DB, name string, dt *models.DeviceType) *models.Device {
	t.Helper()
	d := &models.Device{Name: name, DeviceTypeID: dt.ID}
	Create(t, db, d)
	return d
}

// Template returns a template base for dt with the given name.
func Template(dt *models.DeviceType, name string) models.TemplateBase {
	return models.TemplateBase{DeviceTypeID: dt.ID, Name: name}
}

// Component returns a component base for d with the given name.
func Component(d *models.Device, name string) models.ComponentBase {
	return models.ComponentBase{DeviceID: d.ID, Name: name}
}

// InterfaceTemplates creates one interface template per name on dt.
func InterfaceTemplates(t testing.TB, db *gorm.DB, dt *models.DeviceType, names ...string) {
	t.Helper()
	for _, name := range names {
		Create(t, db, &models.InterfaceTemplate{TemplateBase: Template(dt, name)})
	}
}

// Interfaces creates one interface per name on d.
func Interfaces(t testing.TB, db *gorm.DB, d *models.Device, names ...string) {
	t.Helper()
	for _, name := range names {
		Create(t, db, &models.Interface{ComponentBase: Component(d, name), Enabled: true})
	}
}

// Tag attaches tag to the device or device type given as owner.
func Tag(t testing.TB, db *gorm.DB, owner any, tag *models.Tag) {
	t.Helper()
	require.NoError(t, db.Model(owner).Association("Tags").Append(tag))
}
