package devicesync

import (
	"context"
	"strings"
	"testing"

	"device-sync/core/metrics"
	"device-sync/core/reconcile"
	"device-sync/feature/dcim/dcimtest"
	"device-sync/feature/dcim/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTagged returns a registry with every exemption tag created.
func newTagged(t *testing.T, db *gorm.DB) *TagRegistry {
	t.Helper()
	reg := NewTagRegistry(db)
	_, err := reg.EnsureAll(context.Background())
	require.NoError(t, err)
	return reg
}

func runScan(t *testing.T, s *Scanner) *Result {
	t.Helper()
	log := NewJobLog(JobScan, nil)
	require.NoError(t, s.Run(context.Background(), log))
	return log.Finish(nil)
}

func TestScanner_SupersetReportsNothing(t *testing.T) {
	db := dcimtest.NewDB(t)
	dt := dcimtest.DeviceType(t, db, "c9300")
	d := dcimtest.Device(t, db, "sw1", dt)
	dcimtest.InterfaceTemplates(t, db, dt, "Gi1", "Gi2")
	dcimtest.Interfaces(t, db, d, "Gi1", "Gi2", "Gi3")

	res := runScan(t, NewScanner(db, newTagged(t, db), nil, 0))

	assert.Empty(t, res.Entries)
	assert.Empty(t, res.Devices)
	assert.Equal(t, 1, res.Summary.Devices)
	assert.Equal(t, StatusCompleted, res.Status)
}

func TestScanner_MissingInterfaceWarns(t *testing.T) {
	db := dcimtest.NewDB(t)
	dt := dcimtest.DeviceType(t, db, "c9300")
	d := dcimtest.Device(t, db, "sw1", dt)
	dcimtest.InterfaceTemplates(t, db, dt, "Gi1", "Gi2")
	dcimtest.Interfaces(t, db, d, "Gi2")

	res := runScan(t, NewScanner(db, newTagged(t, db), nil, 0))

	require.Len(t, res.Entries, 1)
	e := res.Entries[0]
	assert.Equal(t, reconcile.SeverityWarning, e.Severity)
	assert.Equal(t, "interface", e.Category)
	assert.Contains(t, e.Message, "Gi1")
	assert.Equal(t, `Missing interface ["Gi1"]`, e.Message)
	assert.Equal(t, []string{"Gi1"}, e.Names)
	require.NotNil(t, e.Object)
	assert.Equal(t, d.ID, e.Object.ID)

	require.Len(t, res.Devices, 1)
	assert.Equal(t, "sw1", res.Devices[0].Name)
	assert.Equal(t, 1, res.Summary.Missing)
	assert.Equal(t, 1, res.Summary.MissingComponents)
}

func TestScanner_ExemptDeviceTypeIsInfoOnly(t *testing.T) {
	db := dcimtest.NewDB(t)
	reg := newTagged(t, db)
	tag, err := reg.Lookup(context.Background(), mustCategory(t, "interface"))
	require.NoError(t, err)

	dt := dcimtest.DeviceType(t, db, "c9300")
	dcimtest.Device(t, db, "sw1", dt)
	dcimtest.InterfaceTemplates(t, db, dt, "Gi1")
	dcimtest.Tag(t, db, dt, tag)

	res := runScan(t, NewScanner(db, reg, nil, 0))

	assert.Zero(t, res.Count(reconcile.SeverityWarning))
	infos := res.Filter(reconcile.SeverityInfo)
	require.Len(t, infos, 1)
	assert.True(t, strings.HasSuffix(infos[0].Message, "(exempted)"))
	assert.Contains(t, infos[0].Message, "Gi1")
	assert.Empty(t, res.Devices)
	assert.Equal(t, 1, res.Summary.Exempted)
}

func TestScanner_ExemptionIsPerCategory(t *testing.T) {
	db := dcimtest.NewDB(t)
	reg := newTagged(t, db)
	tag, err := reg.Lookup(context.Background(), mustCategory(t, "console port"))
	require.NoError(t, err)

	dt := dcimtest.DeviceType(t, db, "c9300")
	d := dcimtest.Device(t, db, "sw1", dt)
	dcimtest.InterfaceTemplates(t, db, dt, "Gi1")
	dcimtest.Create(t, db, &models.ConsolePortTemplate{TemplateBase: dcimtest.Template(dt, "con0")})
	dcimtest.Tag(t, db, d, tag)

	res := runScan(t, NewScanner(db, reg, nil, 0))

	require.Len(t, res.Entries, 2)
	assert.Equal(t, "console_port", res.Entries[0].Category)
	assert.Equal(t, reconcile.SeverityInfo, res.Entries[0].Severity)
	assert.Equal(t, "interface", res.Entries[1].Category)
	assert.Equal(t, reconcile.SeverityWarning, res.Entries[1].Severity)
}

func TestScanner_RequiresTags(t *testing.T) {
	db := dcimtest.NewDB(t)
	dt := dcimtest.DeviceType(t, db, "c9300")
	dcimtest.Device(t, db, "sw1", dt)

	err := NewScanner(db, NewTagRegistry(db), nil, 0).Run(context.Background(), NewJobLog(JobScan, nil))
	assert.ErrorIs(t, err, ErrTagNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestScanner_DoesNotWrite(t *testing.T) {
	db := dcimtest.NewDB(t)
	dt := dcimtest.DeviceType(t, db, "c9300")
	dcimtest.Device(t, db, "sw1", dt)
	dcimtest.InterfaceTemplates(t, db, dt, "Gi1", "Gi2")

	runScan(t, NewScanner(db, newTagged(t, db), nil, 0))

	var count int64
	require.NoError(t, db.Model(&models.Interface{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestScanner_Batches(t *testing.T) {
	db := dcimtest.NewDB(t)
	dt := dcimtest.DeviceType(t, db, "c9300")
	dcimtest.InterfaceTemplates(t, db, dt, "Gi1")
	for _, name := range []string{"sw1", "sw2", "sw3"} {
		dcimtest.Device(t, db, name, dt)
	}

	reg := prometheus.NewRegistry()
	res := runScan(t, NewScanner(db, newTagged(t, db), metrics.New(reg), 2))

	assert.Equal(t, 3, res.Summary.Devices)
	require.Len(t, res.Devices, 3)
	assert.Equal(t, "sw1", res.Devices[0].Name)
	assert.Equal(t, "sw3", res.Devices[2].Name)

	n, err := testutil.GatherAndCount(reg, "devicesync_missing_components")
	require.NoError(t, err)
	assert.Equal(t, 16, n)
}
