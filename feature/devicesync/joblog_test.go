package devicesync

import (
	"errors"
	"testing"

	"device-sync/core/reconcile"
	"device-sync/feature/dcim/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestJobLog_MirrorsToLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewJobLog(JobScan, zap.New(core))

	d := &models.Device{ID: 7, Name: "sw7"}
	log.Warning(d, "interface", `Missing interface ["Gi1"]`, []string{"Gi1"})
	log.Info(d, "console_port", "console_port exempted", nil)
	log.Success(d, "interface", "Created 1 interface", []string{"Gi1"}, 1)

	warns := logs.FilterLevelExact(zap.WarnLevel).All()
	require.Len(t, warns, 1)
	fields := warns[0].ContextMap()
	assert.Equal(t, "scan", fields["job"])
	assert.Equal(t, "sw7", fields["object"])
	assert.Equal(t, "interface", fields["category"])
	assert.Equal(t, log.Result().ID, fields["run_id"])

	assert.Equal(t, 2, logs.FilterLevelExact(zap.InfoLevel).Len())
	assert.Len(t, log.Result().Entries, 3)
}

func TestJobLog_MarkDeviceOnce(t *testing.T) {
	log := NewJobLog(JobScan, nil)
	d := &models.Device{ID: 3}

	log.MarkDevice(d)
	log.MarkDevice(d)

	require.Len(t, log.Result().Devices, 1)
	assert.Equal(t, "device-3", log.Result().Devices[0].Name)
	assert.Equal(t, models.ContentTypeDevice, log.Result().Devices[0].Type)
}

func TestJobLog_Finish(t *testing.T) {
	ok := NewJobLog(JobApply, nil)
	res := ok.Finish(nil)
	assert.Equal(t, StatusCompleted, res.Status)
	assert.False(t, res.FinishedAt.Before(res.StartedAt))
	_, err := uuid.Parse(res.ID)
	assert.NoError(t, err)

	failed := NewJobLog(JobApply, nil)
	res = failed.Finish(errors.New("disk full"))
	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, "disk full", res.Error)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, reconcile.SeverityFailure, res.Entries[0].Severity)
	assert.Nil(t, res.Entries[0].Object)
}
