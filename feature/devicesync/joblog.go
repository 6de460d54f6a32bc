package devicesync

import (
	"time"

	"device-sync/core/logger"
	"device-sync/core/reconcile"
	"device-sync/feature/dcim/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Job names.
const (
	JobScan  = "scan"
	JobApply = "apply"
)

// Job statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Result is the outcome of a job run.
type Result struct {
	ID         string    `json:"id"`
	Job        string    `json:"job"`
	Status     string    `json:"status"`
	DryRun     bool      `json:"dry_run,omitempty"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	// Devices lists the devices with unexempted missing components (scan only).
	Devices []reconcile.ObjectRef `json:"devices,omitempty"`
	reconcile.Report
}

// JobLog records report entries for one job run and mirrors them to zap.
type JobLog struct {
	result *Result
	logger *zap.Logger
	marked map[uint]struct{}
}

// NewJobLog starts the log of a new run of job.
func NewJobLog(job string, l *zap.Logger) *JobLog {
	if l == nil {
		l = zap.NewNop()
	}
	id := uuid.NewString()
	return &JobLog{
		result: &Result{
			ID:        id,
			Job:       job,
			Status:    StatusRunning,
			StartedAt: time.Now().UTC(),
		},
		logger: logger.WithJob(l, job, id),
		marked: make(map[uint]struct{}),
	}
}

// Result returns the run's result. It is complete only after Finish.
func (j *JobLog) Result() *Result {
	return j.result
}

// Summary returns the run's summary for updating.
func (j *JobLog) Summary() *reconcile.Summary {
	return &j.result.Summary
}

// Log records an entry.
func (j *JobLog) Log(e reconcile.Entry) {
	e = j.result.Add(e)

	fields := []zap.Field{zap.String("severity", string(e.Severity))}
	if e.Object != nil {
		fields = append(fields,
			zap.String("object_type", e.Object.Type),
			zap.Uint("object_id", e.Object.ID),
			zap.String("object", e.Object.Name),
		)
	}
	if e.Category != "" {
		fields = append(fields, zap.String("category", e.Category))
	}
	if len(e.Names) > 0 {
		fields = append(fields, zap.Strings("names", e.Names))
	}
	if e.Count > 0 {
		fields = append(fields, zap.Int("count", e.Count))
	}

	switch e.Severity {
	case reconcile.SeverityWarning:
		j.logger.Warn(e.Message, fields...)
	case reconcile.SeverityFailure:
		j.logger.Error(e.Message, fields...)
	default:
		j.logger.Info(e.Message, fields...)
	}
}

// Info records an informational note about a device.
func (j *JobLog) Info(d *models.Device, category, msg string, names []string) {
	j.Log(reconcile.Entry{Severity: reconcile.SeverityInfo, Object: deviceRef(d), Category: category, Message: msg, Names: names})
}

// Warning records a warning about a device.
func (j *JobLog) Warning(d *models.Device, category, msg string, names []string) {
	j.Log(reconcile.Entry{Severity: reconcile.SeverityWarning, Object: deviceRef(d), Category: category, Message: msg, Names: names})
}

// Success records a completed mutation on a device.
func (j *JobLog) Success(d *models.Device, category, msg string, names []string, count int) {
	j.Log(reconcile.Entry{Severity: reconcile.SeveritySuccess, Object: deviceRef(d), Category: category, Message: msg, Names: names, Count: count})
}

// MarkDevice adds the device to the result's device list once.
func (j *JobLog) MarkDevice(d *models.Device) {
	if _, ok := j.marked[d.ID]; ok {
		return
	}
	j.marked[d.ID] = struct{}{}
	j.result.Devices = append(j.result.Devices, *deviceRef(d))
}

// Finish closes the run, recording err as a failure when set.
func (j *JobLog) Finish(err error) *Result {
	if err != nil {
		j.Log(reconcile.Entry{Severity: reconcile.SeverityFailure, Message: err.Error()})
		j.result.Status = StatusFailed
		j.result.Error = err.Error()
	} else {
		j.result.Status = StatusCompleted
	}
	j.result.FinishedAt = time.Now().UTC()

	s := j.result.Summary
	j.logger.Info("Job finished",
		zap.String("status", j.result.Status),
		zap.Int("devices", s.Devices),
		zap.Int("missing", s.Missing),
		zap.Int("exempted", s.Exempted),
		zap.Int("created", s.Created),
		zap.Duration("elapsed", j.result.FinishedAt.Sub(j.result.StartedAt)),
	)
	return j.result
}

func deviceRef(d *models.Device) *reconcile.ObjectRef {
	if d == nil {
		return nil
	}
	return &reconcile.ObjectRef{Type: models.ContentTypeDevice, ID: d.ID, Name: d.DisplayName()}
}
