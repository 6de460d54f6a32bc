package devicesync

// Config holds configuration for the synchronization jobs.
type Config struct {
	// EnsureTagsOnStart creates missing exemption tags when the server starts.
	EnsureTagsOnStart bool `mapstructure:"ensure_tags_on_start" default:"true"`
	// ArchiveReports stores every job result in object storage.
	ArchiveReports bool `mapstructure:"archive_reports" default:"false"`
	// ReportPrefix is the object key prefix for archived results.
	ReportPrefix string `mapstructure:"report_prefix" default:"reports/device-sync"`
	// BatchSize is the number of devices the scanner loads per query.
	BatchSize int `mapstructure:"batch_size" default:"500"`
}
