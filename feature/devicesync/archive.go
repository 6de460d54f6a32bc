package devicesync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"device-sync/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

var (
	// ErrArchiveDisabled is returned by archive reads when archiving is off.
	ErrArchiveDisabled = errors.New("report archive is disabled")
	// ErrReportNotFound is returned when an archived report does not exist.
	ErrReportNotFound = errors.New("report not found")
	// ErrUnknownJob is returned for a job name other than scan or apply.
	ErrUnknownJob = errors.New("unknown job")
	// ErrInvalidReportID is returned for a report ID that is not a UUID.
	ErrInvalidReportID = errors.New("invalid report id")
)

// Archive stores job results as JSON objects.
type Archive struct {
	client storage.Client
	bucket string
	prefix string
}

// NewArchive creates an archive writing under prefix in bucket.
func NewArchive(client storage.Client, bucket, prefix string) *Archive {
	return &Archive{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Key returns the object key of a result.
func (a *Archive) Key(job, id string) string {
	return path.Join(a.prefix, job, id+".json")
}

// Store uploads the result and returns its object key.
func (a *Archive) Store(ctx context.Context, r *Result) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	key := a.Key(r.Job, r.ID)
	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report %s: %w", key, err)
	}
	return key, nil
}

// List returns the IDs of archived results of job, sorted.
func (a *Archive) List(ctx context.Context, job string) ([]string, error) {
	if err := validateJob(job); err != nil {
		return nil, err
	}

	dir := path.Join(a.prefix, job) + "/"
	var ids []string
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: dir, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list reports: %w", obj.Err)
		}
		name := strings.TrimPrefix(obj.Key, dir)
		if id, ok := strings.CutSuffix(name, ".json"); ok && !strings.Contains(id, "/") {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Load downloads an archived result.
func (a *Archive) Load(ctx context.Context, job, id string) (*Result, error) {
	if err := validateJob(job); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidReportID, id)
	}

	key := a.Key(job, id)
	obj, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get report %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("%w: %s", ErrReportNotFound, key)
		}
		return nil, fmt.Errorf("failed to read report %s: %w", key, err)
	}

	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode report %s: %w", key, err)
	}
	return &r, nil
}

func validateJob(job string) error {
	switch job {
	case JobScan, JobApply:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownJob, job)
}
