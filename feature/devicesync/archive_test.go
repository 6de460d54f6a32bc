package devicesync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"device-sync/core/storage/mocks"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestArchive_Store(t *testing.T) {
	client := new(mocks.Client)
	a := NewArchive(client, "device-sync", "/reports/device-sync/")

	res := NewJobLog(JobScan, nil).Finish(nil)
	key := "reports/device-sync/scan/" + res.ID + ".json"

	client.On("PutObject", mock.Anything, "device-sync", key, mock.Anything, mock.AnythingOfType("int64"),
		mock.MatchedBy(func(o minio.PutObjectOptions) bool { return o.ContentType == "application/json" }),
	).Return(minio.UploadInfo{Key: key}, nil)

	got, err := a.Store(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, key, got)
	client.AssertExpectations(t)
}

func TestArchive_StoreError(t *testing.T) {
	client := new(mocks.Client)
	a := NewArchive(client, "device-sync", "reports")

	client.On("PutObject", mock.Anything, "device-sync", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	_, err := a.Store(context.Background(), NewJobLog(JobApply, nil).Finish(nil))
	assert.ErrorContains(t, err, "access denied")
}

func TestArchive_List(t *testing.T) {
	client := new(mocks.Client)
	a := NewArchive(client, "device-sync", "reports")

	client.On("ListObjects", mock.Anything, "device-sync", minio.ListObjectsOptions{Prefix: "reports/scan/", Recursive: true}).
		Return(mocks.Objects(
			minio.ObjectInfo{Key: "reports/scan/b.json"},
			minio.ObjectInfo{Key: "reports/scan/a.json"},
			minio.ObjectInfo{Key: "reports/scan/notes.txt"},
			minio.ObjectInfo{Key: "reports/scan/nested/c.json"},
		))

	ids, err := a.List(context.Background(), JobScan)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	_, err = a.List(context.Background(), "reboot")
	assert.ErrorIs(t, err, ErrUnknownJob)
}

func TestArchive_ListError(t *testing.T) {
	client := new(mocks.Client)
	a := NewArchive(client, "device-sync", "reports")

	client.On("ListObjects", mock.Anything, "device-sync", mock.Anything).
		Return(mocks.Objects(minio.ObjectInfo{Err: errors.New("bucket gone")}))

	_, err := a.List(context.Background(), JobApply)
	assert.ErrorContains(t, err, "bucket gone")
}

func TestArchive_Load(t *testing.T) {
	client := new(mocks.Client)
	a := NewArchive(client, "device-sync", "reports")

	res := NewJobLog(JobApply, nil).Finish(nil)
	res.Summary.Created = 4
	data, err := json.Marshal(res)
	require.NoError(t, err)

	client.On("GetObject", mock.Anything, "device-sync", "reports/apply/"+res.ID+".json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader(data)), nil)

	got, err := a.Load(context.Background(), JobApply, res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.ID, got.ID)
	assert.Equal(t, JobApply, got.Job)
	assert.Equal(t, 4, got.Summary.Created)
}

func TestArchive_LoadErrors(t *testing.T) {
	client := new(mocks.Client)
	a := NewArchive(client, "device-sync", "reports")

	_, err := a.Load(context.Background(), JobScan, "../../etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidReportID)

	_, err = a.Load(context.Background(), "reboot", uuid.NewString())
	assert.ErrorIs(t, err, ErrUnknownJob)

	id := uuid.NewString()
	client.On("GetObject", mock.Anything, "device-sync", "reports/scan/"+id+".json", mock.Anything).
		Return(io.NopCloser(errReader{err: minio.ErrorResponse{Code: "NoSuchKey"}}), nil)

	_, err = a.Load(context.Background(), JobScan, id)
	assert.ErrorIs(t, err, ErrReportNotFound)
}
