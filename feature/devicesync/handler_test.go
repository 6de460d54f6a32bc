package devicesync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"device-sync/core/storage/mocks"
	"device-sync/feature/dcim/dcimtest"
	"device-sync/feature/dcim/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T, archive *Archive) (*fiber.App, *gorm.DB) {
	app := fiber.New()
	db := dcimtest.NewDB(t)
	svc := NewService(db, zap.NewNop(), nil, archive, Config{})
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out.Bytes()
}

func TestHandleCategories(t *testing.T) {
	app, _ := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/sync/categories", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var rows []CategoryInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 8)
	assert.Equal(t, "power_port", rows[2].Key)
	assert.Equal(t, "power_outlet", rows[3].Key)
}

func TestHandleEnsureTags(t *testing.T) {
	app, db := setupTestApp(t, nil)

	status, body := postJSON(t, app, "/sync/tags", nil)
	assert.Equal(t, 200, status)

	var tags []models.Tag
	require.NoError(t, json.Unmarshal(body, &tags))
	assert.Len(t, tags, 8)

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.Equal(t, int64(8), count)
}

func TestHandleScan(t *testing.T) {
	app, db := setupTestApp(t, nil)

	status, _ := postJSON(t, app, "/sync/scan", nil)
	assert.Equal(t, fiber.StatusConflict, status, "tags not initialized")

	_, err := NewTagRegistry(db).EnsureAll(context.Background())
	require.NoError(t, err)
	dt := dcimtest.DeviceType(t, db, "c9300")
	dcimtest.Device(t, db, "sw1", dt)
	dcimtest.InterfaceTemplates(t, db, dt, "Gi1")

	status, body := postJSON(t, app, "/sync/scan", nil)
	assert.Equal(t, 200, status)

	var res Result
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, StatusCompleted, res.Status)
	require.Len(t, res.Entries, 1)
	assert.Contains(t, res.Entries[0].Message, "Gi1")
}

func TestHandleApply(t *testing.T) {
	app, db := setupTestApp(t, nil)
	dt := dcimtest.DeviceType(t, db, "c9300")
	d := dcimtest.Device(t, db, "sw1", dt)
	dcimtest.InterfaceTemplates(t, db, dt, "Gi1", "Gi2")

	status, body := postJSON(t, app, "/sync/apply", map[string]any{"devices": []any{d.ID}, "dry_run": true})
	assert.Equal(t, 200, status)
	var res Result
	require.NoError(t, json.Unmarshal(body, &res))
	assert.True(t, res.DryRun)
	assert.Zero(t, res.Summary.Created)

	status, body = postJSON(t, app, "/sync/apply", map[string]any{"devices": []any{fmt.Sprint(d.ID)}})
	assert.Equal(t, 200, status)
	res = Result{}
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, 2, res.Summary.Created)
}

func TestHandleApply_BadRequests(t *testing.T) {
	app, _ := setupTestApp(t, nil)

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty list", map[string]any{"devices": []any{}}, fiber.StatusBadRequest},
		{"Missing list", map[string]any{}, fiber.StatusBadRequest},
		{"Invalid id", map[string]any{"devices": []any{"abc"}}, fiber.StatusBadRequest},
		{"Unknown device", map[string]any{"devices": []any{42}}, fiber.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := postJSON(t, app, "/sync/apply", tt.body)
			assert.Equal(t, tt.status, status)
		})
	}
}

func TestHandleReports(t *testing.T) {
	app, _ := setupTestApp(t, nil)
	resp, err := app.Test(httptest.NewRequest("GET", "/sync/reports/scan", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "device-sync", mock.Anything).
		Return(mocks.Objects(minio.ObjectInfo{Key: "reports/scan/0f6a3b5e-1d2c-4c3b-9a8e-2f1d0c9b8a7e.json"}))

	app, _ = setupTestApp(t, NewArchive(client, "device-sync", "reports"))

	resp, err = app.Test(httptest.NewRequest("GET", "/sync/reports/scan", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []any{"0f6a3b5e-1d2c-4c3b-9a8e-2f1d0c9b8a7e"}, body["reports"])

	resp, err = app.Test(httptest.NewRequest("GET", "/sync/reports/reboot", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/sync/reports/scan/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
