package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"device-sync/core/storage"
	"device-sync/core/storage/mocks"
	"device-sync/feature/dcim/dcimtest"
	"device-sync/feature/dcim/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T, withStorage bool) (*fiber.App, *mocks.Client, *gorm.DB) {
	app := fiber.New()
	db := dcimtest.NewDB(t)
	mockClient := new(mocks.Client)

	var client storage.Client
	if withStorage {
		client = mockClient
	}
	feature := NewFeature(client, storage.Config{Bucket: "test-bucket"}, zap.NewNop(), db)
	require.NoError(t, feature.Load(app))
	return app, mockClient, db
}

func TestLoader(t *testing.T) {
	feature := NewFeature(nil, storage.Config{}, zap.NewNop(), nil)

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())
}

func TestHandleSchemaCheck(t *testing.T) {
	app, _, db := setupTestApp(t, false)
	require.NoError(t, db.Migrator().DropTable(&models.FrontPort{}))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["matched"])

	resp, err = app.Test(httptest.NewRequest("GET", "/integrity/schema?fix=true", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["matched"])
	assert.True(t, db.Migrator().HasTable(&models.FrontPort{}))
}

func TestHandleStorageCheck(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		app, _, _ := setupTestApp(t, false)

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("Fix", func(t *testing.T) {
		app, mockClient, _ := setupTestApp(t, true)
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "test-bucket", mock.Anything).Return(nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage?fix=true", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "fixed", body["status"])
		mockClient.AssertExpectations(t)
	})

	t.Run("Error", func(t *testing.T) {
		app, mockClient, _ := setupTestApp(t, true)
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient, _ := setupTestApp(t, true)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["schema"]["matched"])
	assert.Equal(t, "ok", body["storage"]["status"])
}
