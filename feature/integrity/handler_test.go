package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"roll-checker/core/storage/mocks"
	"roll-checker/feature/history"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, withDB bool) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	client := new(mocks.Client)
	svc := NewService(client, "rolls", []string{"reports"}, nil, zap.NewNop())
	if withDB {
		db := memoryDB(t)
		require.NoError(t, history.NewRepository(db).Migrate())
		svc.db = db
	}
	NewHandler(svc).RegisterRoutes(app)
	return app, client
}

func decode(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleStructureCheck(t *testing.T) {
	t.Run("Report Only", func(t *testing.T) {
		app, client := setupTestApp(t, false)
		client.On("BucketExists", mock.Anything, "rolls").Return(true, nil)
		client.On("ListObjects", mock.Anything, "rolls", mock.Anything).Return(mocks.Objects())

		status, body := decode(t, app, "/integrity/structure")
		assert.Equal(t, 200, status)
		assert.Equal(t, []any{"reports"}, body["missing"])
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Fix", func(t *testing.T) {
		app, client := setupTestApp(t, false)
		client.On("BucketExists", mock.Anything, "rolls").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "rolls", mock.Anything).Return(nil)
		client.On("PutObject", mock.Anything, "rolls", "reports/", mock.Anything, int64(0), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		status, body := decode(t, app, "/integrity/structure?fix=true")
		assert.Equal(t, 200, status)
		assert.Equal(t, true, body["bucket_exists"])
		assert.Empty(t, body["missing"])
	})
}

func TestHandleHistoryCheck(t *testing.T) {
	t.Run("Not Configured", func(t *testing.T) {
		app, _ := setupTestApp(t, false)
		status, body := decode(t, app, "/integrity/history")
		assert.Equal(t, fiber.StatusServiceUnavailable, status)
		assert.Equal(t, ErrDatabaseDisabled.Error(), body["error"])
	})

	t.Run("Matched", func(t *testing.T) {
		app, _ := setupTestApp(t, true)
		status, body := decode(t, app, "/integrity/history")
		assert.Equal(t, 200, status)
		assert.Equal(t, true, body["matched"])
	})
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, client := setupTestApp(t, true)
	client.On("BucketExists", mock.Anything, "rolls").Return(true, nil)
	client.On("ListObjects", mock.Anything, "rolls", mock.Anything).
		Return(mocks.Objects(minio.ObjectInfo{Key: "reports/"}))

	status, body := decode(t, app, "/integrity")
	assert.Equal(t, 200, status)
	assert.Contains(t, body, "structure")
	assert.Contains(t, body, "history")
	assert.NotContains(t, body, "errors")
}
