package integrity

import (
	"context"
	"errors"
	"testing"

	"roll-checker/core/storage/mocks"
	"roll-checker/feature/history"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func memoryDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestService_Disabled(t *testing.T) {
	svc := NewService(nil, "rolls", []string{"reports"}, nil, zap.NewNop())

	_, err := svc.CheckStructure(context.Background())
	assert.ErrorIs(t, err, ErrStorageDisabled)
	assert.ErrorIs(t, svc.FixStructure(context.Background(), nil), ErrStorageDisabled)

	_, err = svc.CheckHistory()
	assert.ErrorIs(t, err, ErrDatabaseDisabled)

	report := svc.CheckAll(context.Background())
	assert.Nil(t, report.Structure)
	assert.Nil(t, report.History)
	assert.Empty(t, report.Errors)
}

func TestService_CheckHistory(t *testing.T) {
	db := memoryDB(t)
	svc := NewService(nil, "", nil, db, zap.NewNop())

	t.Run("Table Missing", func(t *testing.T) {
		report, err := svc.CheckHistory()
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Equal(t, history.Columns, report.MissingColumns)
	})

	t.Run("After Migration", func(t *testing.T) {
		require.NoError(t, history.NewRepository(db).Migrate())

		report, err := svc.CheckHistory()
		require.NoError(t, err)
		assert.True(t, report.Matched)
		assert.Equal(t, history.TableName, report.Table)
	})
}

func TestService_CheckAll(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "rolls").Return(false, errors.New("unreachable"))

	db := memoryDB(t)
	require.NoError(t, history.NewRepository(db).Migrate())

	svc := NewService(client, "rolls", []string{"reports"}, db, zap.NewNop())
	report := svc.CheckAll(context.Background())

	assert.Nil(t, report.Structure)
	assert.Contains(t, report.Errors["structure"], "unreachable")
	require.NotNil(t, report.History)
	assert.True(t, report.History.Matched)
}

func TestService_FixStructure(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "rolls").Return(true, nil)
	client.On("ListObjects", mock.Anything, "rolls", mock.Anything).Return(mocks.Objects())
	client.On("PutObject", mock.Anything, "rolls", "reports/", mock.Anything, int64(0), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	svc := NewService(client, "rolls", []string{"reports"}, nil, zap.NewNop())

	report, err := svc.CheckStructure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"reports"}, report.Missing)

	require.NoError(t, svc.FixStructure(context.Background(), report))
	assert.True(t, report.OK())
	client.AssertExpectations(t)
}
