package history

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"roll-checker/core/database"
	"roll-checker/core/reconcile"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// setupRepository returns a migrated repository on an in-memory database.
func setupRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	repo := NewRepository(db)
	require.NoError(t, repo.Migrate())
	return repo
}

// setupMockDB creates a mock GORM DB for failure paths.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func outcome(id, source string, startedAt time.Time) *reconcile.Outcome {
	return &reconcile.Outcome{
		ID:        id,
		Source:    source,
		Location:  "/srv/rolls",
		Scanned:   4,
		StartedAt: startedAt,
		Duration:  1500 * time.Millisecond,
		Result: &reconcile.Result{
			TotalExpected:      5,
			FoundCount:         3,
			MissingCount:       1,
			DuplicateCount:     1,
			IgnoredCount:       1,
			MissingIdentifiers: []int{5},
			Oversized:          []reconcile.Oversize{{Identifier: 2, SizeBytes: 10, FileName: "x.pdf"}},
		},
	}
}

func TestRepository_RecordAndGet(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, repo.RecordSuccess(ctx, outcome("run-1", "local", started)))

	run, err := repo.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "local", run.Source)
	assert.Equal(t, "/srv/rolls", run.Location)
	assert.Equal(t, int64(1500), run.DurationMs)
	assert.Equal(t, 5, run.TotalExpected)
	assert.Equal(t, 1, run.OversizeCount)
	assert.Equal(t, StatusOK, run.Status)
	assert.Equal(t, []int{5}, run.MissingIdentifiers())
	assert.True(t, started.Equal(run.StartedAt))
}

func TestRepository_RecordFailure(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	err := repo.RecordFailure(ctx, "remote", "https://example.com/folders/x", time.Now(), errors.New("remote snapshot unavailable: timeout"))
	require.NoError(t, err)

	runs, err := repo.List(ctx, "remote", 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, StatusFailed, runs[0].Status)
	assert.Equal(t, "remote snapshot unavailable: timeout", runs[0].Error)
	assert.NotEmpty(t, runs[0].ID)
	assert.Empty(t, runs[0].MissingIdentifiers())
}

func TestRepository_List(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.RecordSuccess(ctx, outcome("a", "local", base)))
	require.NoError(t, repo.RecordSuccess(ctx, outcome("b", "bucket", base.Add(time.Hour))))
	require.NoError(t, repo.RecordSuccess(ctx, outcome("c", "local", base.Add(2*time.Hour))))

	runs, err := repo.List(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "c", runs[0].ID)
	assert.Equal(t, "a", runs[2].ID)

	runs, err = repo.List(ctx, "local", 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "c", runs[0].ID)
}

func TestRepository_GetNotFound(t *testing.T) {
	repo := setupRepository(t)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_DatabaseErrors(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	t.Run("List", func(t *testing.T) {
		mock.ExpectQuery("SELECT \\* FROM `audit_runs`").WillReturnError(assert.AnError)

		_, err := repo.List(context.Background(), "", 10)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Record", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `audit_runs`").WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.RecordSuccess(context.Background(), outcome("x", "local", time.Now()))
		assert.ErrorIs(t, err, assert.AnError)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_LocationIsUnbounded(t *testing.T) {
	s, err := schema.Parse(&Run{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	field := s.LookUpField("location")
	require.NotNil(t, field)
	assert.Equal(t, schema.DataType("text"), field.DataType)
	assert.Zero(t, field.Size)

	repo := setupRepository(t)
	ctx := context.Background()
	long := "https://drive.example.com/drive/folders/" + strings.Repeat("x", 2048)

	o := outcome("run-long", "remote", time.Now())
	o.Location = long
	require.NoError(t, repo.RecordSuccess(ctx, o))

	run, err := repo.Get(ctx, "run-long")
	require.NoError(t, err)
	assert.Equal(t, long, run.Location)
}
