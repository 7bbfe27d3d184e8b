package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func memoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestGetTableColumns(t *testing.T) {
	db := memoryDB(t)

	err := db.Exec("CREATE TABLE audit_items (id INTEGER PRIMARY KEY, name TEXT NOT NULL, note TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "audit_items")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "integer", colMap["id"].Type)
	assert.Equal(t, "PRI", colMap["id"].Key)
	assert.Equal(t, "text", colMap["name"].Type)
	assert.Equal(t, "NO", colMap["name"].Null)
	assert.Equal(t, "YES", colMap["note"].Null)

	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	t.Run("Columns", func(t *testing.T) {
		mock.ExpectQuery("SHOW COLUMNS FROM `audit_runs`").
			WillReturnRows(sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
				AddRow("ID", "VARCHAR(36)", "NO", "PRI", nil, "").
				AddRow("Source", "VARCHAR(32)", "YES", "", nil, ""))

		columns, err := GetTableColumns(db, "audit_runs")
		require.NoError(t, err)
		assert.Equal(t, []ColumnInfo{
			{Field: "id", Type: "varchar(36)", Null: "NO", Key: "PRI"},
			{Field: "source", Type: "varchar(32)", Null: "YES"},
		}, columns)
	})

	t.Run("Failure", func(t *testing.T) {
		mock.ExpectQuery("SHOW COLUMNS FROM `audit_runs`").WillReturnError(assert.AnError)

		_, err := GetTableColumns(db, "audit_runs")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestMissingColumns(t *testing.T) {
	db := memoryDB(t)
	require.NoError(t, db.Exec("CREATE TABLE runs (id TEXT, status TEXT)").Error)

	missing, err := MissingColumns(db, "runs", []string{"id", "status", "error"})
	require.NoError(t, err)
	assert.Equal(t, []string{"error"}, missing)

	missing, err = MissingColumns(db, "none", []string{"id"})
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, missing)
}
