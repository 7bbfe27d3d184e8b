package checks

import (
	"errors"

	"roll-checker/core/database"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing a table with its expected columns.
type SchemaReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	Error          string   `json:"error,omitempty"`
}

// CheckSchema reports which of the expected columns are absent from table.
// Inspection failures are carried in the report rather than returned.
func CheckSchema(db *gorm.DB, table string, columns []string) (*SchemaReport, error) {
	if db == nil {
		return nil, errors.New("database connection is nil")
	}

	report := &SchemaReport{Table: table, MissingColumns: []string{}}

	missing, err := database.MissingColumns(db, table, columns)
	if err != nil {
		report.Error = err.Error()
		return report, nil
	}
	if len(missing) > 0 {
		report.MissingColumns = missing
		return report, nil
	}

	report.Matched = true
	return report, nil
}
