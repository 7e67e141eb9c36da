package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type departmentSeed struct {
	Name        string `db:"name"`
	Code        string `db:"code"`
	Description string `db:"description"`
}

var defaultDepartments = []departmentSeed{
	{"Computer Science & Engineering", "CSE", "Department of Computer Science and Engineering"},
	{"Business Administration", "BBA", "Department of Business Administration"},
	{"Electrical & Electronic Engineering", "EEE", "Department of Electrical and Electronic Engineering"},
	{"English & Humanities", "ENH", "Department of English and Humanities"},
	{"Media Studies & Journalism", "MSJ", "Department of Media Studies and Journalism"},
	{"Economics", "ECO", "Department of Economics"},
	{"General", "GEN", "General/Cross-departmental"},
}

// SeedDepartments inserts the default departments; existing codes are left untouched.
func (db *DB) SeedDepartments(ctx context.Context) error {
	query := `
		INSERT INTO departments (name, code, description)
		VALUES (:name, :code, :description)
		ON CONFLICT (code) DO NOTHING
	`

	result, err := db.NamedExecContext(ctx, query, defaultDepartments)
	if err != nil {
		return fmt.Errorf("ошибка при заполнении кафедр: %w", err)
	}

	inserted, _ := result.RowsAffected()
	db.log.Info("справочник кафедр заполнен", zap.Int64("inserted", inserted))

	return nil
}
