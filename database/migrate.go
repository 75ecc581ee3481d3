package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Migrator rebuilds the name_pairs table when the database was created by
// an older release with a narrower schema. The check is presence-only: a
// table that carries every required column, in any order, is up to date.
type Migrator struct {
	// Table is the table whose shape is checked and rebuilt.
	Table string
	// Required is the full set of columns the current release expects.
	Required []string
	// LegacyOrder names the columns an old-shape row is assumed to carry,
	// positionally. Backed-up values beyond this list are discarded.
	LegacyOrder []string

	logger *slog.Logger
}

func NewMigrator(logger *slog.Logger) *Migrator {
	return &Migrator{
		Table:       "name_pairs",
		Required:    []string{"id", "user_id", "female_name", "male_name", "created_at", "usage_count"},
		LegacyOrder: []string{"female_name", "male_name", "created_at"},
		logger:      logger,
	}
}

// Run migrates the table to the current shape, preserving existing rows.
// Rows that predate user scoping are re-owned by a fresh uuid per row (the
// convention of the original startup migration; the alternative
// migrated_user_<n> labeling was only ever used by a one-off repair
// script) and restart at usage_count 1.
//
// Backup, rebuild and backfill run in one transaction, so a failure at any
// point leaves the pre-migration table intact.
func (m *Migrator) Run(db *gorm.DB) error {
	exists, err := m.tableExists(db)
	if err != nil {
		return fmt.Errorf("checking for table %s: %w", m.Table, err)
	}
	if !exists {
		// First creation belongs to InitSchema, not here.
		m.logger.Info("table does not exist yet, nothing to migrate", "table", m.Table)
		return nil
	}

	columns, err := m.tableColumns(db)
	if err != nil {
		return fmt.Errorf("reading columns of %s: %w", m.Table, err)
	}

	missing := missingColumns(m.Required, columns)
	if len(missing) == 0 {
		m.logger.Info("database schema is up to date", "table", m.Table)
		return nil
	}
	m.logger.Info("migrating table", "table", m.Table, "columns", columns, "missing", missing)

	err = db.Transaction(func(tx *gorm.DB) error {
		backup, err := m.backupRows(tx)
		if err != nil {
			return fmt.Errorf("backing up %s: %w", m.Table, err)
		}
		m.logger.Info("backed up existing records", "table", m.Table, "count", len(backup))

		if err := m.rebuild(tx); err != nil {
			return fmt.Errorf("rebuilding %s: %w", m.Table, err)
		}
		if err := m.backfill(tx, backup); err != nil {
			return fmt.Errorf("backfilling %s: %w", m.Table, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Verify the rebuilt shape before declaring success.
	columns, err = m.tableColumns(db)
	if err != nil {
		return fmt.Errorf("verifying %s: %w", m.Table, err)
	}
	if still := missingColumns(m.Required, columns); len(still) > 0 {
		return fmt.Errorf("table %s still missing columns after migration: %v", m.Table, still)
	}

	m.logger.Info("database migration completed successfully", "table", m.Table)
	return nil
}

func (m *Migrator) tableExists(db *gorm.DB) (bool, error) {
	var name string
	err := db.Raw(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", m.Table,
	).Scan(&name).Error
	if err != nil {
		return false, err
	}
	return name == m.Table, nil
}

func (m *Migrator) tableColumns(db *gorm.DB) ([]string, error) {
	rows, err := db.Raw("SELECT name FROM pragma_table_info(?)", m.Table).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		columns = append(columns, name)
	}
	return columns, rows.Err()
}

// backupRows reads every existing row into memory in the old column order.
// The dataset is expected to stay small; a store large enough to make this
// a problem should page through the table instead.
func (m *Migrator) backupRows(tx *gorm.DB) ([][]any, error) {
	rows, err := tx.Raw("SELECT * FROM " + m.Table).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var backup [][]any
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		backup = append(backup, values)
	}
	return backup, rows.Err()
}

func (m *Migrator) rebuild(tx *gorm.DB) error {
	if err := tx.Exec("DROP TABLE " + m.Table).Error; err != nil {
		return err
	}
	ddl := fmt.Sprintf(`CREATE TABLE %s (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		female_name TEXT NOT NULL,
		male_name TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		usage_count INTEGER DEFAULT 1,
		FOREIGN KEY (user_id) REFERENCES users (id)
	)`, m.Table)
	return tx.Exec(ddl).Error
}

func (m *Migrator) backfill(tx *gorm.DB, backup [][]any) error {
	insert := fmt.Sprintf(
		"INSERT INTO %s (user_id, female_name, male_name, created_at, usage_count) VALUES (?, ?, ?, ?, 1)",
		m.Table,
	)
	for _, row := range backup {
		fields := m.remap(row)

		female := fields["female_name"]
		if female == nil {
			female = ""
		}
		male := fields["male_name"]
		if male == nil {
			male = ""
		}
		created := fields["created_at"]
		if created == nil {
			created = time.Now()
		}

		// Legacy rows have no real owner; each gets a fresh placeholder.
		owner := uuid.New().String()

		if err := tx.Exec(insert, owner, female, male, created).Error; err != nil {
			return err
		}
	}
	return nil
}

// remap maps a backed-up row's positional values onto the columns named by
// LegacyOrder.
func (m *Migrator) remap(row []any) map[string]any {
	fields := make(map[string]any, len(m.LegacyOrder))
	for i, col := range m.LegacyOrder {
		if i < len(row) {
			fields[col] = row[i]
		}
	}
	return fields
}

func missingColumns(required, present []string) []string {
	have := make(map[string]bool, len(present))
	for _, col := range present {
		have[col] = true
	}
	var missing []string
	for _, col := range required {
		if !have[col] {
			missing = append(missing, col)
		}
	}
	return missing
}
