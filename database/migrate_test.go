package database

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createLegacyTable sets up the pre-user-scoping shape of name_pairs.
func createLegacyTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	err := db.Exec(`CREATE TABLE name_pairs (
		female_name TEXT,
		male_name TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`).Error
	require.NoError(t, err)
}

func tableRowCount(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM "+table).Scan(&count).Error)
	return count
}

func TestMigrator_MissingTableIsNoop(t *testing.T) {
	db := newTestDB(t)
	m := NewMigrator(testLogger())

	require.NoError(t, m.Run(db))

	exists, err := m.tableExists(db)
	require.NoError(t, err)
	assert.False(t, exists, "migrator must not create the table itself")
}

func TestMigrator_UpToDateTableIsNoop(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, InitSchema(db))

	err := db.Exec(`INSERT INTO name_pairs (user_id, female_name, male_name, usage_count)
		VALUES ('u1', 'Alice', 'Bob', 4)`).Error
	require.NoError(t, err)

	m := NewMigrator(testLogger())
	require.NoError(t, m.Run(db))

	assert.EqualValues(t, 1, tableRowCount(t, db, "name_pairs"))
	var usage int
	require.NoError(t, db.Raw("SELECT usage_count FROM name_pairs").Scan(&usage).Error)
	assert.Equal(t, 4, usage, "no-op run must not touch existing rows")
}

func TestMigrator_RebuildsLegacyTable(t *testing.T) {
	db := newTestDB(t)
	createLegacyTable(t, db)

	for _, pair := range [][2]string{{"Alice", "Bob"}, {"Clara", "Dan"}, {"Eve", "Frank"}} {
		err := db.Exec("INSERT INTO name_pairs (female_name, male_name) VALUES (?, ?)",
			pair[0], pair[1]).Error
		require.NoError(t, err)
	}

	m := NewMigrator(testLogger())
	require.NoError(t, m.Run(db))

	columns, err := m.tableColumns(db)
	require.NoError(t, err)
	assert.Empty(t, missingColumns(m.Required, columns))

	assert.EqualValues(t, 3, tableRowCount(t, db, "name_pairs"))

	type migrated struct {
		UserID     string
		FemaleName string
		MaleName   string
		UsageCount int
	}
	var rows []migrated
	err = db.Raw("SELECT user_id, female_name, male_name, usage_count FROM name_pairs ORDER BY id").
		Scan(&rows).Error
	require.NoError(t, err)
	require.Len(t, rows, 3)

	seen := map[string]bool{}
	for _, row := range rows {
		assert.Equal(t, 1, row.UsageCount)
		assert.NotEmpty(t, row.UserID, "backfilled rows get a placeholder owner")
		assert.False(t, seen[row.UserID], "placeholder owners are unique per row")
		seen[row.UserID] = true
	}
	assert.Equal(t, "Alice", rows[0].FemaleName)
	assert.Equal(t, "Bob", rows[0].MaleName)
}

func TestMigrator_SecondRunIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	createLegacyTable(t, db)
	err := db.Exec("INSERT INTO name_pairs (female_name, male_name) VALUES ('Alice', 'Bob')").Error
	require.NoError(t, err)

	m := NewMigrator(testLogger())
	require.NoError(t, m.Run(db))

	var before struct {
		ID         int64
		UserID     string
		UsageCount int
	}
	require.NoError(t, db.Raw("SELECT id, user_id, usage_count FROM name_pairs").Scan(&before).Error)

	require.NoError(t, m.Run(db))

	assert.EqualValues(t, 1, tableRowCount(t, db, "name_pairs"))
	var after struct {
		ID         int64
		UserID     string
		UsageCount int
	}
	require.NoError(t, db.Raw("SELECT id, user_id, usage_count FROM name_pairs").Scan(&after).Error)
	assert.Equal(t, before, after)
}

func TestMigrator_EmptyLegacyTable(t *testing.T) {
	db := newTestDB(t)
	createLegacyTable(t, db)

	m := NewMigrator(testLogger())
	require.NoError(t, m.Run(db))

	columns, err := m.tableColumns(db)
	require.NoError(t, err)
	assert.Empty(t, missingColumns(m.Required, columns))
	assert.EqualValues(t, 0, tableRowCount(t, db, "name_pairs"))
}

func TestMigrator_SupersetCountsAsUpToDate(t *testing.T) {
	db := newTestDB(t)
	// All required columns present, different order, plus an extra one.
	err := db.Exec(`CREATE TABLE name_pairs (
		usage_count INTEGER DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		male_name TEXT NOT NULL,
		female_name TEXT NOT NULL,
		user_id TEXT NOT NULL,
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		book_title TEXT
	)`).Error
	require.NoError(t, err)
	err = db.Exec(`INSERT INTO name_pairs (user_id, female_name, male_name, book_title)
		VALUES ('u1', 'Alice', 'Bob', 'Dracula')`).Error
	require.NoError(t, err)

	m := NewMigrator(testLogger())
	require.NoError(t, m.Run(db))

	columns, err := m.tableColumns(db)
	require.NoError(t, err)
	assert.Contains(t, columns, "book_title", "presence-only check must not rebuild a superset table")
	assert.EqualValues(t, 1, tableRowCount(t, db, "name_pairs"))
}

func TestInitSchema_Idempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, InitSchema(db))

	err := db.Exec("INSERT INTO users (id, library_id) VALUES ('u1', 'LIB-AAAA-0001')").Error
	require.NoError(t, err)

	require.NoError(t, InitSchema(db))
	assert.EqualValues(t, 1, tableRowCount(t, db, "users"))
}
