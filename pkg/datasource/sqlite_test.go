package datasource

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE people (name TEXT, age TEXT, city TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO people (name, age, city) VALUES
		('Ada', '36', 'London'),
		('Bo', '41', 'Oslo'),
		('Cy', NULL, 'Kyiv')`)
	require.NoError(t, err)
	return path
}

func TestOpenSQLiteLoadsTable(t *testing.T) {
	path := newTestDB(t)

	tbl, err := OpenSQLite(path, "people", nil)
	require.NoError(t, err)
	defer tbl.Close()

	require.Equal(t, 3, tbl.RowCount())
	cols := tbl.Columns()
	require.Len(t, cols, 3)
	assert.Equal(t, "name", cols[0].ID)

	v, ok := tbl.Value(tbl.RowID(1), "city")
	require.True(t, ok)
	assert.Equal(t, "Oslo", v)

	// NULL reads as empty but present.
	v, ok = tbl.Value(tbl.RowID(2), "age")
	require.True(t, ok)
	assert.Equal(t, "", v)
}

func TestSQLiteSetValueWritesBack(t *testing.T) {
	path := newTestDB(t)

	tbl, err := OpenSQLite(path, "people", nil)
	require.NoError(t, err)

	id := tbl.RowID(0)
	require.NoError(t, tbl.SetValue(id, "age", "37"))

	v, _ := tbl.Value(id, "age")
	assert.Equal(t, "37", v)
	require.NoError(t, tbl.Close())

	// The edit survives a reload.
	reloaded, err := OpenSQLite(path, "people", nil)
	require.NoError(t, err)
	defer reloaded.Close()
	v, _ = reloaded.Value(reloaded.RowID(0), "age")
	assert.Equal(t, "37", v)
}

func TestSQLiteSetValueRejectsUnknowns(t *testing.T) {
	path := newTestDB(t)

	tbl, err := OpenSQLite(path, "people", nil)
	require.NoError(t, err)
	defer tbl.Close()

	assert.Error(t, tbl.SetValue("9999", "age", "1"))
	assert.Error(t, tbl.SetValue(tbl.RowID(0), "nope", "1"))
}

func TestOpenSQLiteMissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = OpenSQLite(path, "absent", nil)
	assert.Error(t, err)
}
