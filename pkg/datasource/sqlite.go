package datasource

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/odvcencio/gridkit/pkg/grid"
	"github.com/odvcencio/gridkit/pkg/logging"
)

// SQLiteTable is a grid.Source backed by one SQLite table. The visible
// grid is materialized at load time; committed cell edits are written
// back with an UPDATE keyed on rowid.
type SQLiteTable struct {
	db     *sql.DB
	table  string
	logger *logging.Logger

	cols   []grid.Column
	order  []string
	values map[string]map[string]string
}

// OpenSQLite opens the database at path and loads the named table.
// logger may be nil.
func OpenSQLite(path, table string, logger *logging.Logger) (*SQLiteTable, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	t := &SQLiteTable{
		db:     db,
		table:  table,
		logger: logger,
		values: make(map[string]map[string]string),
	}
	if err := t.load(); err != nil {
		db.Close()
		return nil, err
	}
	logger.Info(logging.CategoryDataSource, "sqlite_loaded", "", map[string]any{
		"table": table, "rows": len(t.order), "columns": len(t.cols),
	})
	return t, nil
}

// Close releases the database handle.
func (t *SQLiteTable) Close() error {
	return t.db.Close()
}

func (t *SQLiteTable) load() error {
	query := fmt.Sprintf("SELECT rowid, * FROM %s", quoteIdent(t.table))
	rows, err := t.db.Query(query)
	if err != nil {
		return fmt.Errorf("query table %s: %w", t.table, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("read columns: %w", err)
	}
	// names[0] is the rowid; the rest are data columns.
	for _, name := range names[1:] {
		t.cols = append(t.cols, grid.Column{ID: name, Title: name})
	}

	scan := make([]any, len(names))
	var rowid int64
	raw := make([]sql.NullString, len(names)-1)
	scan[0] = &rowid
	for i := range raw {
		scan[i+1] = &raw[i]
	}

	for rows.Next() {
		if err := rows.Scan(scan...); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
		id := strconv.FormatInt(rowid, 10)
		values := make(map[string]string, len(raw))
		for i, v := range raw {
			if v.Valid {
				values[t.cols[i].ID] = v.String
			}
		}
		t.order = append(t.order, id)
		t.values[id] = values
	}
	return rows.Err()
}

// Columns implements grid.Source.
func (t *SQLiteTable) Columns() []grid.Column { return t.cols }

// RowCount implements grid.Source.
func (t *SQLiteTable) RowCount() int { return len(t.order) }

// RowID implements grid.Source.
func (t *SQLiteTable) RowID(index int) string {
	if index < 0 || index >= len(t.order) {
		return ""
	}
	return t.order[index]
}

// Value implements grid.Source.
func (t *SQLiteTable) Value(rowID, columnID string) (string, bool) {
	row, ok := t.values[rowID]
	if !ok {
		return "", false
	}
	v, ok := row[columnID]
	if !ok {
		for _, col := range t.cols {
			if col.ID == columnID {
				return "", true
			}
		}
		return "", false
	}
	return v, true
}

// SetValue writes a cell back to the database and the in-memory
// snapshot. It is the persistence callback for grids over this source.
func (t *SQLiteTable) SetValue(rowID, columnID, value string) error {
	row, ok := t.values[rowID]
	if !ok {
		return fmt.Errorf("no row %q", rowID)
	}
	known := false
	for _, col := range t.cols {
		if col.ID == columnID {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("no column %q", columnID)
	}

	query := fmt.Sprintf("UPDATE %s SET %s = ? WHERE rowid = ?",
		quoteIdent(t.table), quoteIdent(columnID))
	if _, err := t.db.Exec(query, value, rowID); err != nil {
		return fmt.Errorf("update %s.%s: %w", t.table, columnID, err)
	}
	row[columnID] = value
	return nil
}

// quoteIdent quotes a SQL identifier; embedded quotes are doubled.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

var _ grid.Source = (*SQLiteTable)(nil)
