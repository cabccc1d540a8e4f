package tools

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
)

// scanRows reads every row into a column-name -> value map, the row shape
// query tools hand back to the agent. []byte columns become strings so the
// payload renders and serializes cleanly.
func scanRows(rows *sql.Rows) ([]map[string]interface{}, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var out []map[string]interface{}
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		row := make(map[string]interface{}, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

// buildInsert renders a parameterized INSERT for the given column map.
// Columns are emitted in sorted order so the statement is deterministic.
// placeholder takes the 1-based parameter index and returns the driver's
// placeholder token ("?" or "$1").
func buildInsert(table string, data map[string]interface{}, placeholder func(i int) string) (string, []interface{}) {
	cols := make([]string, 0, len(data))
	for col := range data {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	marks := make([]string, len(cols))
	values := make([]interface{}, len(cols))
	for i, col := range cols {
		marks[i] = placeholder(i + 1)
		values[i] = data[col]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(marks, ", "))
	return query, values
}
