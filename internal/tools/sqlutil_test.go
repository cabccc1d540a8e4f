package tools

import (
	"fmt"
	"reflect"
	"testing"
)

func TestBuildInsertPostgresPlaceholders(t *testing.T) {
	query, values := buildInsert("customers", map[string]interface{}{
		"name":  "John Doe",
		"email": "john@example.com",
	}, func(i int) string { return fmt.Sprintf("$%d", i) })

	// Columns come out sorted, so the statement is deterministic
	wantQuery := "INSERT INTO customers (email, name) VALUES ($1, $2)"
	if query != wantQuery {
		t.Errorf("query = %q, want %q", query, wantQuery)
	}

	wantValues := []interface{}{"john@example.com", "John Doe"}
	if !reflect.DeepEqual(values, wantValues) {
		t.Errorf("values = %v, want %v", values, wantValues)
	}
}

func TestBuildInsertQuestionMarkPlaceholders(t *testing.T) {
	query, values := buildInsert("events", map[string]interface{}{
		"count": float64(3),
	}, func(int) string { return "?" })

	wantQuery := "INSERT INTO events (count) VALUES (?)"
	if query != wantQuery {
		t.Errorf("query = %q, want %q", query, wantQuery)
	}
	if len(values) != 1 || values[0] != float64(3) {
		t.Errorf("values = %v, want [3]", values)
	}
}
