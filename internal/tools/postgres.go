package tools

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx as database/sql driver
)

// PostgresQueryTool runs read-only SELECT statements against the OLTP
// database.
type PostgresQueryTool struct {
	BaseTool
	dsn string
}

func NewPostgresQueryTool(dsn string) *PostgresQueryTool {
	return &PostgresQueryTool{
		BaseTool: NewBaseTool(
			"postgres_query",
			"Execute a SELECT query on the Postgres database",
			[]Parameter{
				{Name: "query", Type: TypeString, Description: "SQL SELECT query to execute", Required: true},
			},
		),
		dsn: dsn,
	}
}

func (t *PostgresQueryTool) Execute(ctx context.Context, args map[string]interface{}) (res Result) {
	defer Recovered(&res)

	query, err := StringArg(args, "query")
	if err != nil {
		return Errf("%v", err)
	}

	db, err := sql.Open("pgx", t.dsn)
	if err != nil {
		return Errf("open postgres: %v", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return Errf("postgres query failed: %v", err)
	}
	defer rows.Close()

	result, err := scanRows(rows)
	if err != nil {
		return Errf("%v", err)
	}
	return OK(result)
}

// PostgresInsertTool inserts a single row, given as a column map, into a
// Postgres table.
type PostgresInsertTool struct {
	BaseTool
	dsn string
}

func NewPostgresInsertTool(dsn string) *PostgresInsertTool {
	return &PostgresInsertTool{
		BaseTool: NewBaseTool(
			"postgres_insert",
			"Insert data into a Postgres table",
			[]Parameter{
				{Name: "table", Type: TypeString, Description: "Table name", Required: true},
				{Name: "data", Type: TypeObject, Description: "Data to insert as key-value pairs", Required: true},
			},
		),
		dsn: dsn,
	}
}

func (t *PostgresInsertTool) Execute(ctx context.Context, args map[string]interface{}) (res Result) {
	defer Recovered(&res)

	table, err := StringArg(args, "table")
	if err != nil {
		return Errf("%v", err)
	}
	data, err := ObjectArg(args, "data")
	if err != nil {
		return Errf("%v", err)
	}

	query, values := buildInsert(table, data, func(i int) string { return fmt.Sprintf("$%d", i) })

	db, err := sql.Open("pgx", t.dsn)
	if err != nil {
		return Errf("open postgres: %v", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, query, values...); err != nil {
		return Errf("postgres insert failed: %v", err)
	}
	return OK(map[string]interface{}{"message": "Data inserted successfully"})
}
