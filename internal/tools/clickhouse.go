package tools

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// openWarehouse dials the warehouse for the duration of one Execute call.
// Tools own their connections privately and release them on every exit path.
func openWarehouse(dsn string) (*sql.DB, error) {
	opts, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse warehouse DSN: %w", err)
	}
	return clickhouse.OpenDB(opts), nil
}

// WarehouseQueryTool runs read-only SELECT statements against the analytics
// warehouse and returns the rows as column maps.
type WarehouseQueryTool struct {
	BaseTool
	dsn string
}

func NewWarehouseQueryTool(dsn string) *WarehouseQueryTool {
	return &WarehouseQueryTool{
		BaseTool: NewBaseTool(
			"warehouse_query",
			"Execute a SELECT query on the analytics warehouse",
			[]Parameter{
				{Name: "query", Type: TypeString, Description: "SQL SELECT query to execute", Required: true},
			},
		),
		dsn: dsn,
	}
}

func (t *WarehouseQueryTool) Execute(ctx context.Context, args map[string]interface{}) (res Result) {
	defer Recovered(&res)

	query, err := StringArg(args, "query")
	if err != nil {
		return Errf("%v", err)
	}

	db, err := openWarehouse(t.dsn)
	if err != nil {
		return Errf("%v", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return Errf("warehouse query failed: %v", err)
	}
	defer rows.Close()

	result, err := scanRows(rows)
	if err != nil {
		return Errf("%v", err)
	}
	return OK(result)
}

// WarehouseInsertTool inserts a single row, given as a column map, into a
// warehouse table.
type WarehouseInsertTool struct {
	BaseTool
	dsn string
}

func NewWarehouseInsertTool(dsn string) *WarehouseInsertTool {
	return &WarehouseInsertTool{
		BaseTool: NewBaseTool(
			"warehouse_insert",
			"Insert data into an analytics warehouse table",
			[]Parameter{
				{Name: "table", Type: TypeString, Description: "Table name", Required: true},
				{Name: "data", Type: TypeObject, Description: "Data to insert as key-value pairs", Required: true},
			},
		),
		dsn: dsn,
	}
}

func (t *WarehouseInsertTool) Execute(ctx context.Context, args map[string]interface{}) (res Result) {
	defer Recovered(&res)

	table, err := StringArg(args, "table")
	if err != nil {
		return Errf("%v", err)
	}
	data, err := ObjectArg(args, "data")
	if err != nil {
		return Errf("%v", err)
	}

	query, values := buildInsert(table, data, func(int) string { return "?" })

	db, err := openWarehouse(t.dsn)
	if err != nil {
		return Errf("%v", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, query, values...); err != nil {
		return Errf("warehouse insert failed: %v", err)
	}
	return OK(map[string]interface{}{"message": "Data inserted successfully"})
}
