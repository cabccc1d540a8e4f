package mcpserver

import (
	"reflect"
	"testing"

	"github.com/neves/zen-bridge/internal/tools"
)

func TestToMCPTool(t *testing.T) {
	schema := tools.Schema{
		Name:        "warehouse_insert",
		Description: "Insert data into a warehouse table",
		InputSchema: tools.InputSchema{
			Type: "object",
			Properties: map[string]tools.Property{
				"table": {Type: "string", Description: "Table name"},
				"data":  {Type: "object", Description: "Row data"},
			},
			Required: []string{"table", "data"},
		},
	}

	got := toMCPTool(schema)

	if got.Name != "warehouse_insert" {
		t.Errorf("Name = %q, want %q", got.Name, "warehouse_insert")
	}
	if got.Description != schema.Description {
		t.Errorf("Description = %q", got.Description)
	}
	if got.InputSchema.Type != "object" {
		t.Errorf("InputSchema.Type = %q, want object", got.InputSchema.Type)
	}
	if !reflect.DeepEqual(got.InputSchema.Required, []string{"table", "data"}) {
		t.Errorf("Required = %v", got.InputSchema.Required)
	}

	prop, ok := got.InputSchema.Properties["table"].(map[string]interface{})
	if !ok {
		t.Fatalf("table property = %T, want map", got.InputSchema.Properties["table"])
	}
	if prop["type"] != "string" || prop["description"] != "Table name" {
		t.Errorf("table property = %v", prop)
	}
}
