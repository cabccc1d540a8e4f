package tools

import (
	"reflect"
	"testing"
)

func TestProjectSchema(t *testing.T) {
	tool := newStubTool("orders_query", []Parameter{
		{Name: "query", Type: TypeString, Description: "SQL to run", Required: true},
		{Name: "limit", Type: TypeNumber, Description: "Row cap", Required: false},
		{Name: "table", Type: TypeString, Description: "Table name", Required: true},
	}, OK(nil))

	schema := ProjectSchema(tool)

	if schema.Name != "orders_query" {
		t.Errorf("Name = %q, want %q", schema.Name, "orders_query")
	}
	if schema.InputSchema.Type != "object" {
		t.Errorf("InputSchema.Type = %q, want %q", schema.InputSchema.Type, "object")
	}

	// Required holds exactly the required parameters, in declaration order
	wantRequired := []string{"query", "table"}
	if !reflect.DeepEqual(schema.InputSchema.Required, wantRequired) {
		t.Errorf("Required = %v, want %v", schema.InputSchema.Required, wantRequired)
	}

	prop, ok := schema.InputSchema.Properties["limit"]
	if !ok {
		t.Fatal("Properties missing limit")
	}
	if prop.Type != TypeNumber || prop.Description != "Row cap" {
		t.Errorf("limit property = %+v", prop)
	}
}

func TestProjectSchemaDeterministic(t *testing.T) {
	tool := newStubTool("x", []Parameter{
		{Name: "a", Type: TypeString, Description: "a", Required: true},
		{Name: "b", Type: TypeObject, Description: "b", Required: true},
	}, OK(nil))

	first := ProjectSchema(tool)
	second := ProjectSchema(tool)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("ProjectSchema not deterministic:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestProjectSchemaNoParameters(t *testing.T) {
	schema := ProjectSchema(newStubTool("bare", nil, OK(nil)))

	if len(schema.InputSchema.Properties) != 0 {
		t.Errorf("Properties = %v, want empty", schema.InputSchema.Properties)
	}
	if len(schema.InputSchema.Required) != 0 {
		t.Errorf("Required = %v, want empty", schema.InputSchema.Required)
	}
}
