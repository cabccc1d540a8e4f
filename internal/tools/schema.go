package tools

// Schema is the agent-facing projection of a tool: name, description and a
// JSON-schema object for its arguments. It is derived on demand and never
// cached apart from the Tool it came from.
type Schema struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

// InputSchema is the {type:"object", properties, required} argument schema.
type InputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// Property describes one argument inside an InputSchema.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ProjectSchema derives the schema for a tool. Pure and deterministic: the
// same tool state always yields the same schema, with Required in parameter
// declaration order.
func ProjectSchema(t Tool) Schema {
	params := t.Parameters()
	props := make(map[string]Property, len(params))
	required := make([]string, 0, len(params))
	for _, p := range params {
		props[p.Name] = Property{
			Type:        p.Type,
			Description: p.Description,
		}
		if p.Required {
			required = append(required, p.Name)
		}
	}

	return Schema{
		Name:        t.Name(),
		Description: t.Description(),
		InputSchema: InputSchema{
			Type:       "object",
			Properties: props,
			Required:   required,
		},
	}
}
