package storage

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

type schemaLoader = gojsonschema.JSONLoader

const actionsSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "actions": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["id", "type", "urgency"],
        "properties": {
          "id": { "type": "string", "minLength": 1 },
          "project_id": { "type": "string" },
          "project_name": { "type": "string" },
          "title": { "type": "string" },
          "description": { "type": "string" },
          "type": {
            "enum": [
              "chat_ready", "engineering_ready", "payment_required", "approval_needed",
              "review_pending", "deadline_approaching", "procurement_ready", "selection_required"
            ]
          },
          "urgency": { "enum": ["high", "medium", "low"] },
          "due_date": { "type": "string" },
          "progress": { "type": "integer", "minimum": 0, "maximum": 100 },
          "client_facing": { "type": "boolean" }
        }
      }
    }
  }
}`

const comparisonsSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "comparisons": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": { "type": "string", "minLength": 1 },
          "title": { "type": "string" },
          "project_id": { "type": "string" },
          "recommendation": {
            "type": "object",
            "properties": {
              "primary": { "type": "string" },
              "alternative": { "type": "string" },
              "reasoning": { "type": "string" }
            }
          },
          "equipment": {
            "type": ["array", "null"],
            "items": {
              "type": "object",
              "required": ["id", "price", "ai_recommendation"],
              "properties": {
                "id": { "type": "string", "minLength": 1 },
                "name": { "type": "string" },
                "supplier": { "type": "string" },
                "category": { "type": "string" },
                "price": { "type": "number", "minimum": 0 },
                "lead_time": { "type": "string" },
                "specifications": { "type": "object", "additionalProperties": { "type": "string" } },
                "certifications": { "type": "array", "items": { "type": "string" } },
                "ai_recommendation": {
                  "enum": ["highly_recommended", "recommended", "consider", "not_recommended"]
                }
              }
            }
          }
        }
      }
    }
  }
}`

var (
	actionsSchemaLoader     = gojsonschema.NewStringLoader(actionsSchemaJSON)
	comparisonsSchemaLoader = gojsonschema.NewStringLoader(comparisonsSchemaJSON)
)

// SchemaError lists the schema violations found in a workspace document.
type SchemaError struct {
	File   string
	Issues []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s failed schema validation: %s", e.File, strings.Join(e.Issues, "; "))
}

// validateDocument checks a YAML document against a JSON schema. Empty
// documents are valid.
func validateDocument(name string, schema schemaLoader, data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if doc == nil {
		return nil
	}

	result, err := gojsonschema.Validate(schema, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("failed to validate %s: %w", name, err)
	}
	if result.Valid() {
		return nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return &SchemaError{File: name, Issues: issues}
}
