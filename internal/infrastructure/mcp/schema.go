package mcp

import (
	"context"
	"encoding/json"

	mcplib "github.com/felixgeelhaar/mcp-go"
)

// SchemaVersion is the current MCP tool schema version (semver).
const SchemaVersion = "1.0.0"

const schemaURI = "clearwater://schema"

// DeprecatedField records a field or tool that has been deprecated.
type DeprecatedField struct {
	Tool      string `json:"tool"`
	Field     string `json:"field"`
	Since     string `json:"since"`
	RemovedIn string `json:"removed_in"`
	Migration string `json:"migration"`
}

func deprecatedFields() []DeprecatedField {
	return []DeprecatedField{}
}

type schemaResponse struct {
	SchemaVersion string            `json:"schema_version"`
	ServerVersion string            `json:"server_version"`
	Tools         []string          `json:"tools"`
	Deprecated    []DeprecatedField `json:"deprecated"`
}

// toolNames lists the registered tools in registration order.
var toolNames = []string{
	"clearwater_prioritize_actions",
	"clearwater_action_counts",
	"clearwater_list_comparisons",
	"clearwater_score_equipment",
	"clearwater_get_criteria",
	"clearwater_step_criterion",
	"clearwater_criteria_history",
}

func schemaContent() (*mcplib.ResourceContent, error) {
	resp := schemaResponse{
		SchemaVersion: SchemaVersion,
		ServerVersion: Version,
		Tools:         toolNames,
		Deprecated:    deprecatedFields(),
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	return &mcplib.ResourceContent{
		URI:      schemaURI,
		MimeType: "application/json",
		Text:     string(data),
	}, nil
}

func (s *Server) registerSchemaResource() {
	s.mcpServer.Resource(schemaURI).
		Name(schemaURI).
		Description("MCP tool schema version and deprecation info").
		MimeType("application/json").
		Handler(func(_ context.Context, _ string, _ map[string]string) (*mcplib.ResourceContent, error) {
			return schemaContent()
		})
}
