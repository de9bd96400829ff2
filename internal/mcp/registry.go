package mcp

import (
	"context"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolDefinition represents the definition of an MCP tool
type ToolDefinition struct {
	Name        string                 `json:"name" yaml:"name"`
	Description string                 `json:"description" yaml:"description"`
	Schema      map[string]interface{} `json:"inputSchema" yaml:"inputSchema"`
}

// Tool represents a tool that can be exposed via MCP
type Tool interface {
	Definition() ToolDefinition
	// Execute runs the tool directly, without a transport or SDK validation
	Execute(ctx context.Context, args map[string]interface{}) (string, error)
	// Register adds the tool to an SDK server
	Register(server *mcp.Server)
}

// ToolRegistry manages all available MCP tools
type ToolRegistry struct {
	tools map[string]Tool
}

// NewToolRegistry creates a new tool registry with the default tools
func NewToolRegistry() *ToolRegistry {
	registry := &ToolRegistry{
		tools: make(map[string]Tool),
	}

	registry.registerTool(FlightInfoToolName, &FlightInfoTool{})

	return registry
}

// registerTool adds a tool to the registry
func (r *ToolRegistry) registerTool(name string, tool Tool) {
	r.tools[name] = tool
}

// GetTool retrieves a tool by name
func (r *ToolRegistry) GetTool(name string) (Tool, bool) {
	tool, exists := r.tools[name]
	return tool, exists
}

// ListTools returns all registered tools sorted by name
func (r *ToolRegistry) ListTools() []Tool {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	tools := make([]Tool, 0, len(names))
	for _, name := range names {
		tools = append(tools, r.tools[name])
	}
	return tools
}
