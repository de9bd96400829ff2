package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pkg/errors"

	"github.com/acme-air/flightinfo/internal/flights"
)

const (
	// FlightInfoToolName is the name clients call the lookup tool by
	FlightInfoToolName = "FlightInfoBot"

	flightInfoDescription = "Returns flight information based on city."
)

var errCityRequired = errors.New("a parameter is required")

// FlightInfoInput represents parameters for FlightInfoBot. A is a pointer so
// that a missing or null city can be told apart from an empty one.
type FlightInfoInput struct {
	A *string `json:"a" jsonschema:"the city to look up flight information for"`
}

// flightInfoSchema infers the input schema from FlightInfoInput. The pointer
// field would otherwise advertise null as a valid city.
func flightInfoSchema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[FlightInfoInput]()
	if err != nil {
		return nil, errors.Wrap(err, "failed to infer FlightInfoBot input schema")
	}
	a, ok := schema.Properties["a"]
	if !ok {
		return nil, errors.New("FlightInfoBot input schema has no property a")
	}
	a.Types = nil
	a.Type = "string"
	return schema, nil
}

// FlightInfoTool exposes flights.Lookup as an MCP tool
type FlightInfoTool struct{}

func (t *FlightInfoTool) Definition() ToolDefinition {
	def := ToolDefinition{
		Name:        FlightInfoToolName,
		Description: flightInfoDescription,
	}

	schema, err := flightInfoSchema()
	if err != nil {
		return def
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return def
	}
	_ = json.Unmarshal(data, &def.Schema)
	return def
}

func (t *FlightInfoTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	raw, ok := args["a"]
	if !ok || raw == nil {
		return "", errCityRequired
	}
	city, ok := raw.(string)
	if !ok {
		return "", errors.Errorf("a parameter must be a string, got %T", raw)
	}
	return flights.Lookup(city), nil
}

// Register adds the tool to server. The SDK rejects arguments that do not
// match the schema before Handle runs.
func (t *FlightInfoTool) Register(server *mcp.Server) {
	schema, err := flightInfoSchema()
	if err != nil {
		panic(err)
	}
	def := t.Definition()
	mcp.AddTool(server, &mcp.Tool{
		Name:        def.Name,
		Description: def.Description,
		InputSchema: schema,
	}, t.Handle)
}

// Handle answers a tools/call request. A missing city is a tool error;
// an unknown city is a normal result.
func (t *FlightInfoTool) Handle(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[FlightInfoInput]) (*mcp.CallToolResultFor[struct{}], error) {
	if params == nil || params.Arguments.A == nil {
		return nil, errCityRequired
	}
	return &mcp.CallToolResultFor[struct{}]{
		Content: []mcp.Content{&mcp.TextContent{Text: flights.Lookup(*params.Arguments.A)}},
	}, nil
}
