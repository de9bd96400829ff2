package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acme-air/flightinfo/internal/flights"
)

func TestFlightInfoToolDefinition(t *testing.T) {
	tool := &FlightInfoTool{}

	def := tool.Definition()
	assert.Equal(t, "FlightInfoBot", def.Name)
	assert.Equal(t, "Returns flight information based on city.", def.Description)
	assert.Equal(t, "object", def.Schema["type"])
	assert.Equal(t, []interface{}{"a"}, def.Schema["required"])

	props, ok := def.Schema["properties"].(map[string]interface{})
	require.True(t, ok)
	a, ok := props["a"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "string", a["type"])
	assert.Equal(t, "the city to look up flight information for", a["description"])
}

func TestFlightInfoSchemaRejectsNull(t *testing.T) {
	schema, err := flightInfoSchema()
	require.NoError(t, err)
	resolved, err := schema.Resolve(nil)
	require.NoError(t, err)

	city := "Boston"
	assert.NoError(t, resolved.Validate(&FlightInfoInput{A: &city}))
	assert.Error(t, resolved.Validate(&FlightInfoInput{}))

	// Each call builds a fresh schema
	other, err := flightInfoSchema()
	require.NoError(t, err)
	assert.NotSame(t, schema, other)
}

func TestFlightInfoToolExecute(t *testing.T) {
	tool := &FlightInfoTool{}
	ctx := context.Background()

	tests := []struct {
		name    string
		args    map[string]interface{}
		want    string
		wantErr bool
	}{
		{
			name: "known city",
			args: map[string]interface{}{"a": "Miami"},
			want: "SW4321 Departing at 1:45 PM",
		},
		{
			name: "unknown city",
			args: map[string]interface{}{"a": "Atlantis"},
			want: flights.NoFlightInfo,
		},
		{
			name: "empty city",
			args: map[string]interface{}{"a": ""},
			want: flights.NoFlightInfo,
		},
		{
			name: "extra arguments are ignored",
			args: map[string]interface{}{"a": "Seattle", "b": 1},
			want: "AS3456 Departing at 3:00 PM",
		},
		{
			name:    "missing a",
			args:    map[string]interface{}{},
			wantErr: true,
		},
		{
			name:    "non-string a",
			args:    map[string]interface{}{"a": float64(42)}, // JSON numbers come as float64
			wantErr: true,
		},
		{
			name:    "null a",
			args:    map[string]interface{}{"a": nil},
			wantErr: true,
		},
		{
			name:    "nil args",
			args:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tool.Execute(ctx, tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestFlightInfoToolHandle(t *testing.T) {
	tool := &FlightInfoTool{}
	ctx := context.Background()

	params := &mcp.CallToolParamsFor[FlightInfoInput]{
		Arguments: FlightInfoInput{A: ptr("Dallas")},
	}

	result, err := tool.Handle(ctx, nil, params)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "VX6543 Departing at 5:10 PM", text.Text)

	// Unknown cities are a normal result, not a tool error
	params.Arguments.A = ptr("new york")
	result, err = tool.Handle(ctx, nil, params)
	require.NoError(t, err)
	assert.False(t, result.IsError)
	text, ok = result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, flights.NoFlightInfo, text.Text)
}

func TestFlightInfoToolHandleMissingCity(t *testing.T) {
	tool := &FlightInfoTool{}

	result, err := tool.Handle(context.Background(), nil, &mcp.CallToolParamsFor[FlightInfoInput]{})
	assert.ErrorIs(t, err, errCityRequired)
	assert.Nil(t, result)

	result, err = tool.Handle(context.Background(), nil, nil)
	assert.ErrorIs(t, err, errCityRequired)
	assert.Nil(t, result)

	// An empty city is still a lookup
	result, err = tool.Handle(context.Background(), nil, &mcp.CallToolParamsFor[FlightInfoInput]{
		Arguments: FlightInfoInput{A: ptr("")},
	})
	require.NoError(t, err)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, flights.NoFlightInfo, text.Text)
}

func ptr(s string) *string { return &s }
