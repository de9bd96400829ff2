package cli

import (
	"github.com/spf13/cobra"

	flightmcp "github.com/acme-air/flightinfo/internal/mcp"
)

// newToolsCmd creates the tools command
func newToolsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools the MCP server exposes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(output, OutputFormatTable, OutputFormatJSON, OutputFormatYAML)
			if err != nil {
				return err
			}

			registry := flightmcp.NewToolRegistry()
			tools := registry.ListTools()

			defs := make([]flightmcp.ToolDefinition, 0, len(tools))
			tb := NewTableBuilder("NAME", "DESCRIPTION")
			for _, tool := range tools {
				def := tool.Definition()
				defs = append(defs, def)
				tb.AddRow(def.Name, def.Description)
			}
			return tb.Write(NewDataWriter(cmd.OutOrStdout(), format), defs)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(OutputFormatTable), "output format (table, json, yaml)")

	return cmd
}
