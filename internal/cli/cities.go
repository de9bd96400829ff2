package cli

import (
	"github.com/spf13/cobra"

	"github.com/acme-air/flightinfo/internal/flights"
)

// newCitiesCmd creates the cities command
func newCitiesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "cities",
		Aliases: []string{"board"},
		Short:   "List every city on the departure board",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(output, OutputFormatTable, OutputFormatJSON, OutputFormatYAML)
			if err != nil {
				return err
			}
			return runCities(cmd, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(OutputFormatTable), "output format (table, json, yaml)")

	return cmd
}

func runCities(cmd *cobra.Command, format OutputFormat) error {
	departures := flights.Departures()

	tb := NewTableBuilder("CITY", "STATUS")
	for _, d := range departures {
		tb.AddRow(d.City, d.Status)
	}
	if err := tb.Write(NewDataWriter(cmd.OutOrStdout(), format), departures); err != nil {
		return err
	}

	if format == OutputFormatTable {
		Info("%d cities on the departure board", len(departures))
	}
	return nil
}
