package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/acme-air/flightinfo/internal/flights"
)

// newLookupCmd creates the lookup command
func newLookupCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "lookup <city...>",
		Short: "Look up the next departure for a city",
		Long: `Look up a city on the departure board without starting a server.
Arguments are joined with single spaces, so multi-word cities need no quotes.
Matching is exact and case-sensitive.`,
		Example: `  flightinfo lookup Miami
  flightinfo lookup San Francisco
  flightinfo lookup "New York" --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(output, OutputFormatText, OutputFormatTable, OutputFormatJSON, OutputFormatYAML)
			if err != nil {
				return err
			}
			return runLookup(cmd, strings.Join(args, " "), format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(OutputFormatText), "output format (text, table, json, yaml)")

	return cmd
}

func runLookup(cmd *cobra.Command, city string, format OutputFormat) error {
	status := flights.Lookup(city)
	known := flights.Known(city)
	if !known {
		Warn("No departures listed for %q", city)
	}

	out := cmd.OutOrStdout()
	if format == OutputFormatText {
		_, err := out.Write([]byte(status + "\n"))
		return err
	}

	return NewKeyValueBuilder("Flight Information").
		Add("city", city).
		Add("status", status).
		Add("known", known).
		Write(NewDataWriter(out, format))
}
