package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	flightmcp "github.com/acme-air/flightinfo/internal/mcp"
	"github.com/acme-air/flightinfo/internal/mcpclient"
)

// newAskCmd creates the ask command
func newAskCmd() *cobra.Command {
	var (
		serverPath string
		toolName   string
	)

	cmd := &cobra.Command{
		Use:   "ask <city...>",
		Short: "Query a FlightInfoBot server over stdio",
		Long: `Start a FlightInfoBot MCP server as a subprocess, call its tool with the
given city and print the answer. This exercises the same path an agent takes.`,
		Example: `  # Ask a server started from this binary
  flightinfo ask Seattle

  # Ask a different server build
  flightinfo ask --server ./bin/flightinfo Dallas`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if serverPath == "" {
				exe, err := os.Executable()
				if err != nil {
					return errors.Wrap(err, "failed to locate flightinfo binary")
				}
				serverPath = exe
			}
			return runAsk(cmd, mcpclient.CommandDialer(serverPath, serverArgs()...), toolName, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&serverPath, "server", "", "path to the server binary (default is this binary)")
	cmd.Flags().StringVar(&toolName, "tool", flightmcp.FlightInfoToolName, "tool to call")

	return cmd
}

// serverArgs forwards the settings that shape the child server
func serverArgs() []string {
	args := []string{"serve"}
	if cfgFile != "" {
		args = append(args, "--config", cfgFile)
	}
	if IsVerbose() {
		args = append(args, "--verbose")
	}
	return args
}

func runAsk(cmd *cobra.Command, dial mcpclient.Dialer, toolName, city string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logOutput := io.Discard
	if IsVerbose() {
		logOutput = debugOutput
	}
	client := mcpclient.NewClient(dial, cfg.Client.Timeout, log.New(logOutput, "", log.LstdFlags))
	defer func() {
		if cerr := client.Close(); cerr != nil {
			Debug("Closing MCP session: %v", cerr)
		}
	}()

	Debug("Calling %s with a=%q", toolName, city)
	answer, err := client.CallTool(cmdContext(cmd), toolName, map[string]interface{}{"a": city})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), answer)
	return err
}
