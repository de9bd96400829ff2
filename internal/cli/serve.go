package cli

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	flightmcp "github.com/acme-air/flightinfo/internal/mcp"
)

// newServeCmd creates the serve command
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the FlightInfoBot MCP server over stdio",
		Long: `Start an MCP (Model Context Protocol) server that exposes the FlightInfoBot
tool to AI agents. The server speaks JSON-RPC over stdin/stdout; diagnostics
go to stderr.`,
		Example: `  # Run the MCP server (for agent frameworks and desktop clients)
  flightinfo serve

  # Show server diagnostics on stderr
  flightinfo serve --verbose`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// stdout belongs to the protocol
	logOutput := io.Discard
	if IsVerbose() {
		logOutput = debugOutput
	}
	logger := log.New(logOutput, "[flightinfo] ", log.LstdFlags)

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := flightmcp.NewServer(cfg, logger)
	server.RegisterTools()

	Debug("Starting %s %s on stdio", cfg.Server.Name, cfg.Server.Version)
	return server.Run(ctx, mcp.NewStdioTransport())
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
