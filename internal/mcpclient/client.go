// Package mcpclient drives a flightinfo MCP server from the client side
package mcpclient

import (
	"context"
	"log"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pkg/errors"
)

// DefaultTimeout bounds a single tool call
const DefaultTimeout = 15 * time.Second

// Dialer opens a transport to an MCP server
type Dialer func(ctx context.Context) (mcp.Transport, error)

// CommandDialer starts path as a subprocess and talks MCP over its stdio.
// The child's stderr is passed through so server logs stay visible.
func CommandDialer(path string, args ...string) Dialer {
	return func(ctx context.Context) (mcp.Transport, error) {
		if path == "" {
			return nil, errors.New("server path is required")
		}
		cmd := exec.Command(path, args...)
		cmd.Stderr = os.Stderr
		return mcp.NewCommandTransport(cmd), nil
	}
}

// ToolInfo is the client-side view of a tool advertised by the server
type ToolInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Client handles communication with a flightinfo MCP server
type Client struct {
	dial    Dialer
	timeout time.Duration
	logger  *log.Logger

	mu      sync.Mutex // Protects session
	session *mcp.ClientSession
}

// NewClient creates a new MCP client. The connection is opened lazily.
func NewClient(dial Dialer, timeout time.Duration, logger *log.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		dial:    dial,
		timeout: timeout,
		logger:  logger,
	}
}

// EnsureConnection opens and initializes a session if none exists
func (c *Client) EnsureConnection(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.sessionLocked(ctx)
	return err
}

func (c *Client) sessionLocked(ctx context.Context) (*mcp.ClientSession, error) {
	if c.session != nil {
		return c.session, nil
	}

	transport, err := c.dial(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open transport")
	}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "flightinfo-client",
		Version: "1.0.0",
	}, nil)

	c.logger.Printf("[MCP] Connecting to server")
	session, err := client.Connect(ctx, transport)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize MCP session")
	}
	c.session = session
	c.logger.Printf("[MCP] Session initialized")
	return session, nil
}

// ListTools returns the tools advertised by the server
func (c *Client) ListTools(ctx context.Context) ([]ToolInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	session, err := c.sessionLocked(ctx)
	if err != nil {
		return nil, err
	}

	res, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tools")
	}

	tools := make([]ToolInfo, 0, len(res.Tools))
	for _, tool := range res.Tools {
		tools = append(tools, ToolInfo{Name: tool.Name, Description: tool.Description})
	}
	return tools, nil
}

// CallTool calls an MCP tool and returns its text content
func (c *Client) CallTool(ctx context.Context, toolName string, args map[string]interface{}) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	session, err := c.sessionLocked(ctx)
	if err != nil {
		return "", err
	}

	c.logger.Printf("[MCP] Calling tool %s", toolName)
	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", errors.Errorf("tool call timed out after %s", c.timeout)
		}
		return "", errors.Wrapf(err, "failed to call tool %s", toolName)
	}

	text := textOf(res.Content)
	if res.IsError {
		return "", errors.Errorf("tool %s returned an error: %s", toolName, text)
	}
	return text, nil
}

// Close ends the session and releases the transport
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return nil
	}
	err := c.session.Close()
	c.session = nil
	return err
}

func textOf(content []mcp.Content) string {
	parts := make([]string, 0, len(content))
	for _, item := range content {
		if text, ok := item.(*mcp.TextContent); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}
