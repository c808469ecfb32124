package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/velat/homebridge-mcp/pkg/homebridge"
	"github.com/velat/homebridge-mcp/pkg/homebridge/schema"
)

// Server wraps the MCP server with the Homebridge admin tool surface
type Server struct {
	mcpServer *server.MCPServer
	client    *homebridge.Client
	validator *schema.Validator
}

// NewServer creates a new MCP server backed by the given Homebridge client
func NewServer(client *homebridge.Client, validator *schema.Validator) *Server {
	s := &Server{
		client:    client,
		validator: validator,
	}

	// Create MCP server
	s.mcpServer = server.NewMCPServer(
		"homebridge-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register all tools
	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeHTTP starts the MCP server using the streamable HTTP transport on addr
func (s *Server) ServeHTTP(addr string) error {
	return server.NewStreamableHTTPServer(s.mcpServer).Start(addr)
}
