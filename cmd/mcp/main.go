package main

import (
	"errors"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/velat/homebridge-mcp/pkg/config"
	"github.com/velat/homebridge-mcp/pkg/homebridge"
	"github.com/velat/homebridge-mcp/pkg/homebridge/schema"
	hbmcp "github.com/velat/homebridge-mcp/pkg/mcp"
)

func main() {
	// Logging must go to stderr — stdout is the MCP transport
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	envFile := flag.String("env", "", "Path to a dotenv file with HOMEBRIDGE_URL, HOMEBRIDGE_USERNAME, HOMEBRIDGE_PASSWORD")
	httpAddr := flag.String("http", "", "Listen address for the streamable HTTP transport (default: stdio)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		var missing *config.MissingVarError
		if errors.As(err, &missing) {
			log.Fatal().Str("variable", missing.Var).Msg("Missing required configuration")
		}
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	client, err := homebridge.NewClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Homebridge client")
	}

	validator := schema.NewValidator()

	// Create and start MCP server
	mcpServer := hbmcp.NewServer(client, validator)

	if *httpAddr != "" {
		log.Info().Str("addr", *httpAddr).Str("homebridge", client.BaseURL()).Msg("Starting MCP server on HTTP")
		if err := mcpServer.ServeHTTP(*httpAddr); err != nil {
			log.Fatal().Err(err).Msg("MCP server failed")
		}
		return
	}

	log.Info().Str("homebridge", client.BaseURL()).Msg("Starting MCP server on stdio")

	if err := mcpServer.ServeStdio(); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}
