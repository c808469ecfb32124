package mcp

import "github.com/mark3labs/mcp-go/mcp"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	// Accessories
	s.mcpServer.AddTool(
		mcp.NewTool("list_accessories",
			mcp.WithDescription("List all accessories with their current values, enriched with the room each accessory belongs to"),
			mcp.WithString("filter",
				mcp.Description("Optional case-insensitive substring to match against accessory names"),
			),
		),
		s.handleListAccessories,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_accessory",
			mcp.WithDescription("Get full details of a single accessory by its uniqueId"),
			mcp.WithString("unique_id",
				mcp.Required(),
				mcp.Description("Accessory uniqueId as returned by list_accessories"),
			),
		),
		s.handleGetAccessory,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_accessories_layout",
			mcp.WithDescription("Get the room layout of the Homebridge UI (rooms and the accessories placed in them)"),
		),
		s.handleGetLayout,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("set_accessory_characteristic",
			mcp.WithDescription("Set a characteristic value on an accessory (e.g. On, Brightness, TargetTemperature)"),
			mcp.WithString("unique_id",
				mcp.Required(),
				mcp.Description("Accessory uniqueId as returned by list_accessories"),
			),
			mcp.WithString("characteristic_type",
				mcp.Required(),
				mcp.Description("Characteristic type name (e.g. On, Brightness)"),
			),
			mcp.WithString("value",
				mcp.Required(),
				mcp.Description("Value to set. Booleans and numbers are coerced from their string form (e.g. \"true\", \"140\")"),
			),
		),
		s.handleSetCharacteristic,
	)

	// Server / status
	s.mcpServer.AddTool(
		mcp.NewTool("get_homebridge_status",
			mcp.WithDescription("Get the current status of the Homebridge service (up, pending, down)"),
		),
		s.handleHomebridgeStatus,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_server_info",
			mcp.WithDescription("Get metadata about the Homebridge server installation"),
		),
		s.handleServerInformation,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("restart_homebridge",
			mcp.WithDescription("Restart the Homebridge service"),
		),
		s.handleRestartHomebridge,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_pairing_info",
			mcp.WithDescription("Get the HomeKit pairing code and setup details"),
		),
		s.handlePairingInformation,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list_cached_accessories",
			mcp.WithDescription("List accessories currently held in the bridge accessory cache"),
		),
		s.handleCachedAccessories,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("remove_cached_accessory",
			mcp.WithDescription("Remove a single accessory from the bridge cache by UUID"),
			mcp.WithString("uuid",
				mcp.Required(),
				mcp.Description("Cached accessory UUID as returned by list_cached_accessories"),
			),
		),
		s.handleRemoveCachedAccessory,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("reset_cached_accessories",
			mcp.WithDescription("Clear the entire bridge accessory cache. Accessories will be re-created on the next Homebridge start"),
		),
		s.handleResetCachedAccessories,
	)

	// Config editor
	s.mcpServer.AddTool(
		mcp.NewTool("get_config",
			mcp.WithDescription("Read the current Homebridge config.json document"),
		),
		s.handleGetConfig,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("set_config",
			mcp.WithDescription("Replace the entire Homebridge config.json document. The document is validated before being written"),
			mcp.WithObject("config",
				mcp.Required(),
				mcp.Description("Complete replacement config document, including the bridge block"),
			),
		),
		s.handleSetConfig,
	)

	// Plugins
	s.mcpServer.AddTool(
		mcp.NewTool("list_plugins",
			mcp.WithDescription("List installed Homebridge plugins with their versions and update availability"),
		),
		s.handleListPlugins,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("search_plugins",
			mcp.WithDescription("Search the plugin registry for plugins matching a query"),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Search query"),
			),
		),
		s.handleSearchPlugins,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("lookup_plugin",
			mcp.WithDescription("Look up registry details for a plugin by its package name"),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Plugin package name (e.g. homebridge-hue or @scope/plugin-name)"),
			),
		),
		s.handleLookupPlugin,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_plugin_versions",
			mcp.WithDescription("Get the published versions of a plugin"),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Plugin package name"),
			),
		),
		s.handlePluginVersions,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_plugin_config_schema",
			mcp.WithDescription("Get the config.schema.json of an installed plugin"),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Plugin package name"),
			),
		),
		s.handlePluginConfigSchema,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_plugin_changelog",
			mcp.WithDescription("Get the changelog of an installed plugin"),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Plugin package name"),
			),
		),
		s.handlePluginChangelog,
	)

	// Platform
	s.mcpServer.AddTool(
		mcp.NewTool("get_system_info",
			mcp.WithDescription("Get host system information (OS, CPU, memory, network) from the Homebridge server"),
		),
		s.handleSystemInformation,
	)
}
