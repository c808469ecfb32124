package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) handleListAccessories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := optionalString(request, "filter")

	accessories, err := s.client.Accessories(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list accessories: %s", err)), nil
	}

	// Room enrichment is best-effort; an accessory list without rooms is
	// still useful when the UI has no layout configured.
	rooms, err := s.client.Layout(ctx)
	if err != nil {
		rooms = nil
	}

	out := ListAccessoriesOutput{
		Accessories: summarizeAccessories(accessories, rooms, filter),
	}
	out.Count = len(out.Accessories)

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetAccessory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uniqueID, err := requiredString(request, "unique_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	accessory, err := s.client.Accessory(ctx, uniqueID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get accessory: %s", err)), nil
	}

	return toolResult(accessory), nil
}

func (s *Server) handleGetLayout(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rooms, err := s.client.Layout(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get accessory layout: %s", err)), nil
	}

	return toolResult(rooms), nil
}

func (s *Server) handleSetCharacteristic(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uniqueID, err := requiredString(request, "unique_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	characteristicType, err := requiredString(request, "characteristic_type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rawValue, err := requiredString(request, "value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.client.SetCharacteristic(ctx, uniqueID, characteristicType, coerceValue(rawValue))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to set characteristic: %s", err)), nil
	}

	return toolResult(result), nil
}

func (s *Server) handleHomebridgeStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := s.client.HomebridgeStatus(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get homebridge status: %s", err)), nil
	}

	return toolResult(status), nil
}

func (s *Server) handleServerInformation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := s.client.ServerInformation(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get server information: %s", err)), nil
	}

	return toolResult(info), nil
}

func (s *Server) handleRestartHomebridge(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.client.RestartHomebridge(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to restart homebridge: %s", err)), nil
	}

	return toolResult(result), nil
}

func (s *Server) handlePairingInformation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pairing, err := s.client.PairingInformation(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get pairing information: %s", err)), nil
	}

	return toolResult(pairing), nil
}

func (s *Server) handleCachedAccessories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cached, err := s.client.CachedAccessories(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list cached accessories: %s", err)), nil
	}

	return toolResult(cached), nil
}

func (s *Server) handleRemoveCachedAccessory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uuid, err := requiredString(request, "uuid")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.client.RemoveCachedAccessory(ctx, uuid)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to remove cached accessory: %s", err)), nil
	}

	return toolResult(result), nil
}

func (s *Server) handleResetCachedAccessories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.client.ResetCachedAccessories(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to reset cached accessories: %s", err)), nil
	}

	return toolResult(result), nil
}

func (s *Server) handleGetConfig(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	document, err := s.client.Config(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read config: %s", err)), nil
	}

	return toolResult(document), nil
}

func (s *Server) handleSetConfig(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := request.GetArguments()["config"]
	if !ok || raw == nil {
		return mcp.NewToolResultError(`required parameter "config" is missing`), nil
	}
	document, ok := raw.(map[string]any)
	if !ok {
		return mcp.NewToolResultError(`parameter "config" must be a JSON object`), nil
	}

	if s.validator != nil {
		if err := s.validator.Validate(homebridgeConfigSchema, document); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("config validation error: %s", err)), nil
		}
	}

	result, err := s.client.UpdateConfig(ctx, document)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to replace config: %s", err)), nil
	}

	return toolResult(result), nil
}

func (s *Server) handleListPlugins(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	plugins, err := s.client.Plugins(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list plugins: %s", err)), nil
	}

	return toolResult(plugins), nil
}

func (s *Server) handleSearchPlugins(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := requiredString(request, "query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	results, err := s.client.SearchPlugins(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to search plugins: %s", err)), nil
	}

	return toolResult(results), nil
}

func (s *Server) handleLookupPlugin(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := requiredString(request, "name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	plugin, err := s.client.LookupPlugin(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to look up plugin: %s", err)), nil
	}

	return toolResult(plugin), nil
}

func (s *Server) handlePluginVersions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := requiredString(request, "name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	versions, err := s.client.PluginVersions(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get plugin versions: %s", err)), nil
	}

	return toolResult(versions), nil
}

func (s *Server) handlePluginConfigSchema(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := requiredString(request, "name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	configSchema, err := s.client.PluginConfigSchema(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get plugin config schema: %s", err)), nil
	}

	return toolResult(configSchema), nil
}

func (s *Server) handlePluginChangelog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := requiredString(request, "name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	changelog, err := s.client.PluginChangelog(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get plugin changelog: %s", err)), nil
	}

	return toolResult(changelog), nil
}

func (s *Server) handleSystemInformation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := s.client.SystemInformation(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get system information: %s", err)), nil
	}

	return toolResult(info), nil
}

// --- helpers ---

const noContentMessage = "operation succeeded, no content"

// toolResult renders a decoded API value as a text result. Nil and empty
// values render the no-content fallback; plain strings pass through as-is.
func toolResult(v any) *mcp.CallToolResult {
	switch out := v.(type) {
	case nil:
		return mcp.NewToolResultText(noContentMessage)
	case string:
		if strings.TrimSpace(out) == "" {
			return mcp.NewToolResultText(noContentMessage)
		}
		return mcp.NewToolResultText(out)
	default:
		return mcp.NewToolResultText(formatJSON(v))
	}
}

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func optionalString(request mcp.CallToolRequest, key string) string {
	if v, ok := request.GetArguments()[key].(string); ok {
		return v
	}
	return ""
}

// coerceValue maps a string argument onto the JSON type HomeKit expects:
// bools and numbers are converted, everything else stays a string.
func coerceValue(raw string) any {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}
