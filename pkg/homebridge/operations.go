package homebridge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Accessories returns all accessories known to the running Homebridge
// instance.
func (c *Client) Accessories(ctx context.Context) ([]Accessory, error) {
	value, err := c.Request(ctx, http.MethodGet, "/api/accessories", nil)
	if err != nil {
		return nil, err
	}
	var accessories []Accessory
	if err := reencode(value, &accessories); err != nil {
		return nil, fmt.Errorf("decode accessories: %w", err)
	}
	return accessories, nil
}

// Accessory returns a single accessory by its uniqueId.
func (c *Client) Accessory(ctx context.Context, uniqueID string) (any, error) {
	return c.Request(ctx, http.MethodGet, "/api/accessories/"+url.PathEscape(uniqueID), nil)
}

// Layout returns the room layout of the Homebridge UI.
func (c *Client) Layout(ctx context.Context) ([]Room, error) {
	value, err := c.Request(ctx, http.MethodGet, "/api/accessories/layout", nil)
	if err != nil {
		return nil, err
	}
	var rooms []Room
	if err := reencode(value, &rooms); err != nil {
		return nil, fmt.Errorf("decode accessory layout: %w", err)
	}
	return rooms, nil
}

// SetCharacteristic sets one characteristic value on an accessory.
func (c *Client) SetCharacteristic(ctx context.Context, uniqueID, characteristicType string, value any) (any, error) {
	body := map[string]any{
		"characteristicType": characteristicType,
		"value":              value,
	}
	return c.Request(ctx, http.MethodPut, "/api/accessories/"+url.PathEscape(uniqueID), body)
}

// HomebridgeStatus returns the status of the Homebridge service.
func (c *Client) HomebridgeStatus(ctx context.Context) (any, error) {
	return c.Request(ctx, http.MethodGet, "/api/status/homebridge", nil)
}

// ServerInformation returns metadata about the Homebridge server.
func (c *Client) ServerInformation(ctx context.Context) (any, error) {
	return c.Request(ctx, http.MethodGet, "/api/status/server-information", nil)
}

// RestartHomebridge asks the UI to restart the Homebridge service.
func (c *Client) RestartHomebridge(ctx context.Context) (any, error) {
	return c.Request(ctx, http.MethodPut, "/api/server/restart", nil)
}

// PairingInformation returns the HomeKit pairing details.
func (c *Client) PairingInformation(ctx context.Context) (any, error) {
	return c.Request(ctx, http.MethodGet, "/api/server/pairing", nil)
}

// CachedAccessories lists the accessories currently in the bridge cache.
func (c *Client) CachedAccessories(ctx context.Context) (any, error) {
	return c.Request(ctx, http.MethodGet, "/api/server/cached-accessories", nil)
}

// RemoveCachedAccessory deletes a single cached accessory by UUID.
func (c *Client) RemoveCachedAccessory(ctx context.Context, uuid string) (any, error) {
	return c.Request(ctx, http.MethodDelete, "/api/server/cached-accessories/"+url.PathEscape(uuid), nil)
}

// ResetCachedAccessories clears the entire accessory cache.
func (c *Client) ResetCachedAccessories(ctx context.Context) (any, error) {
	return c.Request(ctx, http.MethodPut, "/api/server/reset-cached-accessories", nil)
}

// Config returns the current Homebridge config.json document.
func (c *Client) Config(ctx context.Context) (any, error) {
	return c.Request(ctx, http.MethodGet, "/api/config-editor", nil)
}

// UpdateConfig replaces the Homebridge config.json with document.
func (c *Client) UpdateConfig(ctx context.Context, document any) (any, error) {
	return c.Request(ctx, http.MethodPost, "/api/config-editor", document)
}

// Plugins lists the installed Homebridge plugins.
func (c *Client) Plugins(ctx context.Context) (any, error) {
	return c.Request(ctx, http.MethodGet, "/api/plugins", nil)
}

// SearchPlugins searches the plugin registry.
func (c *Client) SearchPlugins(ctx context.Context, query string) (any, error) {
	return c.Request(ctx, http.MethodGet, "/api/plugins/search/"+url.PathEscape(query), nil)
}

// LookupPlugin returns registry details for a plugin by name.
func (c *Client) LookupPlugin(ctx context.Context, name string) (any, error) {
	return c.Request(ctx, http.MethodGet, "/api/plugins/lookup/"+url.PathEscape(name), nil)
}

// PluginVersions returns the published versions of a plugin.
func (c *Client) PluginVersions(ctx context.Context, name string) (any, error) {
	return c.Request(ctx, http.MethodGet, "/api/plugins/lookup/"+url.PathEscape(name)+"/versions", nil)
}

// PluginConfigSchema returns the config.schema.json of an installed plugin.
func (c *Client) PluginConfigSchema(ctx context.Context, name string) (any, error) {
	return c.Request(ctx, http.MethodGet, "/api/plugins/config-schema/"+url.PathEscape(name), nil)
}

// PluginChangelog returns the changelog of an installed plugin. The UI may
// serve this as plain text, in which case the raw string is returned.
func (c *Client) PluginChangelog(ctx context.Context, name string) (any, error) {
	return c.Request(ctx, http.MethodGet, "/api/plugins/changelog/"+url.PathEscape(name), nil)
}

// SystemInformation returns host system details.
func (c *Client) SystemInformation(ctx context.Context) (any, error) {
	return c.Request(ctx, http.MethodGet, "/api/platform-tools/system-information", nil)
}

// reencode converts a generically-decoded JSON value into a typed one.
func reencode(value any, destination any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(encoded, destination)
}
