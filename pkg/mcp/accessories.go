package mcp

import (
	"encoding/json"
	"strings"

	"github.com/velat/homebridge-mcp/pkg/homebridge"
)

// ListAccessoriesOutput is the output for the list_accessories tool
type ListAccessoriesOutput struct {
	Accessories []AccessorySummary `json:"accessories" jsonschema:"description=Accessories matching the filter"`
	Count       int                `json:"count" jsonschema:"description=Number of accessories returned"`
}

// AccessorySummary represents an accessory in tool outputs
type AccessorySummary struct {
	UniqueID  string         `json:"uniqueId" jsonschema:"description=Stable accessory identifier"`
	Name      string         `json:"name" jsonschema:"description=Accessory service name"`
	Type      string         `json:"type" jsonschema:"description=HomeKit service type"`
	HumanType string         `json:"humanType,omitempty" jsonschema:"description=Human-readable service type"`
	Room      string         `json:"room,omitempty" jsonschema:"description=Room the accessory is placed in, when the layout defines one"`
	Values    map[string]any `json:"values,omitempty" jsonschema:"description=Current characteristic values"`
}

// homebridgeConfigSchema is the shape check applied to replacement config
// documents before they are written: Homebridge refuses to start without a
// well-formed bridge block.
var homebridgeConfigSchema = json.RawMessage(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["bridge"],
	"properties": {
		"bridge": {
			"type": "object",
			"required": ["name", "username", "pin"],
			"properties": {
				"name": {"type": "string"},
				"username": {"type": "string"},
				"port": {"type": "integer"},
				"pin": {"type": "string"}
			}
		},
		"accessories": {"type": "array"},
		"platforms": {"type": "array"}
	}
}`)

// summarizeAccessories filters accessories by a case-insensitive name
// substring and joins in the room name from the layout by uniqueId.
// An empty filter matches everything; accessories missing from the layout
// are returned without a room.
func summarizeAccessories(accessories []homebridge.Accessory, rooms []homebridge.Room, filter string) []AccessorySummary {
	roomByID := make(map[string]string)
	for _, room := range rooms {
		for _, service := range room.Services {
			roomByID[service.UniqueID] = room.Name
		}
	}

	needle := strings.ToLower(filter)

	out := make([]AccessorySummary, 0, len(accessories))
	for _, accessory := range accessories {
		if needle != "" && !strings.Contains(strings.ToLower(accessory.ServiceName), needle) {
			continue
		}
		out = append(out, AccessorySummary{
			UniqueID:  accessory.UniqueID,
			Name:      accessory.ServiceName,
			Type:      accessory.Type,
			HumanType: accessory.HumanType,
			Room:      roomByID[accessory.UniqueID],
			Values:    accessory.Values,
		})
	}
	return out
}
