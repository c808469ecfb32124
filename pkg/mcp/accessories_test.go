package mcp

import (
	"testing"

	"github.com/velat/homebridge-mcp/pkg/homebridge"
)

func sampleAccessories() []homebridge.Accessory {
	return []homebridge.Accessory{
		{UniqueID: "a1", Type: "Lightbulb", ServiceName: "Desk Lamp", Values: map[string]any{"On": true}},
		{UniqueID: "a2", Type: "Lightbulb", ServiceName: "Ceiling Lamp"},
		{UniqueID: "a3", Type: "Switch", ServiceName: "Fan"},
	}
}

func sampleRooms() []homebridge.Room {
	return []homebridge.Room{
		{Name: "Office", Services: []homebridge.RoomService{{UniqueID: "a1"}}},
		{Name: "Bedroom", Services: []homebridge.RoomService{{UniqueID: "a3"}}},
	}
}

func TestSummarizeAccessories_NoFilter(t *testing.T) {
	out := summarizeAccessories(sampleAccessories(), sampleRooms(), "")
	if len(out) != 3 {
		t.Fatalf("expected all accessories, got %d", len(out))
	}
}

func TestSummarizeAccessories_FilterIsCaseInsensitive(t *testing.T) {
	out := summarizeAccessories(sampleAccessories(), sampleRooms(), "LAMP")
	if len(out) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(out))
	}
	if out[0].Name != "Desk Lamp" || out[1].Name != "Ceiling Lamp" {
		t.Errorf("unexpected matches: %+v", out)
	}
}

func TestSummarizeAccessories_FilterNoMatch(t *testing.T) {
	out := summarizeAccessories(sampleAccessories(), sampleRooms(), "thermostat")
	if len(out) != 0 {
		t.Errorf("expected no matches, got %+v", out)
	}
}

func TestSummarizeAccessories_JoinsRoomByUniqueID(t *testing.T) {
	out := summarizeAccessories(sampleAccessories(), sampleRooms(), "")

	byID := map[string]AccessorySummary{}
	for _, summary := range out {
		byID[summary.UniqueID] = summary
	}

	if byID["a1"].Room != "Office" {
		t.Errorf("a1 should be in Office, got %q", byID["a1"].Room)
	}
	if byID["a3"].Room != "Bedroom" {
		t.Errorf("a3 should be in Bedroom, got %q", byID["a3"].Room)
	}
	// a2 is not placed in any room
	if byID["a2"].Room != "" {
		t.Errorf("a2 should have no room, got %q", byID["a2"].Room)
	}
}

func TestSummarizeAccessories_NilLayout(t *testing.T) {
	out := summarizeAccessories(sampleAccessories(), nil, "")
	if len(out) != 3 {
		t.Fatalf("expected all accessories, got %d", len(out))
	}
	for _, summary := range out {
		if summary.Room != "" {
			t.Errorf("expected no room without a layout, got %q for %s", summary.Room, summary.UniqueID)
		}
	}
}

func TestCoerceValue(t *testing.T) {
	if v := coerceValue("true"); v != true {
		t.Errorf("expected bool true, got %#v", v)
	}
	if v := coerceValue("140"); v != float64(140) {
		t.Errorf("expected number 140, got %#v", v)
	}
	if v := coerceValue("22.5"); v != 22.5 {
		t.Errorf("expected number 22.5, got %#v", v)
	}
	if v := coerceValue("auto"); v != "auto" {
		t.Errorf("expected string to pass through, got %#v", v)
	}
}
