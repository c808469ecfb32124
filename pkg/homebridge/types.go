package homebridge

// Accessory represents one service exposed by the Homebridge accessory list.
// Only the fields the tool layer filters and joins on are typed; everything
// else stays in Values.
type Accessory struct {
	UniqueID             string         `json:"uniqueId"`
	Type                 string         `json:"type"`
	HumanType            string         `json:"humanType,omitempty"`
	ServiceName          string         `json:"serviceName"`
	AccessoryInformation map[string]any `json:"accessoryInformation,omitempty"`
	Values               map[string]any `json:"values,omitempty"`
}

// Room is one entry of the accessory layout: a named grouping of services.
type Room struct {
	Name     string        `json:"name"`
	Services []RoomService `json:"services"`
}

// RoomService identifies an accessory placed in a room.
type RoomService struct {
	UniqueID string `json:"uniqueId"`
}
