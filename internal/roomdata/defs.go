package roomdata

// RoomDef is one blueprint entry in rooms.json.
type RoomDef struct {
	// ID uniquely names the template.
	ID string `json:"id"`
	// Weight biases how often the generator picks this template.
	Weight float64 `json:"weight"`
	// MaxHallway bounds corridor length for external doorways; zero
	// means doorways must touch existing floor directly.
	MaxHallway int `json:"maxHallway"`
	// Rows is the ASCII blueprint, one string per grid row.
	Rows []string `json:"rows"`
}

// LoadRooms loads the blueprint definitions from the embedded rooms.json.
func LoadRooms() ([]RoomDef, error) {
	return Load[[]RoomDef]("rooms.json")
}
