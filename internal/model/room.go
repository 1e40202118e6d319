package model

// Position is a fractional coordinate on a room's layout image, expressed
// as a ratio in [0,1] of each rendered dimension so it stays valid at any
// display resolution.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FurnitureItem is a named marker placed on a room's layout image. It has
// no existence outside its owning room.
type FurnitureItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Position Position `json:"position"`
}

// Room represents a physical room with an optional layout image and the
// furniture markers annotated on it.
type Room struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	ImageURI  *string         `json:"imageUri"`
	Timestamp string          `json:"timestamp"`
	Furniture []FurnitureItem `json:"furniture"`
}

// HasFurniture reports whether the room already carries a marker with the
// given id.
func (r Room) HasFurniture(id string) bool {
	for _, f := range r.Furniture {
		if f.ID == id {
			return true
		}
	}
	return false
}
