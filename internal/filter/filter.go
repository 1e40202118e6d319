// Package filter reduces an object collection by a free-text query and a
// set of per-field constraints. It is pure: the result depends only on its
// inputs, and input order is preserved.
package filter

import (
	"strings"

	"homescan/internal/model"
)

// Constraints holds per-field substring constraints. Empty fields are
// ignored; non-empty fields must all match (logical AND). Location matches
// either the object's current city or current state.
type Constraints struct {
	Brand    string
	Category string
	Color    string
	Shape    string
	Size     string
	Location string
}

// Apply returns the objects matching both the query and every non-empty
// constraint, in their original order.
func Apply(objects []model.DetectedObject, query string, c Constraints) []model.DetectedObject {
	var out []model.DetectedObject
	for _, o := range objects {
		if Match(o, query, c) {
			out = append(out, o)
		}
	}
	return out
}

// Match reports whether a single object passes the query and constraints.
// An empty query is vacuously true; missing fields never match a non-empty
// query or constraint.
func Match(o model.DetectedObject, query string, c Constraints) bool {
	if query != "" {
		if !contains(o.Text, query) && !containsPtr(o.Brand, query) && !containsPtr(o.Category, query) {
			return false
		}
	}

	if c.Brand != "" && !containsPtr(o.Brand, c.Brand) {
		return false
	}
	if c.Category != "" && !containsPtr(o.Category, c.Category) {
		return false
	}
	if c.Color != "" && !containsPtr(o.Color, c.Color) {
		return false
	}
	if c.Shape != "" && !containsPtr(o.Shape, c.Shape) {
		return false
	}
	if c.Size != "" && !containsPtr(o.Size, c.Size) {
		return false
	}
	if c.Location != "" && !containsPtr(o.CurrentCity, c.Location) && !containsPtr(o.CurrentState, c.Location) {
		return false
	}

	return true
}

// contains is a case-insensitive substring test.
func contains(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func containsPtr(s *string, substr string) bool {
	return s != nil && contains(*s, substr)
}
