package model

// DetectedObject represents a household object with caller-supplied
// attributes. Nullable fields are pointers so "not yet detected" serializes
// as null rather than an empty sentinel.
type DetectedObject struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Brand        *string  `json:"brand"`
	Category     *string  `json:"category"`
	Color        *string  `json:"color"`
	Shape        *string  `json:"shape"`
	Size         *string  `json:"size"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	CurrentCity  *string  `json:"currentCity"`
	CurrentState *string  `json:"currentState"`
	Timestamp    string   `json:"timestamp"`
	ImageURI     string   `json:"imageUri"`
}
