package model

import "time"

// NowTimestamp returns the current instant formatted as an ISO-8601 UTC
// string, the wire format used for Room and DetectedObject timestamps.
func NowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
