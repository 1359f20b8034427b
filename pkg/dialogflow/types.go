package dialogflow

import "strings"

// Result is the distilled outcome of one detectIntent round-trip.
type Result struct {
	FulfillmentText string
	Intent          string
	Parameters      map[string]any
}

// StringParam returns the named parameter as a trimmed string, or "" when
// absent or not a string.
func (r Result) StringParam(key string) string {
	if v, ok := r.Parameters[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
