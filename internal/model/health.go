package model

// HealthStatus is one entry of the fixed health table: display text plus
// indicator color.
type HealthStatus struct {
	Text  string
	Color string
}

var healthStatuses = map[string]HealthStatus{
	"onTrack":  {Text: "On Track", Color: "#34D399"},
	"atRisk":   {Text: "At Risk", Color: "#FBBF24"},
	"offTrack": {Text: "Off Track", Color: "#F87171"},
}

// HealthStatusFor looks up the health table by Linear's health key.
// Unknown or empty keys fall back to onTrack.
func HealthStatusFor(key string) HealthStatus {
	if s, ok := healthStatuses[key]; ok {
		return s
	}
	return healthStatuses["onTrack"]
}
