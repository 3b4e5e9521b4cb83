package geofence

import (
	"encoding/json"
	"fmt"
)

// envelope tags the concrete geometry so the sum type survives a round trip
// through JSON columns and wire payloads.
type envelope struct {
	Type    string   `json:"type"`
	Circle  *Circle  `json:"circle,omitempty"`
	Polygon *Polygon `json:"polygon,omitempty"`
}

const (
	typeCircle  = "circle"
	typePolygon = "polygon"
)

// Encode serializes a fence with a type tag.
func Encode(f Fence) ([]byte, error) {
	switch f := f.(type) {
	case Circle:
		return json.Marshal(envelope{Type: typeCircle, Circle: &f})
	case Polygon:
		return json.Marshal(envelope{Type: typePolygon, Polygon: &f})
	default:
		return nil, fmt.Errorf("encode geofence: unknown geometry %T", f)
	}
}

// Decode parses a fence encoded by Encode.
func Decode(data []byte) (Fence, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode geofence: %w", err)
	}
	switch env.Type {
	case typeCircle:
		if env.Circle == nil {
			return nil, fmt.Errorf("decode geofence: missing circle body")
		}
		return *env.Circle, nil
	case typePolygon:
		if env.Polygon == nil {
			return nil, fmt.Errorf("decode geofence: missing polygon body")
		}
		return *env.Polygon, nil
	default:
		return nil, fmt.Errorf("decode geofence: unknown type %q", env.Type)
	}
}
