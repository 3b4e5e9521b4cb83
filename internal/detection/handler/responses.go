package handler

import (
	"storesense/internal/catalog"
	"storesense/internal/detection"
)

// DetectResponse is the HTTP response for POST /v1/detect and
// POST /v1/stores/select.
type DetectResponse struct {
	Store                *StoreResponse  `json:"store,omitempty"`
	Confidence           int             `json:"confidence"`
	Method               string          `json:"method"`
	DistanceM            *float64        `json:"distance_m,omitempty"`
	InsideFence          *bool           `json:"inside_geofence,omitempty"`
	Nearby               []StoreResponse `json:"nearby_stores,omitempty"`
	RequiresConfirmation bool            `json:"requires_confirmation"`
}

// StoreResponse is the store portion of a response.
type StoreResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Chain      string  `json:"chain,omitempty"`
	Address    string  `json:"address,omitempty"`
	PostalCode string  `json:"postal_code,omitempty"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}

// ConfirmResponse is the HTTP response for POST /v1/stores/{storeID}/confirm.
type ConfirmResponse struct {
	StoreID   string `json:"store_id"`
	Confirmed bool   `json:"confirmed"`
}

// SearchResponse is the HTTP response for GET /v1/stores/search.
type SearchResponse struct {
	Stores []StoreResponse `json:"stores"`
}

// FromResult converts a domain Result to an HTTP response.
func FromResult(result detection.Result) DetectResponse {
	resp := DetectResponse{
		Confidence:           result.Confidence,
		Method:               string(result.Method),
		DistanceM:            result.DistanceM,
		InsideFence:          result.InsideFence,
		Nearby:               storesToResponse(result.Nearby),
		RequiresConfirmation: result.RequiresConfirmation,
	}
	if result.Store != nil {
		store := storeToResponse(*result.Store)
		resp.Store = &store
	}
	return resp
}

func storeToResponse(s catalog.Store) StoreResponse {
	return StoreResponse{
		ID:         s.ID,
		Name:       s.Name,
		Chain:      s.Chain,
		Address:    s.Address,
		PostalCode: s.PostalCode,
		Lat:        s.Location.Lat,
		Lng:        s.Location.Lng,
	}
}

func storesToResponse(stores []catalog.Store) []StoreResponse {
	if len(stores) == 0 {
		return nil
	}
	out := make([]StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, storeToResponse(s))
	}
	return out
}
