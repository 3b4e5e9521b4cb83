package handler

import (
	"fmt"
	"time"

	"storesense/internal/catalog"
	"storesense/internal/geo"
	"storesense/internal/wireless"
)

// DetectRequest is the HTTP request body for POST /v1/detect.
type DetectRequest struct {
	Position PositionRequest  `json:"position"`
	Networks []NetworkRequest `json:"networks"`
}

// PositionRequest is the device fix portion of a detect request.
type PositionRequest struct {
	Lat       float64  `json:"lat"`
	Lng       float64  `json:"lng"`
	AccuracyM *float64 `json:"accuracy_m,omitempty"`
}

// NetworkRequest is one observed wireless network.
type NetworkRequest struct {
	SSID      string `json:"ssid"`
	BSSID     string `json:"bssid"`
	SignalDBM *int   `json:"signal_dbm,omitempty"`
}

// Validate checks coordinate bounds and network identifiers.
func (r DetectRequest) Validate() error {
	if r.Position.Lat < -90 || r.Position.Lat > 90 {
		return fmt.Errorf("latitude %v out of range", r.Position.Lat)
	}
	if r.Position.Lng < -180 || r.Position.Lng > 180 {
		return fmt.Errorf("longitude %v out of range", r.Position.Lng)
	}
	for i, n := range r.Networks {
		if n.SSID == "" && n.BSSID == "" {
			return fmt.Errorf("network %d has neither ssid nor bssid", i)
		}
	}
	return nil
}

// Point converts the fix to the domain type.
func (r DetectRequest) Point() geo.Point {
	return geo.Point{Lat: r.Position.Lat, Lng: r.Position.Lng}
}

// Observations converts the scanned networks to domain observations.
func (r DetectRequest) Observations() []wireless.Observation {
	if len(r.Networks) == 0 {
		return nil
	}
	now := time.Now()
	out := make([]wireless.Observation, 0, len(r.Networks))
	for _, n := range r.Networks {
		out = append(out, wireless.Observation{
			Network:    wireless.Network{SSID: n.SSID, BSSID: n.BSSID},
			SignalDBM:  n.SignalDBM,
			ObservedAt: now,
		})
	}
	return out
}

// SelectRequest is the HTTP request body for POST /v1/stores/select.
type SelectRequest struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Chain      string  `json:"chain,omitempty"`
	Address    string  `json:"address,omitempty"`
	PostalCode string  `json:"postal_code,omitempty"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}

// Validate checks the selected store is identifiable.
func (r SelectRequest) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("store id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("store name is required")
	}
	return nil
}

// Store converts the selection to the domain type.
func (r SelectRequest) Store() catalog.Store {
	return catalog.Store{
		ID:         r.ID,
		Name:       r.Name,
		Chain:      r.Chain,
		Address:    r.Address,
		PostalCode: r.PostalCode,
		Location:   geo.Point{Lat: r.Lat, Lng: r.Lng},
	}
}
