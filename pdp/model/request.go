package model

// RequestContext is what the caller claims about where it is.
type RequestContext struct {
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lon"`
	NetworkHint string  `json:"client_network_hint,omitempty"`
}
