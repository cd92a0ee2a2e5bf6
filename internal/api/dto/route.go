package dto

type RouteRequest struct {
	StartID string `json:"start_id"`
	EndID   string `json:"end_id"`
}

type RoutePoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type RouteResponse struct {
	Points []RoutePoint `json:"points"`
}
