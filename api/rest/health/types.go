package health

// liveness report for /health; no upstream is contacted
type Response struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"vertexgate"`
	Version string `json:"version,omitempty" example:"1.0.0"`
}

// reply for /ping
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}
