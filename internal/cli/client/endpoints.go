package client

const (
	endpointChat   = "/api/chat"
	endpointSignup = "/api/auth"
	endpointReady  = "/health/ready"
)
