package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// ComponentHealthStatus represents the health check structure of a application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse represents the health check response of all application
type HealthResponse struct {
	Status HealthStatus          `json:"status"`
	Cache  ComponentHealthStatus `json:"cache"`
	Queue  ComponentHealthStatus `json:"queue"`
}

// DisabledComponent reports a component that is switched off by configuration
func DisabledComponent() ComponentHealthStatus {
	return ComponentHealthStatus{
		Status:  StatusUnknown,
		Details: map[string]string{"message": "disabled"},
	}
}
