package models

import "time"

// SystemMetrics is a lightweight aggregate of runtime counters, served to
// the admin dashboard alongside the Prometheus endpoint.
type SystemMetrics struct {
	RequestsTotal            uint64    `json:"requestsTotal"`
	AverageRequestDurationMs float64   `json:"averageRequestDurationMs"`
	StoreOperations          uint64    `json:"storeOperations"`
	AverageStoreOperationMs  float64   `json:"averageStoreOperationMs"`
	ReportsGenerated         uint64    `json:"reportsGenerated"`
	AssistantRequests        uint64    `json:"assistantRequests"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generatedAt"`
}
