package status

import "status-backend/internal/employees"

type HomeResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// ConnectedResponse is the db-status body when the table was read.
type ConnectedResponse struct {
	Database  string               `json:"database"`
	Count     int                  `json:"count"`
	Employees []employees.Employee `json:"employees"`
}

// ErrorResponse is the db-status body when the read failed.
type ErrorResponse struct {
	Database string `json:"database"`
	Message  string `json:"message"`
}
