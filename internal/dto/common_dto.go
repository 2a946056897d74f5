package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// ValidationErrorResponse echoes the offending records for bulk
// document validation failures.
type ValidationErrorResponse struct {
	Error   bool            `json:"error"`
	Message string          `json:"message"`
	Records []InvalidRecord `json:"records,omitempty"`
}

type InvalidRecord struct {
	Index  int         `json:"index"`
	Reason string      `json:"reason"`
	Record interface{} `json:"record,omitempty"`
}

// DataResponse is the success envelope the frontend consumes.
type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
