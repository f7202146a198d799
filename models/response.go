package models

// ErrorResponse is the JSON body returned for all non-2xx responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
