package response

import (
	"net/http"
	"strings"
)

// Envelope is the JSON body of every API response.
type Envelope struct {
	StatusText string `json:"statusText"`
	Status     int    `json:"status"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

func Success(status int, message string, data any) Envelope {
	return build(status, message, data)
}

func Error(status int, message string, data any) Envelope {
	if data == nil {
		data = map[string]any{}
	}
	return build(status, message, data)
}

func build(status int, message string, data any) Envelope {
	return Envelope{
		StatusText: strings.ToUpper(http.StatusText(status)),
		Status:     status,
		Message:    message,
		Data:       data,
	}
}
