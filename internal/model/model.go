// Package model holds the request and response payloads of the API.
//
// Requests validate themselves with validation.Struct after trimming
// surrounding whitespace from their string fields.
package model

import "strings"

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
