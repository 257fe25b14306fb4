package model

import "github.com/deppfellow/generic-tools/internal/validation"

// MyMemoryRequest translates text between two explicit languages.
type MyMemoryRequest struct {
	Text   string `json:"text" validate:"required"`
	Source string `json:"source" validate:"required,bcp47"`
	Target string `json:"target" validate:"required,bcp47"`
}

func (r *MyMemoryRequest) Validate() error {
	trim(&r.Source, &r.Target)
	return validation.Struct(r)
}

// GoogleTranslateRequest translates text into target, auto-detecting
// the source language.
type GoogleTranslateRequest struct {
	Text   string `json:"text" validate:"required"`
	Target string `json:"target" validate:"required,bcp47"`
}

func (r *GoogleTranslateRequest) Validate() error {
	trim(&r.Target)
	return validation.Struct(r)
}
