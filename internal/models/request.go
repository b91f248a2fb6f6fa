package models

import (
	"github.com/go-playground/validator/v10"
)

var requestValidate = validator.New()

// Validate enforces the field size limits on an inbound request. Empty query
// and answer are valid and are scored by the checks.
func (r *ValidationRequest) Validate() error {
	return requestValidate.Struct(r)
}
