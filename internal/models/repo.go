package models

import (
	"github.com/go-playground/validator/v10"
)

// Validate is shared by the store, the services and the request binders.
var Validate = validator.New()

// Patch is a partial record: JSON field names mapped to new values.
type Patch map[string]interface{}
