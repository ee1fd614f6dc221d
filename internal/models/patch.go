package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalid marks records that fail validation or patches that do not fit
// the record's shape.
var ErrInvalid = errors.New("invalid record")

// Fields that no patch may overwrite.
var immutableFields = []string{"id", "createdAt"}

// ApplyPatch merges patch over rec by round-tripping both through their JSON
// form. Keys named in protected, as well as id and createdAt, are ignored.
// The merged record is validated before it is returned.
func ApplyPatch[T any](rec T, patch Patch, protected ...string) (T, error) {
	var zero T

	raw, err := json.Marshal(rec)
	if err != nil {
		return zero, fmt.Errorf("failed to marshal record: %v", err)
	}

	fields := map[string]interface{}{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return zero, fmt.Errorf("failed to unmarshal record: %v", err)
	}

	for key, value := range patch {
		if isProtected(key, protected) {
			continue
		}
		fields[key] = value
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return zero, fmt.Errorf("failed to marshal patch: %v", err)
	}

	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if err := Validate.Struct(out); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return out, nil
}

func isProtected(key string, protected []string) bool {
	for _, k := range immutableFields {
		if k == key {
			return true
		}
	}
	for _, k := range protected {
		if k == key {
			return true
		}
	}
	return false
}
