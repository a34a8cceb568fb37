package core

import (
	"strings"

	"github.com/google/uuid"
)

// RunID identifies one end-to-end pipeline invocation.
type RunID string

// NewRunID generates a unique run identifier.
func NewRunID() RunID {
	return RunID(uuid.New().String())
}

func (id RunID) String() string {
	return string(id)
}

// IsEmpty checks whether the ID carries a value.
func (id RunID) IsEmpty() bool {
	return strings.TrimSpace(string(id)) == ""
}
