package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	AssessmentID ID
	DiseaseKey   ID
	SymptomID    ID
)

// String conversions for domain IDs
func (id AssessmentID) String() string { return ID(id).String() }
func (k DiseaseKey) String() string    { return ID(k).String() }
func (id SymptomID) String() string    { return ID(id).String() }

// ParseDiseaseKey parses a string into DiseaseKey
func ParseDiseaseKey(s string) (DiseaseKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("disease key cannot be empty")
	}
	return DiseaseKey(s), nil
}

// ParseSymptomID parses a string into SymptomID
func ParseSymptomID(s string) (SymptomID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("symptom ID cannot be empty")
	}
	return SymptomID(s), nil
}
