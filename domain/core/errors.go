package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Lookup errors
	ErrNotFound       = errors.New("resource not found")
	ErrUnknownDisease = fmt.Errorf("%w: disease", ErrNotFound)
	ErrUnknownSymptom = fmt.Errorf("%w: symptom", ErrNotFound)

	// Readiness errors
	ErrModelNotReady = errors.New("model not ready")
	ErrModelLoading  = fmt.Errorf("%w: training ingestion in progress", ErrModelNotReady)

	// Input validation errors
	ErrMalformedInput = errors.New("malformed input")
	ErrVectorLength   = fmt.Errorf("%w: wrong feature vector length", ErrMalformedInput)
	ErrNonFiniteValue = fmt.Errorf("%w: non-finite feature value", ErrMalformedInput)
	ErrNoSymptoms     = fmt.Errorf("%w: no symptoms selected", ErrMalformedInput)

	// Ensemble errors
	ErrTooFewVoters = errors.New("ensemble requires at least two voters")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewVectorLengthError(disease string, want, got int) error {
	return fmt.Errorf("%w for %s: want %d features, got %d", ErrVectorLength, disease, want, got)
}

func NewMissingFeatureError(disease, feature string) error {
	return fmt.Errorf("%w for %s: missing feature %s", ErrMalformedInput, disease, feature)
}

func NewUnknownFeatureError(disease string) error {
	return fmt.Errorf("%w for %s: unrecognized feature name", ErrMalformedInput, disease)
}

func NewNonFiniteError(disease, feature string) error {
	return fmt.Errorf("%w for %s: feature %s", ErrNonFiniteValue, disease, feature)
}

func NewNotReadyError(disease string, state string) error {
	return fmt.Errorf("%w: %s model is %s", ErrModelNotReady, disease, state)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsNotReadyError(err error) bool {
	return errors.Is(err, ErrModelNotReady)
}

func IsMalformedInputError(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}
