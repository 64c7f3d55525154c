package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
)

// ErrDistributionFinalized is returned when a finalized project's split is written
var ErrDistributionFinalized = fmt.Errorf("%w: distribution already finalized, cannot modify", ErrConflict)

// ValidationError reports a rejected reward distribution. Fields maps each
// failing field to its problem; Total is the computed sum including the
// operations cut.
type ValidationError struct {
	Fields map[string]string
	Total  int
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return fmt.Sprintf("invalid reward distribution (total %d%%): %s", e.Total, strings.Join(parts, "; "))
}
