package models

import "fmt"

// PlanError is the typed error surfaced by the planner and its collaborators.
// Two PlanErrors match under errors.Is when their codes are equal.
type PlanError struct {
	Code    string
	Message string
}

func (e *PlanError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PlanError) Is(target error) bool {
	t, ok := target.(*PlanError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

const (
	CodeInvalidCoordinate     = "invalidCoordinate"
	CodeInvalidBudget         = "invalidBudget"
	CodeUnsupportedLanguage   = "unsupportedLanguage"
	CodeProviderUnavailable   = "providerUnavailable"
	CodeNoCandidatesAvailable = "noCandidatesAvailable"
	CodeInvalidFilter         = "invalidFilter"
	CodeNotFound              = "notFound"
	CodeInvalidRequest        = "invalidRequest"
)

var (
	ErrInvalidCoordinate     = &PlanError{Code: CodeInvalidCoordinate}
	ErrInvalidBudget         = &PlanError{Code: CodeInvalidBudget}
	ErrUnsupportedLanguage   = &PlanError{Code: CodeUnsupportedLanguage}
	ErrProviderUnavailable   = &PlanError{Code: CodeProviderUnavailable}
	ErrNoCandidatesAvailable = &PlanError{Code: CodeNoCandidatesAvailable}
	ErrInvalidFilter         = &PlanError{Code: CodeInvalidFilter}
	ErrNotFound              = &PlanError{Code: CodeNotFound}
	ErrInvalidRequest        = &PlanError{Code: CodeInvalidRequest}
)

// NewPlanError builds a PlanError carrying a request specific message.
func NewPlanError(code, msg string) error {
	return &PlanError{
		Code:    code,
		Message: msg,
	}
}
