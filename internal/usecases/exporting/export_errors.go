package exporting

import (
	"errors"
	"fmt"
)

var ErrRenderPDF = errors.New("error rendering pdf report")

// ExportError é um erro com contexto adicional para exportações
type ExportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ExportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

func NewExportError(err error, code string, details string) *ExportError {
	return &ExportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
