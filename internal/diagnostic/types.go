package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"wirepath/internal/common"
)

// Diagnostics holds all diagnostic information from a schema check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Schema names the checked schema (if any).
	Schema string
	// Path is the coding path this relates to (if any).
	Path string
	// Suggestions are potential fixes.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic and returns it for further decoration.
func (d *Diagnostics) AddError(code, message, schema, path string) *Diagnostic {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Schema:   schema,
		Path:     path,
	})

	return &d.Errors[len(d.Errors)-1]
}

// AddWarning adds a warning diagnostic and returns it for further decoration.
func (d *Diagnostics) AddWarning(code, message, schema, path string) *Diagnostic {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Schema:   schema,
		Path:     path,
	})

	return &d.Warnings[len(d.Warnings)-1]
}

// AddInfo adds an info diagnostic and returns it for further decoration.
func (d *Diagnostics) AddInfo(code, message, schema, path string) *Diagnostic {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Schema:   schema,
		Path:     path,
	})

	return &d.Infos[len(d.Infos)-1]
}

// Suggest appends a suggested fix.
func (d *Diagnostic) Suggest(format string, args ...any) {
	d.Suggestions = append(d.Suggestions, fmt.Sprintf(format, args...))
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return !common.IsEmpty(d.Errors)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	return d.AtLeast(DiagnosticInfo)
}

// AtLeast returns the diagnostics of severity floor or worse, most severe first.
func (d *Diagnostics) AtLeast(floor DiagnosticSeverity) []Diagnostic {
	var out []Diagnostic

	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if diag.Severity >= floor {
				out = append(out, diag)
			}
		}
	}

	return out
}

// Error joins the error diagnostics into one error, or returns nil if there are none.
func (d *Diagnostics) Error() error {
	var errs []error
	for _, e := range d.Errors {
		errs = append(errs, errors.New(e.String()))
	}

	return errors.Join(errs...)
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Schema != "" {
		prefix = append(prefix, "["+d.Schema+"]")
	}

	if d.Path != "" {
		prefix = append(prefix, d.Path)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
