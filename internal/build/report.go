package build

import (
	"fmt"

	"github.com/golangsnmp/goyang/yang"
)

// Report collects the diagnostics produced while mapping statements onto
// the typed model. A single report is shared by every context derived from
// the same root, so diagnostics come out in the order they were raised.
type Report struct {
	Errors   []yang.Diagnostic
	Warnings []yang.Diagnostic
}

func (r *Report) Error(pos yang.Position, format string, args ...any) {
	r.Errors = append(r.Errors, yang.Diagnostic{
		Severity: yang.SeverityError,
		Pos:      pos,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *Report) Warn(pos yang.Position, format string, args ...any) {
	r.Warnings = append(r.Warnings, yang.Diagnostic{
		Severity: yang.SeverityWarning,
		Pos:      pos,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *Report) HasErrors() bool { return len(r.Errors) > 0 }
