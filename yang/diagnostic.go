package yang

import "fmt"

// Severity distinguishes errors from warnings.
type Severity int

const (
	// SeverityError marks a problem that makes the overall parse or
	// resolve outcome a failure.
	SeverityError Severity = iota
	// SeverityWarning marks a problem that annotates a successful outcome.
	SeverityWarning
)

// String returns "error" or "warning".
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is one error or warning produced while mapping or resolving.
// Its rendered form is the stable contract "<line>:<column>:<message>";
// consumers needing structure must use the fields, not parse the string.
type Diagnostic struct {
	Severity Severity
	Pos      Position
	Message  string
}

// String renders d in the stable "<line>:<column>:<message>" format.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d:%s", d.Pos.Line, d.Pos.Column, d.Message)
}
