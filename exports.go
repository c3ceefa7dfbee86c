// Package goyang parses YANG (RFC 7950) modules into a typed model and
// resolves their imports and includes.
package goyang

import "github.com/golangsnmp/goyang/yang"

// Type aliases for public API - all types come from the yang subpackage.

// Module is a parsed YANG module.
type Module = yang.Module

// Submodule is a parsed YANG submodule.
type Submodule = yang.Submodule

// Statement is one generic YANG statement, kept for unknown and extension
// statements.
type Statement = yang.Statement

// Diagnostic is a parse or resolution issue.
type Diagnostic = yang.Diagnostic

// Severity of a diagnostic.
type Severity = yang.Severity

// Position locates a statement in its source.
type Position = yang.Position

// Metadata is per-node source information.
type Metadata = yang.Metadata

// BodyStatement is any statement that can appear in a module body.
type BodyStatement = yang.BodyStatement

// DataDefinition is any schema data node.
type DataDefinition = yang.DataDefinition

// Schema node types.
type (
	Container    = yang.Container
	Leaf         = yang.Leaf
	LeafList     = yang.LeafList
	List         = yang.List
	Choice       = yang.Choice
	Case         = yang.Case
	Uses         = yang.Uses
	Grouping     = yang.Grouping
	Typedef      = yang.Typedef
	Type         = yang.Type
	Identity     = yang.Identity
	Feature      = yang.Feature
	Extension    = yang.Extension
	Rpc          = yang.Rpc
	Action       = yang.Action
	Input        = yang.Input
	Output       = yang.Output
	Notification = yang.Notification
	Augmentation = yang.Augmentation
	Deviation    = yang.Deviation
	Refine       = yang.Refine
	Must         = yang.Must
	When         = yang.When
	Revision     = yang.Revision
	Import       = yang.Import
	Include      = yang.Include
)

// Status values for schema nodes.
type Status = yang.Status

// Status constants.
const (
	StatusCurrent    = yang.StatusCurrent
	StatusDeprecated = yang.StatusDeprecated
	StatusObsolete   = yang.StatusObsolete
)

// Severity constants.
const (
	SeverityError   = yang.SeverityError
	SeverityWarning = yang.SeverityWarning
)
