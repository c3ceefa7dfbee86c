package yang

// Grouping is a reusable block of schema nodes, expanded by uses.
type Grouping struct {
	Name          string
	Status        *Status
	Typedefs      []*Typedef
	Groupings     []*Grouping
	DataDefs      []DataDefinition
	Actions       []*Action
	Notifications []*Notification
	Description   *string
	Reference     *string

	Meta    Metadata
	Unknown []*Statement
}

func (*Grouping) bodyStatement() {}

// Identity declares a globally unique identity, optionally derived from one
// or more base identities.
type Identity struct {
	Name        string
	Bases       []string
	IfFeatures  []string
	Status      *Status
	Description *string
	Reference   *string

	Meta    Metadata
	Unknown []*Statement
}

func (*Identity) bodyStatement() {}

// Feature declares a named optional capability.
type Feature struct {
	Name        string
	IfFeatures  []string
	Status      *Status
	Description *string
	Reference   *string

	Meta    Metadata
	Unknown []*Statement
}

func (*Feature) bodyStatement() {}

// Extension declares a new statement keyword usable by other modules.
type Extension struct {
	Name        string
	Argument    *Argument
	Status      *Status
	Description *string
	Reference   *string

	Meta    Metadata
	Unknown []*Statement
}

func (*Extension) bodyStatement() {}

// Argument describes the argument of an extension statement.
type Argument struct {
	Name       string
	YinElement *bool

	Meta    Metadata
	Unknown []*Statement
}

// Rpc is a top-level operation of a module.
type Rpc struct {
	Name        string
	IfFeatures  []string
	Status      *Status
	Typedefs    []*Typedef
	Groupings   []*Grouping
	Input       *Input
	Output      *Output
	Description *string
	Reference   *string

	Meta    Metadata
	Unknown []*Statement
}

func (*Rpc) bodyStatement() {}

// Action is an operation tied to a container or list node.
type Action struct {
	Name        string
	IfFeatures  []string
	Status      *Status
	Typedefs    []*Typedef
	Groupings   []*Grouping
	Input       *Input
	Output      *Output
	Description *string
	Reference   *string

	Meta    Metadata
	Unknown []*Statement
}

// Input is the input tree of an rpc or action. The input statement takes no
// argument; an argument in the source is reported as a warning.
type Input struct {
	Musts     []*Must
	Typedefs  []*Typedef
	Groupings []*Grouping
	DataDefs  []DataDefinition

	Meta    Metadata
	Unknown []*Statement
}

// Output is the output tree of an rpc or action.
type Output struct {
	Musts     []*Must
	Typedefs  []*Typedef
	Groupings []*Grouping
	DataDefs  []DataDefinition

	Meta    Metadata
	Unknown []*Statement
}

// Notification declares an event emitted by the server.
type Notification struct {
	Name        string
	IfFeatures  []string
	Status      *Status
	Musts       []*Must
	Typedefs    []*Typedef
	Groupings   []*Grouping
	DataDefs    []DataDefinition
	Description *string
	Reference   *string

	Meta    Metadata
	Unknown []*Statement
}

func (*Notification) bodyStatement() {}
