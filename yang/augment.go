package yang

// Augmentation adds schema nodes to a target node identified by path.
type Augmentation struct {
	Target        string
	Status        *Status
	When          *When
	IfFeatures    []string
	DataDefs      []DataDefinition
	Actions       []*Action
	Notifications []*Notification
	Description   *string
	Reference     *string

	Meta    Metadata
	Unknown []*Statement
}

func (*Augmentation) bodyStatement() {}

// Deviation declares that the server deviates from the schema at Target.
type Deviation struct {
	Target      string
	Items       []*DeviationItem
	Description *string
	Reference   *string

	Meta    Metadata
	Unknown []*Statement
}

func (*Deviation) bodyStatement() {}

// DeviationItem is one deviate statement. Aspect is the declared argument:
// "not-supported", "add", "replace", or "delete".
type DeviationItem struct {
	Aspect      string
	Type        *Type
	Units       *string
	Musts       []*Must
	Uniques     []string
	Defaults    []string
	Config      *bool
	Mandatory   *bool
	MinElements *float64
	MaxElements *string

	Meta    Metadata
	Unknown []*Statement
}

// Refine adjusts a node brought in by a uses statement.
type Refine struct {
	Target      string
	IfFeatures  []string
	Musts       []*Must
	Presence    *string
	Defaults    []string
	Units       *string
	Config      *bool
	Mandatory   *bool
	MinElements *float64
	MaxElements *string
	Description *string
	Reference   *string

	Meta    Metadata
	Unknown []*Statement
}

// Must is an XPath constraint kept as its unresolved condition string.
type Must struct {
	Condition    string
	ErrorMessage *string
	ErrorAppTag  *string
	Description  *string
	Reference    *string

	Meta    Metadata
	Unknown []*Statement
}

// When makes a node conditional on an unresolved XPath expression.
type When struct {
	Condition   string
	Description *string
	Reference   *string

	Meta    Metadata
	Unknown []*Statement
}
