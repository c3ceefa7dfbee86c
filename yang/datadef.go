package yang

// Container is a YANG container node.
type Container struct {
	Name          string
	Presence      *string
	Config        *bool
	Status        *Status
	When          *When
	IfFeatures    []string
	Musts         []*Must
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

func (*Container) bodyStatement()  {}
func (*Container) dataDefinition() {}

// Leaf is a YANG leaf node.
type Leaf struct {
	Name        string
	Type        *Type
	Units       *string
	Musts       []*Must
	Default     *string
	Config      *bool
	Mandatory   *bool
	Status      *Status
	When        *When
	IfFeatures  []string
	Description *string
	Reference   *string

	Meta    Metadata
	Unknown []*Statement
}

func (*Leaf) bodyStatement()  {}
func (*Leaf) dataDefinition() {}

// LeafList is a YANG leaf-list node.
type LeafList struct {
	Name        string
	Type        *Type
	Units       *string
	Musts       []*Must
	Defaults    []string
	Config      *bool
	MinElements *float64
	MaxElements *string
	OrderedBy   *string
	Status      *Status
	When        *When
	IfFeatures  []string
	Description *string
	Reference   *string

	Meta    Metadata
	Unknown []*Statement
}

func (*LeafList) bodyStatement()  {}
func (*LeafList) dataDefinition() {}

// List is a YANG list node.
type List struct {
	Name          string
	Key           *string
	Uniques       []string
	Musts         []*Must
	Config        *bool
	MinElements   *float64
	MaxElements   *string
	OrderedBy     *string
	Status        *Status
	When          *When
	IfFeatures    []string
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

func (*List) bodyStatement()  {}
func (*List) dataDefinition() {}

// Choice is a YANG choice node. Cases holds both explicit case nodes and
// shorthand data definitions, in declaration order.
type Choice struct {
	Name        string
	Default     *string
	Config      *bool
	Mandatory   *bool
	Status      *Status
	When        *When
	IfFeatures  []string
	Cases       []DataDefinition
	Description *string
	Reference   *string

	Meta    Metadata
	Unknown []*Statement
}

func (*Choice) bodyStatement()  {}
func (*Choice) dataDefinition() {}

// Case is one alternative of a choice.
type Case struct {
	Name        string
	Status      *Status
	When        *When
	IfFeatures  []string
	DataDefs    []DataDefinition
	Description *string
	Reference   *string

	Meta    Metadata
	Unknown []*Statement
}

func (*Case) bodyStatement()  {}
func (*Case) dataDefinition() {}

// Uses expands a grouping at the point of use.
type Uses struct {
	Grouping    string
	Status      *Status
	When        *When
	IfFeatures  []string
	Refines     []*Refine
	Augments    []*Augmentation
	Description *string
	Reference   *string

	Meta    Metadata
	Unknown []*Statement
}

func (*Uses) bodyStatement()  {}
func (*Uses) dataDefinition() {}
