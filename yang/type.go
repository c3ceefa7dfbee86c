package yang

// Typedef defines a derived type.
type Typedef struct {
	Name        string
	Type        *Type
	Units       *string
	Default     *string
	Status      *Status
	Description *string
	Reference   *string

	Meta    Metadata
	Unknown []*Statement
}

func (*Typedef) bodyStatement() {}

// Type is a type reference with its restrictions. The Name may carry a
// prefix ("pfx:counter"). Restrictions are kept as declared; resolving them
// against the effective base type is left to higher layers.
type Type struct {
	Name            string
	Range           *Range
	Length          *Length
	Patterns        []*Pattern
	FractionDigits  *float64
	Path            *string
	RequireInstance *bool
	Bases           []string
	Bits            []*Bit
	Enums           []*Enum
	UnionTypes      []*Type

	Meta    Metadata
	Unknown []*Statement
}

// Bound is one endpoint of a range or length part: either the keyword "min"
// or "max", or a number.
type Bound struct {
	Keyword string  // "min" or "max"; "" for numeric bounds
	Value   float64 // valid when Keyword == ""
}

// IsMin reports whether b is the keyword "min".
func (b Bound) IsMin() bool { return b.Keyword == "min" }

// IsMax reports whether b is the keyword "max".
func (b Bound) IsMax() bool { return b.Keyword == "max" }

// Part is one lower..upper element of a range or length specification.
// A single-valued part has equal bounds.
type Part struct {
	Lower Bound
	Upper Bound
}

// Range is a YANG range restriction. Parts holds the validated parts of the
// pipe-separated specification; malformed parts are dropped during mapping.
type Range struct {
	Parts        []Part
	ErrorMessage *string
	ErrorAppTag  *string
	Description  *string
	Reference    *string

	Meta    Metadata
	Unknown []*Statement
}

// Length is a YANG length restriction with the same part structure as Range.
type Length struct {
	Parts        []Part
	ErrorMessage *string
	ErrorAppTag  *string
	Description  *string
	Reference    *string

	Meta    Metadata
	Unknown []*Statement
}

// Pattern is a regular-expression restriction on string types.
type Pattern struct {
	Value        string
	Modifier     *PatternModifier
	ErrorMessage *string
	ErrorAppTag  *string
	Description  *string
	Reference    *string

	Meta    Metadata
	Unknown []*Statement
}

// Bit is one named bit of a bits type. Position is the declared position or
// the auto-incremented one when the statement omits it.
type Bit struct {
	Name        string
	Position    float64
	IfFeatures  []string
	Status      *Status
	Description *string
	Reference   *string

	Meta    Metadata
	Unknown []*Statement
}

// Enum is one named value of an enumeration type. Value is the declared
// value or the auto-incremented one when the statement omits it.
type Enum struct {
	Name        string
	Value       float64
	IfFeatures  []string
	Status      *Status
	Description *string
	Reference   *string

	Meta    Metadata
	Unknown []*Statement
}
