package build

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/golangsnmp/goyang/internal/testutil"
	"github.com/golangsnmp/goyang/yang"
)

func TestParseRangeSpecification(t *testing.T) {
	parts, diags := ParseRangeSpecification("min..-1 | 0 | 1..max")
	testutil.Len(t, diags, 0, "diagnostics: %v", diags)
	want := []yang.Part{
		{Lower: yang.Bound{Keyword: "min"}, Upper: yang.Bound{Value: -1}},
		{Lower: yang.Bound{Value: 0}, Upper: yang.Bound{Value: 0}},
		{Lower: yang.Bound{Value: 1}, Upper: yang.Bound{Keyword: "max"}},
	}
	if diff := cmp.Diff(want, parts); diff != "" {
		t.Errorf("parts mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLengthSpecification(t *testing.T) {
	parts, diags := ParseLengthSpecification("5..max")
	testutil.Len(t, diags, 0, "diagnostics: %v", diags)
	testutil.Len(t, parts, 1)
	testutil.Equal(t, float64(5), parts[0].Lower.Value)
	testutil.True(t, parts[0].Upper.IsMax())
}

func TestParseSpecificationInvertedBounds(t *testing.T) {
	parts, diags := ParseLengthSpecification("max..5")
	testutil.Len(t, parts, 0)
	testutil.Len(t, diags, 1)
	testutil.Contains(t, diags[0].Message, "mustn't > max")
}

func TestParseSpecificationMalformedPart(t *testing.T) {
	parts, diags := ParseLengthSpecification("1..2..3")
	testutil.Len(t, parts, 0)
	testutil.Len(t, diags, 1)
	testutil.Contains(t, diags[0].Message, "Invalid length part")

	// Valid parts survive alongside dropped ones.
	parts, diags = ParseRangeSpecification("1..10 | snakes | 20..30")
	testutil.Len(t, diags, 1)
	testutil.Contains(t, diags[0].Message, "Invalid range bound 'snakes'")
	want := []yang.Part{
		{Lower: yang.Bound{Value: 1}, Upper: yang.Bound{Value: 10}},
		{Lower: yang.Bound{Value: 20}, Upper: yang.Bound{Value: 30}},
	}
	if diff := cmp.Diff(want, parts); diff != "" {
		t.Errorf("parts mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSpecificationDecimalBounds(t *testing.T) {
	parts, diags := ParseRangeSpecification("-3.14..3.14")
	testutil.Len(t, diags, 0, "diagnostics: %v", diags)
	testutil.Len(t, parts, 1)
	testutil.Equal(t, -3.14, parts[0].Lower.Value)
	testutil.Equal(t, 3.14, parts[0].Upper.Value)
}

func TestMinMaxKeywordsNeverInverted(t *testing.T) {
	parts, diags := ParseRangeSpecification("min..max | min | max")
	testutil.Len(t, diags, 0, "diagnostics: %v", diags)
	testutil.Len(t, parts, 3)
	testutil.True(t, parts[1].Lower.IsMin())
	testutil.True(t, parts[1].Upper.IsMin())
	testutil.True(t, parts[2].Upper.IsMax())
}
