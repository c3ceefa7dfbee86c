package build

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/golangsnmp/goyang/internal/parser"
	"github.com/golangsnmp/goyang/internal/testutil"
	"github.com/golangsnmp/goyang/yang"
)

func parse(t *testing.T, source string) (*Document, *Report) {
	t.Helper()
	stmts, err := parser.Parse("test.yang", source, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rep := &Report{}
	return Build(stmts, rep, nil), rep
}

func mustModule(t *testing.T, source string) (*yang.Module, *Report) {
	t.Helper()
	doc, rep := parse(t, source)
	testutil.NotNil(t, doc.Module, "expected a module")
	return doc.Module, rep
}

func errorMessages(rep *Report) []string {
	var out []string
	for _, d := range rep.Errors {
		out = append(out, d.Message)
	}
	return out
}

func hasMessage(diags []yang.Diagnostic, substr string) bool {
	for _, d := range diags {
		if strings.Contains(d.Message, substr) {
			return true
		}
	}
	return false
}

func TestModuleHeader(t *testing.T) {
	m, rep := mustModule(t, `
		module acme {
		  yang-version 1.1;
		  namespace "urn:acme:system";
		  prefix acme;
		  organization "ACME Inc.";
		  contact "support@acme.example";
		  description "Test module.";
		  revision 2026-01-10 { description "Second."; }
		  revision 2025-06-01;
		}`)
	testutil.Len(t, rep.Errors, 0, "errors: %v", errorMessages(rep))
	testutil.Len(t, rep.Warnings, 0)
	testutil.Equal(t, "acme", m.Name)
	testutil.Equal(t, "1.1", *m.YangVersion)
	testutil.Equal(t, "urn:acme:system", m.Namespace)
	testutil.Equal(t, "acme", m.Prefix)
	testutil.Equal(t, "ACME Inc.", *m.Organization)
	testutil.Len(t, m.Revisions, 2)
	testutil.Equal(t, "2026-01-10", m.LatestRevision())
}

func TestMissingRequiredStatement(t *testing.T) {
	_, rep := mustModule(t, `module m { yang-version 1; prefix m; }`)
	testutil.True(t,
		hasMessage(rep.Errors, "Required statement 'namespace' not found in '/module=m'."),
		"errors: %v", errorMessages(rep))
}

func TestYangVersionDefaultWarns(t *testing.T) {
	m, rep := mustModule(t, `module m { namespace "urn:m"; prefix m; }`)
	testutil.Len(t, rep.Errors, 0, "errors: %v", errorMessages(rep))
	testutil.True(t, hasMessage(rep.Warnings,
		"Required statement 'yang-version' not found in '/module=m'. Assuming the default value '1'."))
	testutil.NotNil(t, m.YangVersion)
	testutil.Equal(t, "1", *m.YangVersion)
}

func TestRepeatedStatement(t *testing.T) {
	_, rep := mustModule(t, `
		module m {
		  yang-version 1; namespace "urn:m"; prefix m;
		  description "one";
		  description "two";
		  description "three";
		}`)
	testutil.True(t,
		hasMessage(rep.Errors, "Statement 'description' repeated 3 times in '/module=m'."),
		"errors: %v", errorMessages(rep))
}

func TestRepeatedOptionalScalarResolvesToAbsent(t *testing.T) {
	m, _ := mustModule(t, `
		module m {
		  yang-version 1; namespace "urn:m"; prefix m;
		  contact "a";
		  contact "b";
		}`)
	testutil.Nil(t, m.Contact)
}

func TestUnknownStatementsPreserved(t *testing.T) {
	m, rep := mustModule(t, `
		module m {
		  yang-version 1; namespace "urn:m"; prefix m;
		  ext:annotation "note" { ext:detail "d"; description "kept verbatim"; }
		  frobnicate now;
		}`)
	testutil.Len(t, rep.Errors, 0, "errors: %v", errorMessages(rep))
	testutil.Len(t, m.Unknown, 2)
	testutil.Equal(t, "ext:annotation", m.Unknown[0].FullKeyword())
	testutil.Equal(t, "frobnicate", m.Unknown[1].Keyword)

	// Round-trip: substatements of an unknown statement survive untouched,
	// even ones that would match a rule table elsewhere.
	want := "ext:annotation \"note\" {\n\text:detail \"d\";\n\tdescription \"kept verbatim\";\n}\n"
	testutil.Equal(t, want, m.Unknown[0].String())
}

func TestTopLevelValidation(t *testing.T) {
	doc, rep := parse(t, `leaf x { type string; }`)
	testutil.Nil(t, doc.Module)
	testutil.Nil(t, doc.Submodule)
	testutil.True(t, hasMessage(rep.Errors, "Expected a 'module' or 'submodule' statement, but found 'leaf'."))

	_, rep = parse(t, "module a { namespace \"urn:a\"; prefix a; }\nmodule b { namespace \"urn:b\"; prefix b; }")
	testutil.True(t, hasMessage(rep.Errors, "found 2 top-level statements"))

	_, rep = parse(t, "")
	testutil.True(t, hasMessage(rep.Errors, "found 0 top-level statements"))
}

func TestLeafMapping(t *testing.T) {
	m, rep := mustModule(t, `
		module m {
		  yang-version 1; namespace "urn:m"; prefix m;
		  leaf host {
		    type string { length "1..64"; }
		    units "chars";
		    default "localhost";
		    config true;
		    mandatory false;
		    status deprecated;
		    must "starts-with(., 'h')" { error-message "bad host"; }
		  }
		}`)
	testutil.Len(t, rep.Errors, 0, "errors: %v", errorMessages(rep))
	testutil.Len(t, m.Body, 1)
	leaf, ok := m.Body[0].(*yang.Leaf)
	testutil.True(t, ok, "body[0] is %T", m.Body[0])
	testutil.Equal(t, "host", leaf.Name)
	testutil.Equal(t, "string", leaf.Type.Name)
	testutil.Equal(t, "chars", *leaf.Units)
	testutil.Equal(t, "localhost", *leaf.Default)
	testutil.True(t, *leaf.Config)
	testutil.False(t, *leaf.Mandatory)
	testutil.Equal(t, yang.StatusDeprecated, *leaf.Status)
	testutil.Len(t, leaf.Musts, 1)
	testutil.Equal(t, "bad host", *leaf.Musts[0].ErrorMessage)

	wantParts := []yang.Part{{Lower: yang.Bound{Value: 1}, Upper: yang.Bound{Value: 64}}}
	if diff := cmp.Diff(wantParts, leaf.Type.Length.Parts); diff != "" {
		t.Errorf("length parts mismatch (-want +got):\n%s", diff)
	}
}

func TestLeafWithoutTypeFails(t *testing.T) {
	_, rep := mustModule(t, `
		module m {
		  yang-version 1; namespace "urn:m"; prefix m;
		  leaf bad { description "no type"; }
		}`)
	testutil.True(t,
		hasMessage(rep.Errors, "Required statement 'type' not found in '/module=m/leaf=bad'."),
		"errors: %v", errorMessages(rep))
}

func TestUnnamedNodeSentinel(t *testing.T) {
	m, rep := mustModule(t, `
		module m {
		  yang-version 1; namespace "urn:m"; prefix m;
		  container { leaf x { type string; } }
		}`)
	testutil.True(t, hasMessage(rep.Errors, "Expected a non-empty string argument for statement 'container'"))
	c, ok := m.Body[0].(*yang.Container)
	testutil.True(t, ok)
	testutil.Equal(t, "<unnamed container>", c.Name)
}

func TestBooleanConversion(t *testing.T) {
	m, rep := mustModule(t, `
		module m {
		  yang-version 1; namespace "urn:m"; prefix m;
		  container a { config TRUE; }
		  container b { config yes; }
		}`)
	a := m.Body[0].(*yang.Container)
	testutil.NotNil(t, a.Config)
	testutil.True(t, *a.Config)
	testutil.True(t, hasMessage(rep.Errors,
		"Expected 'true' or 'false' as argument of statement 'config'"), "errors: %v", errorMessages(rep))
	testutil.True(t, hasMessage(rep.Errors, "but got 'yes'"))
	b := m.Body[1].(*yang.Container)
	testutil.Nil(t, b.Config)
}

func TestStatusConversion(t *testing.T) {
	_, rep := mustModule(t, `
		module m {
		  yang-version 1; namespace "urn:m"; prefix m;
		  container a { status vintage; }
		}`)
	testutil.True(t, hasMessage(rep.Errors,
		"Expected one of 'current', 'deprecated' or 'obsolete' as argument of statement 'status'"))
	testutil.True(t, hasMessage(rep.Errors, "but got 'vintage'"))
}

func TestNumberConversion(t *testing.T) {
	_, rep := mustModule(t, `
		module m {
		  yang-version 1; namespace "urn:m"; prefix m;
		  leaf-list l { type string; min-elements few; }
		}`)
	testutil.True(t, hasMessage(rep.Errors,
		"Expected a number as argument of statement 'min-elements'"))
}

func TestPatternModifier(t *testing.T) {
	m, rep := mustModule(t, `
		module m {
		  yang-version 1; namespace "urn:m"; prefix m;
		  typedef t1 {
		    type string { pattern "[a-z]+" { modifier invert-match; } }
		  }
		  typedef t2 {
		    type string { pattern "x" { modifier backwards; } }
		  }
		}`)
	t1 := m.Body[0].(*yang.Typedef)
	testutil.Len(t, t1.Type.Patterns, 1)
	testutil.Equal(t, yang.ModifierInvertMatch, *t1.Type.Patterns[0].Modifier)
	testutil.True(t, hasMessage(rep.Errors,
		"Expected 'invert-match' as argument of statement 'modifier'"))
	testutil.True(t, hasMessage(rep.Errors, "but got 'backwards'"))
}

func TestEnumAutoIncrement(t *testing.T) {
	m, rep := mustModule(t, `
		module m {
		  yang-version 1; namespace "urn:m"; prefix m;
		  typedef color {
		    type enumeration {
		      enum red;
		      enum green { value 5; }
		      enum blue;
		      enum cyan { value 2; }
		      enum white;
		    }
		  }
		}`)
	testutil.Len(t, rep.Errors, 0, "errors: %v", errorMessages(rep))
	enums := m.Body[0].(*yang.Typedef).Type.Enums
	testutil.Len(t, enums, 5)
	wantValues := []float64{0, 5, 6, 2, 3}
	for i, want := range wantValues {
		testutil.Equal(t, want, enums[i].Value, "enum %s", enums[i].Name)
	}
}

func TestBitAutoIncrement(t *testing.T) {
	m, _ := mustModule(t, `
		module m {
		  yang-version 1; namespace "urn:m"; prefix m;
		  typedef flags {
		    type bits {
		      bit a;
		      bit b { position 8; }
		      bit c;
		    }
		  }
		}`)
	bits := m.Body[0].(*yang.Typedef).Type.Bits
	testutil.Equal(t, float64(0), bits[0].Position)
	testutil.Equal(t, float64(8), bits[1].Position)
	testutil.Equal(t, float64(9), bits[2].Position)
}

func TestUnionTypes(t *testing.T) {
	m, _ := mustModule(t, `
		module m {
		  yang-version 1; namespace "urn:m"; prefix m;
		  typedef u {
		    type union {
		      type int32 { range "0..100"; }
		      type string;
		      type m:custom;
		    }
		  }
		}`)
	u := m.Body[0].(*yang.Typedef).Type
	testutil.Equal(t, "union", u.Name)
	testutil.Len(t, u.UnionTypes, 3)
	testutil.Equal(t, "int32", u.UnionTypes[0].Name)
	testutil.Equal(t, "m:custom", u.UnionTypes[2].Name)
}

func TestChoiceShorthandCases(t *testing.T) {
	m, rep := mustModule(t, `
		module m {
		  yang-version 1; namespace "urn:m"; prefix m;
		  choice transport {
		    default tcp;
		    case tcp { leaf port { type uint16; } }
		    leaf unix-socket { type string; }
		    container tls { leaf cert { type string; } }
		  }
		}`)
	testutil.Len(t, rep.Errors, 0, "errors: %v", errorMessages(rep))
	ch := m.Body[0].(*yang.Choice)
	testutil.Equal(t, "tcp", *ch.Default)
	testutil.Len(t, ch.Cases, 3)
	if _, ok := ch.Cases[0].(*yang.Case); !ok {
		t.Errorf("cases[0] is %T, want *yang.Case", ch.Cases[0])
	}
	if _, ok := ch.Cases[1].(*yang.Leaf); !ok {
		t.Errorf("cases[1] is %T, want *yang.Leaf", ch.Cases[1])
	}
	if _, ok := ch.Cases[2].(*yang.Container); !ok {
		t.Errorf("cases[2] is %T, want *yang.Container", ch.Cases[2])
	}
}

func TestRpcAndInputArgumentWarning(t *testing.T) {
	m, rep := mustModule(t, `
		module m {
		  yang-version 1; namespace "urn:m"; prefix m;
		  rpc restart {
		    input bogus { leaf delay { type uint32; } }
		    output { leaf at { type string; } }
		  }
		}`)
	testutil.Len(t, rep.Errors, 0, "errors: %v", errorMessages(rep))
	testutil.True(t, hasMessage(rep.Warnings, "Statement 'input' in '/module=m/rpc=restart' does not take an argument."))
	rpc := m.Body[0].(*yang.Rpc)
	testutil.NotNil(t, rpc.Input)
	testutil.NotNil(t, rpc.Output)
	testutil.Len(t, rpc.Input.DataDefs, 1)
	testutil.Len(t, rpc.Output.DataDefs, 1)
}

func TestUsesRefineAndAugment(t *testing.T) {
	m, rep := mustModule(t, `
		module m {
		  yang-version 1; namespace "urn:m"; prefix m;
		  grouping endpoint {
		    leaf address { type string; }
		    leaf port { type uint16; }
		  }
		  container server {
		    uses endpoint {
		      refine port { default "8080"; mandatory true; }
		      augment address { }
		    }
		  }
		  augment "/server" {
		    leaf enabled { type boolean; }
		  }
		}`)
	testutil.Len(t, rep.Errors, 0, "errors: %v", errorMessages(rep))
	g := m.Body[0].(*yang.Grouping)
	testutil.Len(t, g.DataDefs, 2)
	server := m.Body[1].(*yang.Container)
	uses := server.DataDefs[0].(*yang.Uses)
	testutil.Equal(t, "endpoint", uses.Grouping)
	testutil.Len(t, uses.Refines, 1)
	testutil.Equal(t, "port", uses.Refines[0].Target)
	testutil.Len(t, uses.Refines[0].Defaults, 1)
	testutil.True(t, *uses.Refines[0].Mandatory)
	testutil.Len(t, uses.Augments, 1)
	aug := m.Body[2].(*yang.Augmentation)
	testutil.Equal(t, "/server", aug.Target)
	testutil.Len(t, aug.DataDefs, 1)
}

func TestListMapping(t *testing.T) {
	m, rep := mustModule(t, `
		module m {
		  yang-version 1; namespace "urn:m"; prefix m;
		  list interface {
		    key name;
		    unique "mtu";
		    min-elements 1;
		    max-elements unbounded;
		    ordered-by user;
		    leaf name { type string; }
		    leaf mtu { type uint16; }
		    action reset { input { leaf force { type boolean; } } }
		    notification flap;
		  }
		}`)
	testutil.Len(t, rep.Errors, 0, "errors: %v", errorMessages(rep))
	l := m.Body[0].(*yang.List)
	testutil.Equal(t, "name", *l.Key)
	testutil.Len(t, l.Uniques, 1)
	testutil.Equal(t, float64(1), *l.MinElements)
	testutil.Equal(t, "unbounded", *l.MaxElements)
	testutil.Equal(t, "user", *l.OrderedBy)
	testutil.Len(t, l.DataDefs, 2)
	testutil.Len(t, l.Actions, 1)
	testutil.Len(t, l.Notifications, 1)
}

func TestIdentityFeatureExtension(t *testing.T) {
	m, rep := mustModule(t, `
		module m {
		  yang-version 1; namespace "urn:m"; prefix m;
		  feature ha { description "High availability."; }
		  identity cipher;
		  identity aes { base cipher; if-feature ha; }
		  extension annotation {
		    argument name { yin-element false; }
		  }
		}`)
	testutil.Len(t, rep.Errors, 0, "errors: %v", errorMessages(rep))
	aes := m.Body[2].(*yang.Identity)
	testutil.Len(t, aes.Bases, 1)
	testutil.Equal(t, "cipher", aes.Bases[0])
	ext := m.Body[3].(*yang.Extension)
	testutil.NotNil(t, ext.Argument)
	testutil.Equal(t, "name", ext.Argument.Name)
	testutil.False(t, *ext.Argument.YinElement)
}

func TestDeviation(t *testing.T) {
	m, rep := mustModule(t, `
		module m {
		  yang-version 1; namespace "urn:m"; prefix m;
		  deviation "/sys/hostname" {
		    deviate replace { type string; default "router"; }
		    deviate not-supported;
		  }
		}`)
	testutil.Len(t, rep.Errors, 0, "errors: %v", errorMessages(rep))
	dev := m.Body[0].(*yang.Deviation)
	testutil.Equal(t, "/sys/hostname", dev.Target)
	testutil.Len(t, dev.Items, 2)
	testutil.Equal(t, "replace", dev.Items[0].Aspect)
	testutil.Equal(t, "string", dev.Items[0].Type.Name)
	testutil.Equal(t, "not-supported", dev.Items[1].Aspect)
}

func TestSubmoduleMapping(t *testing.T) {
	doc, rep := parse(t, `
		submodule m-system {
		  yang-version 1;
		  belongs-to m { prefix m; }
		  container system { leaf hostname { type string; } }
		}`)
	testutil.Len(t, rep.Errors, 0, "errors: %v", errorMessages(rep))
	sm := doc.Submodule
	testutil.NotNil(t, sm)
	testutil.Equal(t, "m-system", sm.Name)
	testutil.Equal(t, "m", sm.BelongsTo)
	testutil.Equal(t, "m", sm.BelongsToPrefix)
	testutil.Len(t, sm.Body, 1)
}

func TestBelongsToKeepsExtensionsNested(t *testing.T) {
	doc, rep := parse(t, `
		submodule s {
		  yang-version 1;
		  belongs-to m {
		    prefix m;
		    ext:owner "netops";
		    ext:note "split out" { ext:since "2026-01-01"; }
		  }
		}`)
	testutil.Len(t, rep.Errors, 0, "errors: %v", errorMessages(rep))
	sm := doc.Submodule
	testutil.Equal(t, "m", sm.BelongsTo)
	testutil.Equal(t, "m", sm.BelongsToPrefix)

	// Substatements the belongs-to rules don't match stay nested under a
	// belongs-to statement so serialization keeps their position.
	testutil.Len(t, sm.Unknown, 1)
	want := "belongs-to \"m\" {\n\text:owner \"netops\";\n\text:note \"split out\" {\n\t\text:since \"2026-01-01\";\n\t}\n}\n"
	testutil.Equal(t, want, sm.Unknown[0].String())
}

func TestSubmoduleRequiresBelongsTo(t *testing.T) {
	_, rep := parse(t, `submodule s { yang-version 1; }`)
	testutil.True(t,
		hasMessage(rep.Errors, "Required statement 'belongs-to' not found in '/submodule=s'."),
		"errors: %v", errorMessages(rep))
}

func TestPathRenderingInNestedErrors(t *testing.T) {
	_, rep := mustModule(t, `
		module m {
		  yang-version 1; namespace "urn:m"; prefix m;
		  container sys {
		    list server {
		      key name;
		      leaf name { type string; }
		      leaf timeout { }
		    }
		  }
		}`)
	testutil.True(t, hasMessage(rep.Errors,
		"Required statement 'type' not found in '/module=m/container=sys/list=server/leaf=timeout'."),
		"errors: %v", errorMessages(rep))
}

func TestDiagnosticPositions(t *testing.T) {
	_, rep := mustModule(t, "module m {\n  namespace \"urn:m\";\n  prefix m;\n  leaf x { }\n}")
	// The missing-type error points at the leaf statement itself.
	found := false
	for _, d := range rep.Errors {
		if strings.Contains(d.Message, "Required statement 'type'") {
			found = true
			testutil.Equal(t, 4, d.Pos.Line)
			testutil.Equal(t, 3, d.Pos.Column)
		}
	}
	testutil.True(t, found, "errors: %v", errorMessages(rep))
}
