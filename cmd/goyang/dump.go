package main

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/golangsnmp/goyang"
)

// dump writes one parsed unit in the selected format. Exactly one of m and
// sm is non-nil.
func (c *cli) dump(out io.Writer, m *goyang.Module, sm *goyang.Submodule) error {
	var v any = m
	if m == nil {
		v = sm
	}
	switch c.format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(v)
	default:
		if m != nil {
			writeModuleTree(out, m)
		} else {
			writeSubmoduleTree(out, sm)
		}
		return nil
	}
}
