// Package label decodes the naming convention used on CAD objects and
// layers. A label carries up to three parts: an explicit number, a
// display name and a bracketed property specification, in that order.
//
//	"12 main girder [ncs 2]"  ->  {No: 12, Name: "main girder", Prop: "ncs 2"}
//	"supports"                ->  {No: Unassigned, Name: "supports", Prop: ""}
//
// Decoding never fails; missing parts yield their zero values and an
// absent number yields Unassigned.
package label

import (
	"strconv"
	"strings"
)

// Unassigned is the number reported when a label does not specify one.
const Unassigned = -1

// Input is the decoded form of an object or layer label.
type Input struct {
	No   int
	Name string
	Prop string
}

// Parse decodes a raw label string. Unparseable parts degrade to their
// defaults rather than producing an error.
func Parse(s string) Input {
	in := Input{No: Unassigned}

	s = strings.TrimSpace(s)

	// A properly closed bracket pair marks the property specification.
	// An unclosed bracket stays part of the name.
	if i := strings.Index(s, "["); i >= 0 {
		if j := strings.LastIndex(s, "]"); j > i {
			in.Prop = strings.TrimSpace(s[i+1 : j])
			s = strings.TrimSpace(strings.TrimSpace(s[:i]) + " " + strings.TrimSpace(s[j+1:]))
		}
	}

	fields := strings.Fields(s)
	if len(fields) > 0 {
		if n, err := strconv.Atoi(fields[0]); err == nil && n >= 0 {
			in.No = n
			fields = fields[1:]
		}
	}
	in.Name = strings.Join(fields, " ")

	return in
}

// HasNumber reports whether the label carried an explicit number.
func (in Input) HasNumber() bool {
	return in.No != Unassigned
}
