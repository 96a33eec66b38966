package model

import v3 "github.com/deadsy/sdfx/vec/v3"

// Object is one raw geometry record from the provider: either a point
// or a curve with two endpoints, optionally carrying a label. Records
// of the wrong shape for their layer are skipped during ingestion, the
// way a point sitting on a beams layer is not an error.
type Object struct {
	Label string
	Point *v3.Vec
	Start *v3.Vec
	End   *v3.Vec
}

// IsPoint reports whether the record carries point geometry.
func (o Object) IsPoint() bool { return o.Point != nil }

// IsCurve reports whether the record carries any curve geometry.
func (o Object) IsCurve() bool { return o.Start != nil || o.End != nil }
