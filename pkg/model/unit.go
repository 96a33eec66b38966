package model

import "errors"

// ErrUnknownUnit is returned when a document names a length unit the
// exporter has no conversion factor for.
var ErrUnknownUnit = errors.New("unknown unit system")

// Unit is the length unit of the source document.
type Unit string

const (
	UnitMillimeter Unit = "mm"
	UnitCentimeter Unit = "cm"
	UnitMeter      Unit = "m"
	UnitInch       Unit = "in"
	UnitFoot       Unit = "ft"
)

// ConversionFactor maps the unit to the scalar that converts document
// lengths to the export target's meters.
func (u Unit) ConversionFactor() (float64, bool) {
	switch u {
	case UnitMillimeter:
		return 0.001, true
	case UnitCentimeter:
		return 0.01, true
	case UnitMeter:
		return 1.0, true
	case UnitInch:
		return 0.0254, true
	case UnitFoot:
		return 0.3048, true
	default:
		return 0, false
	}
}
