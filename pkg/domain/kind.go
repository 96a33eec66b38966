package domain

// Kind enumerates the structural entity types the model understands.
type Kind int

const (
	KindNode Kind = iota
	KindBeam
	KindTruss
	KindCable
	KindSpring
	KindQuad
)

// Token returns the SOFiSTiK record keyword for the kind.
func (k Kind) Token() string {
	switch k {
	case KindNode:
		return "node"
	case KindBeam:
		return "beam"
	case KindTruss:
		return "trus"
	case KindCable:
		return "cabl"
	case KindSpring:
		return "spri"
	case KindQuad:
		return "quad"
	default:
		return "unknown"
	}
}

// Plural returns the layer-path spelling of the kind.
func (k Kind) Plural() string {
	switch k {
	case KindNode:
		return "nodes"
	case KindBeam:
		return "beams"
	case KindTruss:
		return "trusses"
	case KindCable:
		return "cables"
	case KindSpring:
		return "springs"
	case KindQuad:
		return "quads"
	default:
		return "unknown"
	}
}

// KindFromPlural resolves a layer-path spelling to its kind.
func KindFromPlural(s string) (Kind, bool) {
	switch s {
	case "nodes":
		return KindNode, true
	case "beams":
		return KindBeam, true
	case "trusses":
		return KindTruss, true
	case "cables":
		return KindCable, true
	case "springs":
		return KindSpring, true
	case "quads":
		return KindQuad, true
	default:
		return 0, false
	}
}

// IsLineElement reports whether entities of this kind reference two nodes.
// Springs and quads are named in the layer grammar but are not model input.
func (k Kind) IsLineElement() bool {
	return k == KindBeam || k == KindTruss || k == KindCable
}

func (k Kind) String() string {
	return k.Token()
}
