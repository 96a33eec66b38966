package source

import "github.com/giraffe-cad/giraffe/pkg/model"

// Build assembles the document into a structural model, feeding layers
// in document order. Non-empty name and unit arguments override what
// the document declares.
func (d *Document) Build(name string, unit model.Unit) (*model.StructuralModel, error) {
	if name == "" {
		name = d.Name
	}
	if unit == "" {
		unit = d.Unit
	}

	m, err := model.New(name, unit)
	if err != nil {
		return nil, err
	}

	for _, lg := range d.Layers {
		if err := m.AddLayer(lg.Layer, lg.Objects); err != nil {
			return nil, err
		}
	}
	return m, nil
}
