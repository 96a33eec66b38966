package giraffe

import (
	"io"

	"github.com/giraffe-cad/giraffe/internal/presentation/sofistik"
	"github.com/giraffe-cad/giraffe/internal/source"
	"github.com/giraffe-cad/giraffe/pkg/model"
)

// Version is the released version of giraffe.
const Version = "1.0.0"

// Load reads the site document at path and assembles its structural
// model, using the name and units the document declares.
func Load(path string) (*model.StructuralModel, error) {
	doc, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	return doc.Build("", "")
}

// Read assembles a structural model from a site document on r.
func Read(r io.Reader) (*model.StructuralModel, error) {
	doc, err := source.Read(r)
	if err != nil {
		return nil, err
	}
	return doc.Build("", "")
}

// Export renders the model as SOFiSTiK text input.
func Export(m *model.StructuralModel) string {
	return sofistik.Render(m)
}
