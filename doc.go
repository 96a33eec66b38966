/*
Package giraffe converts loosely organized CAD geometry into a canonical,
deduplicated, uniquely numbered structural model and exports it as SOFiSTiK
text input.

# Concept

Geometry arrives as a site document: a layer tree mirroring a CAD file, where
each layer carries points or lines plus free-form labels. Giraffe decodes the
labels, merges coincident nodes within tolerance, resolves numbering conflicts
with well-defined precedence rules and renders a deterministic, ordered export.

# Key behaviors

  - Proximity dedup: nodes closer than the tolerance are one structural node;
    matching is first-come in ingestion order.
  - Stable numbering: explicit label numbers win over auto-assigned ones;
    losers are renumbered to the lowest free number in their group, and a
    forced renumbering of an authored number is surfaced as a warning.
  - Deterministic export: the same model renders to byte-identical text.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/giraffe-cad/giraffe"
	)

	func main() {
		m, err := giraffe.Load("site.yaml")
		if err != nil {
			log.Fatal(err)
		}

		for _, w := range m.Warnings() {
			log.Println("warning:", w)
		}

		fmt.Print(giraffe.Export(m))
	}

The giraffe binary under cmd/giraffe wraps the same pipeline in a CLI.
*/
package giraffe
