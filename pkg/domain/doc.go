// Package domain defines the structural entity model: nodes, line
// elements, their numbering metadata and the layer provenance they were
// ingested from. Entities are plain values until a registry accepts
// them; from then on the registry owns them and controls their numbers.
package domain
