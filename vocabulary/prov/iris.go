// Package prov defines the W3C provenance ontology IRIs used in scoring.
package prov

// Namespace is the base IRI for PROV-O.
const Namespace = "http://www.w3.org/ns/prov#"

const (
	ClassAttribution = Namespace + "Attribution"

	QualifiedAttribution = Namespace + "qualifiedAttribution"
	Agent                = Namespace + "agent"
	HadRole              = Namespace + "hadRole"
	WasDerivedFrom       = Namespace + "wasDerivedFrom"
	WasAttributedTo      = Namespace + "wasAttributedTo"
	WasGeneratedBy       = Namespace + "wasGeneratedBy"
)
