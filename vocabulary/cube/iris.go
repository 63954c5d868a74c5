// Package cube defines the RDF Data Cube vocabulary IRIs used for score
// observations.
package cube

// Namespace is the base IRI for the qb: vocabulary.
const Namespace = "http://purl.org/linked-data/cube#"

const (
	// ClassObservation is a single measured value.
	ClassObservation = Namespace + "Observation"

	// ClassObservationGroup is a container of observations; score
	// containers are typed with it.
	ClassObservationGroup = Namespace + "ObservationGroup"

	// Observation links an observation group to a member observation.
	Observation = Namespace + "observation"
)
