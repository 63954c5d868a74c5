// Package scores defines the Scores ontology IRIs used to express FAIR and
// CARE quality measurements as statistical-cube observations.
package scores

// Namespace is the base IRI for the Scores ontology.
const Namespace = "https://linked.data.gov.au/def/scores/"

// Class IRIs for score containers.
const (
	// ClassScore is the generic score container class.
	ClassScore = Namespace + "Score"

	// ClassCareScore is a CARE score container.
	ClassCareScore = Namespace + "CareScore"

	// ClassFairScore is a FAIR score container.
	ClassFairScore = Namespace + "FairScore"

	// ClassCareScoreNormalised is a CARE score rescaled to [0,1].
	ClassCareScoreNormalised = Namespace + "CareScoreNormalised"

	// ClassFairScoreNormalised is a FAIR score rescaled to [0,1].
	ClassFairScoreNormalised = Namespace + "FairScoreNormalised"

	// ClassLcLabelsScore is a Local Contexts Labels score container.
	ClassLcLabelsScore = Namespace + "LcLabelsScore"

	// ClassScoreForTime is a score bound to a validity interval.
	ClassScoreForTime = Namespace + "ScoreForTime"
)

// Object property IRIs.
const (
	// HasScore links a scored resource to one of its score containers.
	HasScore = Namespace + "hasScore"

	// HasScoreForTime links a resource to a time-bound score.
	HasScoreForTime = Namespace + "hasScoreForTime"

	// RefResource back-references the scored resource from a container.
	RefResource = Namespace + "refResource"

	// RefTime references the validity interval of a score.
	RefTime = Namespace + "refTime"
)

// ScoreValue is the generic measured-value property.
const ScoreValue = Namespace + "scoreValue"

// FAIR measure properties, one per dimension, raw and normalised.
const (
	FairScoreValue = Namespace + "fairScoreValue"

	FairFScore = Namespace + "fairFScore"
	FairAScore = Namespace + "fairAScore"
	FairIScore = Namespace + "fairIScore"
	FairRScore = Namespace + "fairRScore"

	FairFScoreNormalised = Namespace + "fairFScoreNormalised"
	FairAScoreNormalised = Namespace + "fairAScoreNormalised"
	FairIScoreNormalised = Namespace + "fairIScoreNormalised"
	FairRScoreNormalised = Namespace + "fairRScoreNormalised"
)

// CARE measure properties, one per dimension, raw and normalised.
const (
	CareScoreValue = Namespace + "careScoreValue"

	CareCScore = Namespace + "careCScore"
	CareAScore = Namespace + "careAScore"
	CareRScore = Namespace + "careRScore"
	CareEScore = Namespace + "careEScore"

	CareCScoreNormalised = Namespace + "careCScoreNormalised"
	CareAScoreNormalised = Namespace + "careAScoreNormalised"
	CareRScoreNormalised = Namespace + "careRScoreNormalised"
	CareEScoreNormalised = Namespace + "careEScoreNormalised"
)
