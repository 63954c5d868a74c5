// Package dcat defines the W3C Data Catalog vocabulary IRIs used in scoring.
package dcat

// Namespace is the base IRI for DCAT.
const Namespace = "http://www.w3.org/ns/dcat#"

// Class IRIs.
const (
	// ClassResource is the generic catalogued resource class; scoring
	// enumerates subjects of this type.
	ClassResource = Namespace + "Resource"

	// ClassDataset is a catalogued dataset; forward chaining closes it to
	// ClassResource.
	ClassDataset = Namespace + "Dataset"

	// ClassCatalog is a container of catalogued resources.
	ClassCatalog = Namespace + "Catalog"

	// ClassDistribution is an accessible form of a dataset.
	ClassDistribution = Namespace + "Distribution"
)

// Property IRIs.
const (
	Theme     = Namespace + "theme"
	MediaType = Namespace + "mediaType"
	Keyword   = Namespace + "keyword"
	HadRole   = Namespace + "hadRole"
)
