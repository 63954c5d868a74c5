// Package dcterms defines the Dublin Core terms IRIs used in scoring.
package dcterms

// Namespace is the base IRI for Dublin Core terms.
const Namespace = "http://purl.org/dc/terms/"

const (
	Title        = Namespace + "title"
	Description  = Namespace + "description"
	Identifier   = Namespace + "identifier"
	Created      = Namespace + "created"
	Modified     = Namespace + "modified"
	Type         = Namespace + "type"
	Format       = Namespace + "format"
	License      = Namespace + "license"
	Rights       = Namespace + "rights"
	AccessRights = Namespace + "accessRights"
	Publisher    = Namespace + "publisher"
	Creator      = Namespace + "creator"
	Contributor  = Namespace + "contributor"
	Source       = Namespace + "source"
	IsPartOf     = Namespace + "isPartOf"
	HasPart      = Namespace + "hasPart"
)
