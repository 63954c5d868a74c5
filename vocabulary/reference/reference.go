// Package reference holds the controlled reference data the rubric
// evaluates against: persistent-identifier patterns, machine-readable
// format tokens, property lists, access-rights point awards and the
// indigeneity role code lists.
package reference

import (
	"github.com/c360studio/semscore/vocabulary/dcat"
	"github.com/c360studio/semscore/vocabulary/dcterms"
	"github.com/c360studio/semscore/vocabulary/prov"
	"github.com/c360studio/semscore/vocabulary/w3c"
)

// PIDIndicators are substrings that mark a resource IRI as a globally
// unique, citable and persistent identifier (DOI, ARK, PURL, Handle, w3id,
// or the organisation's own resolver domain). First match wins.
var PIDIndicators = []string{
	"doi:",
	"doi.org",
	"ark:",
	"purl.org",
	"linked.data.gov.au",
	"handle.net",
	"w3id.org",
}

// MachineReadableFormats maps recognised file-extension tokens to their
// machine-readable MIME types, for interoperability criterion 3.1.
var MachineReadableFormats = map[string]string{
	"json":    "application/json",
	"xml":     "application/xml",
	"csv":     "text/csv",
	"tsv":     "text/tab-separated-values",
	"yaml":    "application/x-yaml",
	"yml":     "application/x-yaml",
	"rdf":     "application/rdf+xml",
	"ttl":     "text/turtle",
	"jsonld":  "application/ld+json",
	"geojson": "application/geo+json",
	"gml":     "application/gml+xml",
	"kml":     "application/vnd.google-earth.kml+xml",
	"xlsx":    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"xls":     "application/vnd.ms-excel",
	"ods":     "application/vnd.oasis.opendocument.spreadsheet",
}

// FormatProperties carry a resource's declared media type or format.
var FormatProperties = []string{
	dcterms.Format,
	dcat.MediaType,
}

// URIExpectedProperties are properties whose objects are expected to be
// IRIs into shared vocabularies, for interoperability criterion 3.2.
var URIExpectedProperties = []string{
	dcterms.Format,
	dcterms.Type,
	dcterms.License,
	dcterms.Publisher,
	dcterms.Creator,
	dcterms.Contributor,
	dcterms.AccessRights,
	prov.Agent,
	prov.HadRole,
	dcat.HadRole,
	dcat.Theme,
	w3c.RdfsMember,
}

// LicenseProperties declare a data usage licence (reusability R1.1).
var LicenseProperties = []string{
	dcterms.License,
}

// RightsProperties declare rights or licence statements (CARE A1.2).
var RightsProperties = []string{
	dcterms.License,
	dcterms.Rights,
	dcterms.AccessRights,
}

// AdditionalProvenanceProperties supplement the PROV ontology when scoring
// provenance (reusability R1.2).
var AdditionalProvenanceProperties = []string{
	dcterms.Source,
}

// SearchableProperties make a resource findable through text search.
var SearchableProperties = []string{
	dcterms.Title,
	dcterms.Description,
	w3c.RdfsLabel,
	dcat.Keyword,
}

// AccessRightsNamespace is the controlled vocabulary of data access rights
// attached via dcat:theme.
const AccessRightsNamespace = "https://linked.data.gov.au/def/data-access-rights/"

// AccessRightsPoints awards accessibility points per declared access-rights
// theme. Undeclared themes score nothing.
var AccessRightsPoints = map[string]int{
	AccessRightsNamespace + "protected":     0,
	AccessRightsNamespace + "restricted":    0,
	AccessRightsNamespace + "metadata-only": 2,
	AccessRightsNamespace + "conditional":   4,
	AccessRightsNamespace + "embargoed":     6,
	AccessRightsNamespace + "open":          10,
}

// Indigeneity role code vocabularies, scanned over prov:qualifiedAttribution
// role assignments.
const (
	OrgIndigeneityNamespace        = "https://data.idnau.org/pid/vocab/org-indigeneity/"
	IndividualIndigeneityNamespace = "https://data.idnau.org/pid/vocab/indigeneity/"
)

// OrgIndigeneityRoles are organisational indigeneity role codes.
var OrgIndigeneityRoles = []string{
	OrgIndigeneityNamespace + "indigenous-owned-and-governed",
	OrgIndigeneityNamespace + "indigenous-owned",
	OrgIndigeneityNamespace + "indigenous-governed",
	OrgIndigeneityNamespace + "indigenous-affiliated",
}

// IndividualIndigeneityRoles are individual indigeneity role codes.
var IndividualIndigeneityRoles = []string{
	IndividualIndigeneityNamespace + "by-indigenous-people",
	IndividualIndigeneityNamespace + "about-indigenous-people",
	IndividualIndigeneityNamespace + "for-indigenous-people",
}
