// Package w3c defines core W3C vocabulary IRIs (RDF, RDFS, XSD, OWL Time)
// used across the scoring engine.
package w3c

// RDF and RDFS.
const (
	RdfNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RdfsNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	RdfType    = RdfNamespace + "type"
	RdfsLabel  = RdfsNamespace + "label"
	RdfsMember = RdfsNamespace + "member"
)

// XML Schema datatypes.
const (
	XsdNamespace = "http://www.w3.org/2001/XMLSchema#"

	XsdString  = XsdNamespace + "string"
	XsdInteger = XsdNamespace + "integer"
	XsdDecimal = XsdNamespace + "decimal"
	XsdBoolean = XsdNamespace + "boolean"
	XsdAnyURI  = XsdNamespace + "anyURI"
	XsdDate    = XsdNamespace + "date"
)

// OWL Time, for score validity intervals.
const (
	TimeNamespace = "http://www.w3.org/2006/time#"

	TimeProperInterval = TimeNamespace + "ProperInterval"
	TimeInstant        = TimeNamespace + "Instant"
	TimeInXSDDate      = TimeNamespace + "inXSDDate"
	TimeHasBeginning   = TimeNamespace + "hasBeginning"
	TimeHasEnd         = TimeNamespace + "hasEnd"
)
