package lv2

// Namespace IRIs for the vocabularies used in plugin manifests.
const (
	// Namespace is the LV2 core namespace.
	Namespace = "http://lv2plug.in/ns/lv2core#"

	// DOAPNamespace is the Description of a Project namespace.
	DOAPNamespace = "http://usefulinc.com/ns/doap#"

	// FOAFNamespace is the Friend of a Friend namespace.
	FOAFNamespace = "http://xmlns.com/foaf/0.1/"

	// RDFSNamespace is the RDF Schema namespace.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// RDFNamespace is the RDF syntax namespace.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// XSDNamespace is the XML Schema datatypes namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

	// UnitsNamespace is the LV2 units extension namespace.
	UnitsNamespace = "http://lv2plug.in/ns/extensions/units#"

	// AtomNamespace is the LV2 atom extension namespace.
	AtomNamespace = "http://lv2plug.in/ns/ext/atom#"

	// PortPropsNamespace is the LV2 port properties extension namespace.
	PortPropsNamespace = "http://lv2plug.in/ns/ext/port-props#"
)

// Prefixes maps the conventional prefix of each vocabulary to its namespace.
var Prefixes = map[string]string{
	"lv2":    Namespace,
	"doap":   DOAPNamespace,
	"foaf":   FOAFNamespace,
	"rdfs":   RDFSNamespace,
	"rdf":    RDFNamespace,
	"xsd":    XSDNamespace,
	"units":  UnitsNamespace,
	"atom":   AtomNamespace,
	"pprops": PortPropsNamespace,
}
