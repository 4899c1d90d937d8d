package lv2

// Type is the Turtle shorthand for rdf:type.
const Type = "a"

// LV2 core classes.
const (
	// ClassPlugin is the class of every LV2 plugin.
	ClassPlugin = "lv2:Plugin"

	// ClassAudioPort carries audio samples.
	ClassAudioPort = "lv2:AudioPort"

	// ClassControlPort carries a single float control value.
	ClassControlPort = "lv2:ControlPort"

	// ClassCVPort carries control voltage signals at audio rate.
	ClassCVPort = "lv2:CVPort"

	// ClassInputPort marks a port read by the plugin.
	ClassInputPort = "lv2:InputPort"

	// ClassOutputPort marks a port written by the plugin.
	ClassOutputPort = "lv2:OutputPort"
)

// LV2 core predicates.
const (
	Binary  = "lv2:binary"
	Port    = "lv2:port"
	Index   = "lv2:index"
	Symbol  = "lv2:symbol"
	Name    = "lv2:name"
	Default = "lv2:default"
	Minimum = "lv2:minimum"
	Maximum = "lv2:maximum"
)

// DOAP predicates.
const (
	DOAPName       = "doap:name"
	DOAPLicense    = "doap:license"
	DOAPDeveloper  = "doap:developer"
	DOAPMaintainer = "doap:maintainer"
)

// FOAF predicates.
const (
	FOAFName     = "foaf:name"
	FOAFHomepage = "foaf:homepage"
	FOAFMbox     = "foaf:mbox"
)

// RDFSComment attaches a human readable description.
const RDFSComment = "rdfs:comment"
