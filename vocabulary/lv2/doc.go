// Package lv2 provides the namespaces and compact terms used in LV2 plugin
// manifests.
//
// Terms are written as compact identifiers ("prefix:local") so that the
// Turtle serializer can detect which prefixes a document uses and declare
// only those. The namespace constants back the default prefix registry in
// the parent vocabulary package.
//
// # Vocabularies
//
//   - LV2 core (lv2:): plugin, port classes and port properties
//   - DOAP (doap:): project name, license, developer and maintainer
//   - FOAF (foaf:): person name, homepage and mailbox
//   - RDFS (rdfs:): free text comments
package lv2
