// Package generator turns plugin description files into Turtle manifest
// files on disk.
//
// It is the file layer around the pure export pipeline: it expands source
// patterns, loads descriptions, renders them, writes "<name>.ttl" next to
// each source (or into an output directory) and records metrics. Watcher
// regenerates manifests whenever a description changes.
package generator
