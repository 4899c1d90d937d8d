// Package plugin loads LV2 plugin descriptions and turns them into the
// metadata tree of the plugin's manifest.
//
// A description is a small declarative file, YAML or TOML, naming the plugin,
// its URI, author, license and ports:
//
//	name: Diff
//	uri: http://github.com/danilobellini/lz2lv2/diff
//	author: Danilo de Jesus da Silva Bellini
//	author_homepage: http://github.com/danilobellini
//	author_email: danilo.bellini@gmail.com
//	license: GPLv3
//	comment: Simple diff FIR linear filter LV2 plugin.
//
// When no ports are listed the plugin gets one audio input "In" and one
// audio output "Out". The binary defaults to the description file name with
// a ".so" extension.
package plugin
