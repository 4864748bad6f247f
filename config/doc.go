// Package config loads named rule presets from YAML files for
// tooling. The core library never touches configuration; this is a
// convenience for callers like cmd/phi.
package config
