// Package format encodes listings for the CLI.
//
// Supported formats:
//   - json: sonic, std-compatible config (sorted keys, HTML escaping)
//   - yaml: goccy/go-yaml
//   - toml: pelletier/go-toml
//
// Example Usage:
//
//	f, err := format.ParseFormat("yaml")
//	err = format.Encode(os.Stdout, listing, f)
package format
