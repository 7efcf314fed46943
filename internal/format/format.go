package format

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Format names an output encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// ErrUnknownFormat is returned for formats other than json, yaml and toml.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat accepts a format name case-insensitively. "yml" is YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Encode writes v to w in the given format.
// Map keys come out sorted in every format so output is stable across runs.
func Encode(w io.Writer, v any, f Format) error {
	var (
		data []byte
		err  error
	)

	switch f {
	case JSON:
		data, err = sonic.ConfigStd.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case YAML:
		data, err = yaml.Marshal(v)
	case TOML:
		data, err = toml.Marshal(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}

	_, err = w.Write(data)
	return err
}
