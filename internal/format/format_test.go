package format

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	IsDirectory bool `json:"isDirectory" yaml:"isDirectory" toml:"isDirectory"`
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "json", want: JSON},
		{in: "", want: JSON},
		{in: "YAML", want: YAML},
		{in: "yml", want: YAML},
		{in: " toml ", want: TOML},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, map[string]bool{"sub/b.bin": true, "a.txt": false}, JSON)
	require.NoError(t, err)

	assert.JSONEq(t, `{"a.txt": false, "sub/b.bin": true}`, buf.String())
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("a.txt")), bytes.Index(buf.Bytes(), []byte("sub/b.bin")))
}

func TestEncodeJSONStruct(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, map[string]entry{"sub": {IsDirectory: true}}, JSON)
	require.NoError(t, err)

	assert.JSONEq(t, `{"sub": {"isDirectory": true}}`, buf.String())
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, map[string]entry{"sub": {IsDirectory: true}}, YAML)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "sub:")
	assert.Contains(t, buf.String(), "isDirectory: true")
}

func TestEncodeTOML(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, map[string]bool{"a.txt": false}, TOML)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "a.txt")
	assert.Contains(t, buf.String(), "= false")
}

func TestEncodeUnknown(t *testing.T) {
	err := Encode(&bytes.Buffer{}, map[string]bool{}, Format("xml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
