// Package formats encodes compiled models to bytes and back.
//
// Three codecs are provided: a compact little-endian binary format
// (BMDL), and YAML and TOML documents for hand inspection. All decoders
// validate the model before returning it.
package formats

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/blockmodels/pkg/mesh"
)

// ErrUnknownFormat is returned when no codec matches a name or extension.
var ErrUnknownFormat = errors.New("unknown model format")

// Codec converts models to and from one file format.
type Codec interface {
	// Name is the short format name used on the command line.
	Name() string
	// Ext is the file extension, with the leading dot.
	Ext() string
	Encode(m *mesh.Model) ([]byte, error)
	Decode(data []byte) (*mesh.Model, error)
}

var codecs = []Codec{
	Binary{},
	YAML{},
	TOML{},
}

// Codecs returns every available codec.
func Codecs() []Codec {
	out := make([]Codec, len(codecs))
	copy(out, codecs)
	return out
}

// CodecByName returns the codec with the given name, case-insensitively.
func CodecByName(name string) (Codec, error) {
	for _, c := range codecs {
		if strings.EqualFold(c.Name(), name) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// CodecFor returns the codec for a file extension, with or without the
// leading dot. ".yml" is accepted for YAML.
func CodecFor(ext string) (Codec, error) {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if ext == ".yml" {
		return YAML{}, nil
	}
	for _, c := range codecs {
		if c.Ext() == ext {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
}

func validated(m *mesh.Model, err error) (*mesh.Model, error) {
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
