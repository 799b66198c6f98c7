// BMDL (block model) binary format.
package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/blockmodels/pkg/math"
	"github.com/Faultbox/blockmodels/pkg/mesh"
)

// BMDL format errors.
var (
	ErrInvalidModelMagic       = errors.New("invalid model magic: expected 'BMDL'")
	ErrUnsupportedModelVersion = errors.New("unsupported model version")
	ErrTruncatedModel          = errors.New("truncated model data")
	ErrStringTooLong           = errors.New("string too long for model file")
)

const bmdlMagic = "BMDL"

// BMDLVersion is the version written by Binary.
var BMDLVersion = ModelVersion{Major: 1, Minor: 0}

// ModelVersion represents the BMDL file version.
type ModelVersion struct {
	Major uint8
	Minor uint8
}

// String returns the version as "Major.Minor".
func (v ModelVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// AtLeast returns true if version is >= major.minor.
func (v ModelVersion) AtLeast(major, minor uint8) bool {
	if v.Major > major {
		return true
	}
	return v.Major == major && v.Minor >= minor
}

// Mesh flag bits.
const (
	flagHelmet uint8 = 1 << iota
	flagAllowTransparency
	flagFollowCursor
)

// bmdlMesh is the fixed-size part of a mesh record. It follows the mesh
// name and precedes the faces.
type bmdlMesh struct {
	Translate    math.Vec3
	Rotate       math.Vec3
	Pivot        math.Vec3
	Part         mesh.PartFlag
	Flags        uint8
	Mode         mesh.DrawMode
	_            uint8
	RotateFactor float32
	FaceCount    uint32
}

// bmdlFace is one face record.
type bmdlFace struct {
	Positions [4]math.Vec3
	TexCoords [4]math.Vec2
	Colors    [4]mesh.Color
	Indices   [4]uint8
	Downface  uint8
}

var bmdlFaceSize = binary.Size(bmdlFace{})

// Binary is the BMDL codec.
//
// Layout, little endian:
//
//	"BMDL" major:u8 minor:u8 name:str meshCount:u32
//	per mesh: name:str header faces...
//
// Strings are a u16 byte length followed by the bytes.
type Binary struct{}

// Name returns "binary".
func (Binary) Name() string { return "binary" }

// Ext returns ".bmdl".
func (Binary) Ext() string { return ".bmdl" }

// Encode writes m in the current BMDL version.
func (Binary) Encode(m *mesh.Model) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(bmdlMagic)
	buf.WriteByte(BMDLVersion.Major)
	buf.WriteByte(BMDLVersion.Minor)

	if err := writeString(&buf, m.Name); err != nil {
		return nil, err
	}
	binary.Write(&buf, binary.LittleEndian, uint32(len(m.Meshes)))

	for i := range m.Meshes {
		ms := &m.Meshes[i]
		if err := writeString(&buf, ms.Name); err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
		hdr := bmdlMesh{
			Translate:    ms.Translate,
			Rotate:       ms.Rotate,
			Pivot:        ms.Pivot,
			Part:         ms.Part,
			Mode:         ms.Mode,
			RotateFactor: ms.RotateFactor,
			FaceCount:    uint32(len(ms.Faces)),
		}
		if ms.Helmet {
			hdr.Flags |= flagHelmet
		}
		if ms.AllowTransparency {
			hdr.Flags |= flagAllowTransparency
		}
		if ms.FollowCursor {
			hdr.Flags |= flagFollowCursor
		}
		binary.Write(&buf, binary.LittleEndian, &hdr)

		faces := make([]bmdlFace, len(ms.Faces))
		for j, f := range ms.Faces {
			faces[j] = bmdlFace{
				Positions: f.Positions,
				TexCoords: f.TexCoords,
				Colors:    f.Colors,
				Indices:   f.Indices,
			}
			if f.Downface {
				faces[j].Downface = 1
			}
		}
		binary.Write(&buf, binary.LittleEndian, faces)
	}
	return buf.Bytes(), nil
}

// Decode parses BMDL data and validates the result.
func (Binary) Decode(data []byte) (*mesh.Model, error) {
	return validated(ParseModel(data))
}

// ParseModel parses BMDL data without validating the model.
func ParseModel(data []byte) (*mesh.Model, error) {
	if len(data) < len(bmdlMagic)+2 {
		return nil, ErrTruncatedModel
	}
	if string(data[:4]) != bmdlMagic {
		return nil, ErrInvalidModelMagic
	}
	version := ModelVersion{Major: data[4], Minor: data[5]}
	if version.Major != BMDLVersion.Major {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedModelVersion, version)
	}

	r := bytes.NewReader(data[6:])
	name, err := readBMDLString(r)
	if err != nil {
		return nil, err
	}
	var meshCount uint32
	if err := read(r, &meshCount); err != nil {
		return nil, err
	}
	// Every mesh needs at least its name length and header.
	if int64(meshCount) > int64(r.Len()) {
		return nil, fmt.Errorf("%w: %d meshes", ErrTruncatedModel, meshCount)
	}

	m := &mesh.Model{Name: name, Meshes: make([]mesh.Mesh, meshCount)}
	for i := range m.Meshes {
		if err := parseBMDLMesh(r, &m.Meshes[i]); err != nil {
			return nil, fmt.Errorf("parsing mesh %d: %w", i, err)
		}
	}
	return m, nil
}

func parseBMDLMesh(r *bytes.Reader, ms *mesh.Mesh) error {
	name, err := readBMDLString(r)
	if err != nil {
		return err
	}
	var hdr bmdlMesh
	if err := read(r, &hdr); err != nil {
		return err
	}
	if int64(hdr.FaceCount)*int64(bmdlFaceSize) > int64(r.Len()) {
		return fmt.Errorf("%w: %d faces", ErrTruncatedModel, hdr.FaceCount)
	}

	faces := make([]bmdlFace, hdr.FaceCount)
	if err := read(r, faces); err != nil {
		return err
	}

	*ms = mesh.Mesh{
		Name:              name,
		Translate:         hdr.Translate,
		Rotate:            hdr.Rotate,
		Pivot:             hdr.Pivot,
		Part:              hdr.Part,
		Helmet:            hdr.Flags&flagHelmet != 0,
		AllowTransparency: hdr.Flags&flagAllowTransparency != 0,
		FollowCursor:      hdr.Flags&flagFollowCursor != 0,
		RotateFactor:      hdr.RotateFactor,
		Mode:              hdr.Mode,
		Faces:             make([]mesh.Face, len(faces)),
	}
	for j, f := range faces {
		ms.Faces[j] = mesh.Face{
			Positions: f.Positions,
			TexCoords: f.TexCoords,
			Colors:    f.Colors,
			Indices:   f.Indices,
			Downface:  f.Downface != 0,
		}
	}
	return nil
}

// ParseModelFile parses a BMDL file from disk.
func ParseModelFile(path string) (*mesh.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}
	return Binary{}.Decode(data)
}

func read(r io.Reader, v any) error {
	if err := binary.Read(r, binary.LittleEndian, v); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncatedModel
		}
		return err
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	if len(s) > 0xFFFF {
		return fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(s))
	}
	binary.Write(buf, binary.LittleEndian, uint16(len(s)))
	buf.WriteString(s)
	return nil
}

func readBMDLString(r *bytes.Reader) (string, error) {
	var n uint16
	if err := read(r, &n); err != nil {
		return "", err
	}
	if int(n) > r.Len() {
		return "", ErrTruncatedModel
	}
	b := make([]byte, n)
	r.Read(b)
	return string(b), nil
}
