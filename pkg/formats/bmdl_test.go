package formats

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func makeBMDLHeader(magic string, major, minor uint8) []byte {
	data := []byte(magic)
	data = append(data, major, minor)
	data = binary.LittleEndian.AppendUint16(data, 1)
	data = append(data, 'X')
	data = binary.LittleEndian.AppendUint32(data, 0)
	return data
}

func TestParseModel_MagicValidation(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"valid magic", makeBMDLHeader("BMDL", 1, 0), nil},
		{"invalid magic", makeBMDLHeader("GRSM", 1, 0), ErrInvalidModelMagic},
		{"empty data", []byte{}, ErrTruncatedModel},
		{"truncated data", []byte{'B', 'M', 'D'}, ErrTruncatedModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseModel(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseModel_VersionSupport(t *testing.T) {
	tests := []struct {
		name    string
		major   uint8
		minor   uint8
		wantErr bool
	}{
		{"v1.0", 1, 0, false},
		{"v1.3 newer minor", 1, 3, false},
		{"v0.9 unsupported", 0, 9, true},
		{"v2.0 unsupported", 2, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseModel(makeBMDLHeader("BMDL", tt.major, tt.minor))
			if (err != nil) != tt.wantErr {
				t.Errorf("version %d.%d: got error=%v, wantErr=%v", tt.major, tt.minor, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUnsupportedModelVersion) {
				t.Errorf("expected ErrUnsupportedModelVersion, got %v", err)
			}
		})
	}
}

func TestModelVersion(t *testing.T) {
	v := ModelVersion{Major: 1, Minor: 2}
	if v.String() != "1.2" {
		t.Errorf("String() = %q, want 1.2", v.String())
	}
	tests := []struct {
		major, minor uint8
		want         bool
	}{
		{1, 0, true},
		{1, 2, true},
		{1, 3, false},
		{0, 9, true},
		{2, 0, false},
	}
	for _, tt := range tests {
		if got := v.AtLeast(tt.major, tt.minor); got != tt.want {
			t.Errorf("AtLeast(%d, %d) = %v, want %v", tt.major, tt.minor, got, tt.want)
		}
	}
}

func TestParseModel_Truncation(t *testing.T) {
	data, err := Binary{}.Encode(testModel())
	if err != nil {
		t.Fatal(err)
	}

	// Every strict prefix past the version bytes must fail cleanly.
	for n := 6; n < len(data); n++ {
		if _, err := ParseModel(data[:n]); !errors.Is(err, ErrTruncatedModel) {
			t.Fatalf("prefix of %d/%d bytes: got %v, want ErrTruncatedModel", n, len(data), err)
		}
	}
}

func TestParseModel_HugeCounts(t *testing.T) {
	data := []byte("BMDL")
	data = append(data, 1, 0)
	data = binary.LittleEndian.AppendUint16(data, 0)
	data = binary.LittleEndian.AppendUint32(data, 0xFFFFFFFF)

	if _, err := ParseModel(data); !errors.Is(err, ErrTruncatedModel) {
		t.Errorf("expected ErrTruncatedModel, got %v", err)
	}
}

func TestBinary_DecodeValidates(t *testing.T) {
	// A well-formed file whose model has no name.
	data := makeBMDLHeader("BMDL", 1, 0)
	data[6] = 0
	data = append(data[:8], data[9:]...)

	if _, err := ParseModel(data); err != nil {
		t.Fatalf("ParseModel: %v", err)
	}
	if _, err := (Binary{}).Decode(data); err == nil {
		t.Error("expected validation error")
	}
}

func TestParseModelFile(t *testing.T) {
	data, err := Binary{}.Encode(testModel())
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "test.bmdl")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	m, err := ParseModelFile(path)
	if err != nil {
		t.Fatalf("ParseModelFile: %v", err)
	}
	if m.Name != "Test Model" || len(m.Meshes) != 3 {
		t.Errorf("got %q with %d meshes", m.Name, len(m.Meshes))
	}
	if !m.Meshes[0].Faces[1].Downface || !m.Meshes[0].FollowCursor {
		t.Error("flags lost in round trip")
	}

	if _, err := ParseModelFile(filepath.Join(t.TempDir(), "missing.bmdl")); err == nil {
		t.Error("expected error for missing file")
	}
}
