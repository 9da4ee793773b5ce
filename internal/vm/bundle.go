package vm

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Bundle is the on-disk artifact produced by `lina build`: the compiled
// chunk plus provenance metadata.
type Bundle struct {
	// Chunk is the compiled bytecode and constant pool
	Chunk *Chunk

	// SourceFile is the original source file path (for error messages)
	SourceFile string

	// BuildID uniquely identifies one build of one source file
	BuildID string

	// CreatedAt is the build timestamp
	CreatedAt time.Time
}

// bundleMagic identifies a serialized Lina bundle.
var bundleMagic = [4]byte{'L', 'N', 'A', 'B'}

const bundleVersionV1 byte = 0x01

// NewBundle wraps a compiled chunk with fresh build metadata.
func NewBundle(chunk *Chunk, sourceFile string) *Bundle {
	return &Bundle{
		Chunk:      chunk,
		SourceFile: sourceFile,
		BuildID:    uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
	}
}

// Serialize converts a Bundle to its binary format.
// Format:
// - Magic number (4 bytes): "LNAB"
// - Version (1 byte): 0x01
// - Gob-encoded Bundle data
func (b *Bundle) Serialize() ([]byte, error) {
	buf := new(bytes.Buffer)

	buf.Write(bundleMagic[:])
	buf.WriteByte(bundleVersionV1)

	enc := gob.NewEncoder(buf)
	if err := enc.Encode(b); err != nil {
		return nil, fmt.Errorf("bundle gob encoding failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Deserialize reads bundle data back, validating magic and version.
func Deserialize(data []byte) (*Bundle, error) {
	if len(data) < 5 {
		return nil, fmt.Errorf("bundle data too short")
	}

	if !bytes.Equal(data[:4], bundleMagic[:]) {
		return nil, fmt.Errorf("invalid magic number, expected LNAB")
	}

	version := data[4]
	if version != bundleVersionV1 {
		return nil, fmt.Errorf("unsupported bundle version: %d", version)
	}

	dec := gob.NewDecoder(bytes.NewReader(data[5:]))
	var bundle Bundle
	if err := dec.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("bundle gob decoding failed: %w", err)
	}
	if err := bundle.Validate(); err != nil {
		return nil, fmt.Errorf("bundle validation failed: %w", err)
	}
	return &bundle, nil
}

// Validate checks the structural integrity of a deserialized bundle.
func (b *Bundle) Validate() error {
	if b.Chunk == nil {
		return fmt.Errorf("bundle has nil chunk")
	}
	if len(b.Chunk.Code) == 0 {
		return fmt.Errorf("bundle has empty bytecode")
	}
	if Opcode(b.Chunk.Code[len(b.Chunk.Code)-1]) != OpHalt {
		return fmt.Errorf("bundle bytecode is not halt-terminated")
	}
	return nil
}

// RunBundle executes a bundle on a fresh VM.
func RunBundle(bundle *Bundle) error {
	machine := New()
	return machine.Run(bundle.Chunk)
}
