package vm

import "encoding/binary"

// OperandWidth is the fixed encoding width of every operand: constant
// addresses, slot indices and jump distances are all 4 bytes,
// big-endian. Jump distances are signed (two's complement).
const OperandWidth = 4

// Chunk is the compiler's output: a flat instruction stream plus the
// constant pool it addresses.
type Chunk struct {
	// Code is the bytecode instructions
	Code []byte

	// Constants pool, addressed by insertion index, deduplicated
	Constants []Value

	// Lines maps bytecode offset to source line number (for errors)
	Lines []int
}

// NewChunk creates a new empty chunk.
func NewChunk() *Chunk {
	return &Chunk{
		Code:      make([]byte, 0, 256),
		Constants: make([]Value, 0, 64),
		Lines:     make([]int, 0, 256),
	}
}

// Write adds a byte to the chunk with line info.
func (c *Chunk) Write(b byte, line int) {
	c.Code = append(c.Code, b)
	c.Lines = append(c.Lines, line)
}

// WriteOp writes an opcode to the chunk.
func (c *Chunk) WriteOp(op Opcode, line int) {
	c.Write(byte(op), line)
}

// WriteOperand writes a 4-byte big-endian operand.
func (c *Chunk) WriteOperand(v uint32, line int) {
	var buf [OperandWidth]byte
	binary.BigEndian.PutUint32(buf[:], v)
	for _, b := range buf {
		c.Write(b, line)
	}
}

// AddConstant interns a value: an entry equal to v (by Value.Equals)
// keeps its existing address, otherwise v is appended. Addresses never
// renumber.
func (c *Chunk) AddConstant(v Value) int {
	for i, existing := range c.Constants {
		if existing.Equals(v) {
			return i
		}
	}
	c.Constants = append(c.Constants, v)
	return len(c.Constants) - 1
}

// ReadOperand reads a 4-byte unsigned operand at offset.
func (c *Chunk) ReadOperand(offset int) uint32 {
	return binary.BigEndian.Uint32(c.Code[offset : offset+OperandWidth])
}

// ReadOffset reads a 4-byte signed jump distance at offset.
func (c *Chunk) ReadOffset(offset int) int32 {
	return int32(binary.BigEndian.Uint32(c.Code[offset : offset+OperandWidth]))
}

// PatchOperand overwrites the 4 bytes at offset in place.
func (c *Chunk) PatchOperand(offset int, v uint32) {
	binary.BigEndian.PutUint32(c.Code[offset:offset+OperandWidth], v)
}

// Len returns the number of bytes in the chunk. During emission this
// doubles as the program counter.
func (c *Chunk) Len() int {
	return len(c.Code)
}
