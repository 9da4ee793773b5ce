package vm

// beginScope pushes an empty frame for one block's bindings.
func (c *Compiler) beginScope() {
	c.scopes = append(c.scopes, make(map[string]int))
}

// endScope pops the top frame and releases its slots: the counter drops
// by exactly the frame's binding count, back to its pre-open value.
// Closing with no frame open is a translator defect, not user input.
func (c *Compiler) endScope() {
	if len(c.scopes) == 0 {
		panic("compiler: scope underflow: endScope without a matching beginScope")
	}
	frame := c.scopes[len(c.scopes)-1]
	c.scopes = c.scopes[:len(c.scopes)-1]
	c.slotCount -= len(frame)
}

// bindLocal allocates the next slot for name in the top frame. It
// always allocates: rebinding a name already present in the frame
// leaves the previous slot permanently unreachable.
func (c *Compiler) bindLocal(name string) int {
	if len(c.scopes) == 0 {
		panic("compiler: scope underflow: bind with no open frame")
	}
	slot := c.slotCount
	c.scopes[len(c.scopes)-1][name] = slot
	c.slotCount++
	return slot
}

// resolveLocal looks name up innermost frame first; the first match
// wins, so inner bindings shadow outer ones.
func (c *Compiler) resolveLocal(name string) (int, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if slot, ok := c.scopes[i][name]; ok {
			return slot, true
		}
	}
	return 0, false
}

// emit helpers

func (c *Compiler) emit(op Opcode, line int) {
	c.chunk.WriteOp(op, line)
}

func (c *Compiler) emitOperand(v uint32, line int) {
	c.chunk.WriteOperand(v, line)
}

// emitConstant interns v and emits the load-constant instruction.
func (c *Compiler) emitConstant(v Value, line int) {
	addr := c.chunk.AddConstant(v)
	c.emit(OpConst, line)
	c.emitOperand(uint32(addr), line)
}

// emitJump writes op with a placeholder distance and returns the patch
// site (the offset of the placeholder word).
func (c *Compiler) emitJump(op Opcode, line int) int {
	c.emit(op, line)
	site := c.chunk.Len()
	c.emitOperand(0xffffffff, line)
	return site
}

// patchJump resolves a forward jump: the distance is measured from the
// byte just past the patch site to the current end of the stream, so
// the VM adds it to an instruction pointer already sitting past the
// operand.
func (c *Compiler) patchJump(site int) {
	jump := c.chunk.Len() - site - OperandWidth
	c.chunk.PatchOperand(site, uint32(int32(jump)))
}

// emitLoop emits an unconditional backward jump to loopStart. The
// distance is negative and accounts for the operand's own width.
func (c *Compiler) emitLoop(loopStart, line int) {
	c.emit(OpJump, line)
	offset := -(c.chunk.Len() - loopStart + OperandWidth)
	c.emitOperand(uint32(int32(offset)), line)
}
