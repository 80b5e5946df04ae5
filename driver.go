package m68k

// driver.go implements the public step/run entry points of spec.md §5.

// StepResult reports what happened during one Step call.
type StepResult struct {
	Instruction Instruction
	Exception   bool   // an exception vector was serviced this step
	Vector      uint8  // the vector serviced, if Exception
	Trace       bool   // a trace exception is now pending for the next step
}

// Step executes exactly one instruction (or, if any unmasked exceptions
// are pending, services all of them in priority order and reports the
// last one serviced), returning what happened. If the CPU
// is stopped and no exception is pending, Step is a no-op that still
// advances Cycles() by one vector-less tick's worth of bus inactivity
// (here: zero, since a stopped core consumes no bus cycles of its own).
func (c *CPU) Step() StepResult {
	if vector, any := c.drainExceptions(); any {
		return StepResult{Exception: true, Vector: vector}
	}
	return c.stepInstruction()
}

// StepVector behaves exactly like Step, except that a raised exception is
// not routed through drainExceptions/processException's stack-frame
// machinery: no frame is pushed and PC is not redirected to the vector
// table. The vector is instead returned directly to the caller, which is
// responsible for whatever servicing it wants to do. ok reports whether
// a vector was surfaced this call (equivalently, StepResult.Exception).
func (c *CPU) StepVector() (result StepResult, ok bool) {
	if vector, any := c.drainExceptionVector(); any {
		return StepResult{Exception: true, Vector: vector}, true
	}
	return c.stepInstruction(), false
}

// stepInstruction fetches, decodes, and executes one instruction, or is a
// no-op if the core is stopped. Shared by Step and StepVector, which
// differ only in how a pending exception from a *prior* step is drained.
func (c *CPU) stepInstruction() StepResult {
	if c.stopped {
		return StepResult{}
	}

	traceWasPending := c.flagSet(flagT)

	c.prevPC = c.reg.PC
	c.ir = c.fetchPC()
	inst := c.Decode()

	// A bus or address error while fetching the opcode or its extension
	// words fails the decode: the instruction is not executed, and the
	// posted error is serviced on the next Step.
	if c.pending.has(vecBusError) || c.pending.has(vecAddressError) {
		return StepResult{Instruction: inst}
	}

	if inst.Kind == KindIllegal {
		c.exception(vecIllegalInstruction)
		return StepResult{Instruction: inst}
	}

	c.Execute(inst)

	// A trace is posted when T was set at instruction entry. Privileged
	// instructions are traced only under WithTraceOnPrivileged(true).
	if traceWasPending && (c.traceOnPrivileged || !isPrivileged(inst.Kind)) {
		c.exception(vecTrace)
	}

	return StepResult{Instruction: inst, Trace: c.pending.has(vecTrace)}
}

// PeekDecode decodes the instruction at addr without executing it,
// charging cycles, or touching pending exceptions, for use by
// disassemblers and debuggers (spec.md §4.2). It returns the decoded
// instruction and the address immediately following its last extension
// word. PC-relative operands are rendered relative to addr, matching
// the addressing rules Decode itself uses for a live fetch at that PC.
func (c *CPU) PeekDecode(addr uint32) (Instruction, uint32) {
	savedPC, savedIR, savedPrevPC := c.reg.PC, c.ir, c.prevPC
	savedPending := append([]pendingEntry(nil), c.pending.entries...)
	defer func() {
		c.reg.PC, c.ir, c.prevPC = savedPC, savedIR, savedPrevPC
		c.pending.entries = savedPending
	}()

	c.reg.PC = addr
	c.prevPC = addr
	c.ir = c.fetchPC()
	inst := c.Decode()
	return inst, c.reg.PC
}

// isPrivileged reports whether kind requires supervisor mode (spec.md
// §4.5's privileged-instruction list), used only for the
// WithTraceOnPrivileged bookkeeping.
func isPrivileged(kind Kind) bool {
	switch kind {
	case KindMOVEtoSR, KindANDItoSR, KindORItoSR, KindEORItoSR,
		KindSTOP, KindRESET, KindRTE, KindMOVEUSP:
		return true
	default:
		return false
	}
}

// RunCycles executes instructions/exceptions until at least n additional
// cycles have elapsed, returning the number actually elapsed (which may
// exceed n, since instructions are not interruptible mid-execution) and
// the last StepResult produced.
func (c *CPU) RunCycles(n uint64) (elapsed uint64, last StepResult) {
	start := c.cycles
	for c.cycles-start < n {
		last = c.Step()
		if c.stopped && c.pending.empty() {
			break // nothing left can advance the clock
		}
	}
	return c.cycles - start, last
}

// RunUntilException executes instructions until one raises/services an
// exception (including a trace exception pending from the prior
// instruction) or the CPU stops, returning the terminating StepResult.
func (c *CPU) RunUntilException() StepResult {
	for {
		r := c.Step()
		if r.Exception || c.stopped {
			return r
		}
	}
}
