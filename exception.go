package m68k

// Exception vector numbers (spec.md §3.4, §4.5).
const (
	vecReset              uint8 = 0
	vecBusError           uint8 = 2
	vecAddressError       uint8 = 3
	vecIllegalInstruction uint8 = 4
	vecDivideByZero       uint8 = 5
	vecCHK                uint8 = 6
	vecTRAPV              uint8 = 7
	vecPrivilegeViolation uint8 = 8
	vecTrace              uint8 = 9
	vecLineA              uint8 = 10
	vecLineF              uint8 = 11
	vecFormatError        uint8 = 14
	vecUninitialized      uint8 = 15
	vecSpuriousInterrupt  uint8 = 24
	vecTrap0              uint8 = 32 // TRAP #0..#15 -> vectors 32-47
)

// priorityOf returns the fixed priority for a vector per spec.md §3.4's
// table (lower numeric value = higher actual priority).
func priorityOf(vector uint8) uint8 {
	switch {
	case vector == vecAddressError:
		return 0
	case vector == vecBusError:
		return 1
	case vector == vecTrace:
		return 2
	case vector >= 24 && vector <= 31, vector >= 64:
		return 3
	case vector == vecIllegalInstruction:
		return 4
	case vector == vecPrivilegeViolation:
		return 5
	default:
		return 255
	}
}

// pendingEntry is one member of the pending-exception set. level is
// nonzero only for interrupt vectors, and records the IPL used by the
// drain's interrupt-mask test (spec.md §4.5).
type pendingEntry struct {
	vector uint8
	level  uint8
}

// exceptionSet is an ordered set deduplicating on vector (spec.md §3.4,
// §9 design note). A small slice kept in insertion order is sufficient:
// the set is bounded by the number of distinct vectors in flight at once,
// which in practice is at most a handful.
type exceptionSet struct {
	entries []pendingEntry
}

func (s *exceptionSet) insert(e pendingEntry) {
	for i := range s.entries {
		if s.entries[i].vector == e.vector {
			s.entries[i] = e
			return
		}
	}
	s.entries = append(s.entries, e)
}

func (s *exceptionSet) has(vector uint8) bool {
	for _, e := range s.entries {
		if e.vector == vector {
			return true
		}
	}
	return false
}

func (s *exceptionSet) empty() bool { return len(s.entries) == 0 }

func (s *exceptionSet) clear() { s.entries = nil }

// drainOrdered extracts entries not matching keep, returning them
// lowest-priority-first (so the highest-priority exception is processed
// last and its stack frame stays the active one).
func (s *exceptionSet) drainOrdered(keep func(pendingEntry) bool) []pendingEntry {
	var extracted, remaining []pendingEntry
	for _, e := range s.entries {
		if keep(e) {
			remaining = append(remaining, e)
		} else {
			extracted = append(extracted, e)
		}
	}
	s.entries = remaining

	// Stable sort descending by priority number (lowest actual priority
	// first), preserving insertion order among ties.
	for i := 1; i < len(extracted); i++ {
		for j := i; j > 0 && priorityOf(extracted[j-1].vector) < priorityOf(extracted[j].vector); j-- {
			extracted[j-1], extracted[j] = extracted[j], extracted[j-1]
		}
	}
	return extracted
}

// exception injects a non-interrupt exception into the pending set
// (spec.md §4.5 "Injection"). Reset and trace vectors clear the stop
// flag; RequestInterrupt handles the interrupt case directly.
func (c *CPU) exception(vector uint8) {
	c.pending.insert(pendingEntry{vector: vector})
	if vector == vecReset || vector == vecTrace {
		c.stopped = false
	}
}

// RequestInterrupt queues an interrupt at priority level (1-7), using
// vector if non-nil or autovectoring (24+level) otherwise. A second
// request for the same vector before the first is serviced simply
// updates the pending entry (dedup by vector per spec.md §3.4).
func (c *CPU) RequestInterrupt(level uint8, vector *uint8) {
	v := vecSpuriousInterrupt + level
	if vector != nil {
		v = *vector
	}
	c.pending.insert(pendingEntry{vector: v, level: level})
	c.stopped = false
}

// drainExceptions processes every pending exception that is not a masked
// interrupt, lowest-priority-first, before the next instruction fetch
// (spec.md §4.5 "Drain"). Returns the vector of the last (highest
// priority) exception processed, if any.
func (c *CPU) drainExceptions() (processed uint8, any bool) {
	if c.pending.empty() {
		return 0, false
	}

	if c.pending.has(vecReset) {
		c.pending.clear()
		c.doReset()
		return vecReset, true
	}

	im := uint8((c.reg.SR & flagIM) >> 8)
	extracted := c.pending.drainOrdered(func(e pendingEntry) bool {
		return e.level != 0 && e.level <= im && e.level != 7
	})

	for _, e := range extracted {
		c.processException(e)
		processed = e.vector
		any = true
	}
	return processed, any
}

// drainExceptionVector extracts the single highest-priority pending,
// unmasked exception and returns its vector without building a stack
// frame or touching PC/SR, for use by StepVector. Any other unmasked
// exceptions extracted alongside it (spec.md §4.5's priority ordering can
// surface several at once) are reinserted into the pending set so a
// later drain still sees them.
func (c *CPU) drainExceptionVector() (vector uint8, any bool) {
	if c.pending.empty() {
		return 0, false
	}

	if c.pending.has(vecReset) {
		c.pending.clear()
		c.doReset()
		return vecReset, true
	}

	im := uint8((c.reg.SR & flagIM) >> 8)
	extracted := c.pending.drainOrdered(func(e pendingEntry) bool {
		return e.level != 0 && e.level <= im && e.level != 7
	})
	if len(extracted) == 0 {
		return 0, false
	}

	top := extracted[len(extracted)-1]
	for _, e := range extracted[:len(extracted)-1] {
		c.pending.insert(e)
	}
	return top.vector, true
}

// processException builds and pushes the exception stack frame for e,
// applying the nested-fault policy of spec.md §4.5 if the frame write
// itself takes a bus error.
func (c *CPU) processException(e pendingEntry) {
	oldSR := c.reg.SR

	pushPC := c.reg.PC
	switch e.vector {
	case vecIllegalInstruction, vecPrivilegeViolation, vecLineA, vecLineF:
		pushPC = c.prevPC
	}

	if !c.supervisor() {
		c.reg.USP = c.reg.A[7]
		c.reg.A[7] = c.reg.SSP
	}
	c.reg.SR = (c.reg.SR | flagS) &^ flagT
	if e.level != 0 {
		c.reg.SR = (c.reg.SR &^ flagIM) | uint16(e.level)<<8
	}

	ok := c.pushFrame(e.vector, pushPC, oldSR)
	if !ok {
		c.handleFrameFault(e)
		return
	}

	addr, ok := c.rawReadLong(uint32(e.vector) * 4)
	if !ok || addr == 0 {
		addr, ok = c.rawReadLong(uint32(vecUninitialized) * 4)
		if !ok {
			c.fatal("uninitialized vector table access failed")
			return
		}
	}
	c.reg.PC = addr
	c.cycles += c.variant.VectorCycles(e.vector)
}

// pushFrame writes the stack frame for one of the two formats named in
// spec.md §4.5, using raw bus access (not c.writeBus) so a failure here
// is handled by the nested-fault policy instead of recursing into
// exception().
func (c *CPU) pushFrame(vector uint8, pc uint32, sr uint16) bool {
	switch c.variant.Frame {
	case FrameSCC68070:
		if vector == vecBusError || vector == vecAddressError {
			for i := 0; i < 13; i++ {
				if !c.rawPushWord(0) {
					return false
				}
			}
		}
		if !c.rawPushLong(pc) {
			return false
		}
		if !c.rawPushWord(sr) {
			return false
		}
		formatWord := uint16(vector) * 4
		if vector == vecBusError || vector == vecAddressError {
			formatWord = 0xF000 | (uint16(vector) * 4)
		}
		return c.rawPushWord(formatWord)
	default: // FrameMC68000
		if !c.rawPushLong(pc) {
			return false
		}
		if !c.rawPushWord(sr) {
			return false
		}
		if vector == vecBusError || vector == vecAddressError {
			if !c.rawPushWord(0) { // function code placeholder
				return false
			}
			if !c.rawPushLong(0) { // access address placeholder
				return false
			}
			if !c.rawPushWord(c.ir) {
				return false
			}
		}
		return true
	}
}

// handleFrameFault implements the nested-fault policy of spec.md §4.5.
func (c *CPU) handleFrameFault(outer pendingEntry) {
	switch {
	case outer.vector == vecBusError:
		c.fatal("access error while processing access error")
	case outer.level != 0:
		c.pending.insert(pendingEntry{vector: vecSpuriousInterrupt})
	default:
		c.pending.insert(pendingEntry{vector: vecBusError})
	}
}

func (c *CPU) fatal(msg string) {
	c.log.Panicf("m68k: fatal: %s (PC=%06x SR=%04x)", msg, c.reg.PC, c.reg.SR)
}

// --- raw (non-exception-raising) bus helpers used only while building an
// exception stack frame, so a fault there is handled by the nested-fault
// policy instead of recursively posting a new pending exception. ---

func (c *CPU) rawPushWord(v uint16) bool {
	c.reg.A[7] -= 2
	return c.bus.SetWord(c.reg.A[7]&0xFFFFFF, v)
}

func (c *CPU) rawPushLong(v uint32) bool {
	c.reg.A[7] -= 4
	return c.bus.SetLong(c.reg.A[7]&0xFFFFFF, v)
}

func (c *CPU) rawReadLong(addr uint32) (uint32, bool) {
	return c.bus.GetLong(addr & 0xFFFFFF)
}

// doReset performs the hardware reset sequence of spec.md §4.5.1: loads
// SSP from address 0 and PC from address 4, clears T, sets S, sets IM=7,
// clears the stop flag. Bypasses all frame writes and is not itself
// stackable.
func (c *CPU) doReset() {
	c.stopped = false
	c.pending.clear()
	c.cycles = 0
	c.reg.SR = 0x2700
	ssp, _ := c.bus.GetLong(0)
	pc, _ := c.bus.GetLong(4)
	c.reg.SSP = ssp
	c.reg.A[7] = ssp
	c.reg.PC = pc
	c.cycles += c.variant.ResetCycles
}
