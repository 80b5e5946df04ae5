// Package m68k implements a cycle-counting Motorola 68000-family
// instruction set interpreter for the MC68000 and SCC68070 variants.
//
// The core fetches 16-bit opcodes from a host-supplied Bus, decodes them
// through a static 65536-entry table into a structured Instruction, walks
// a per-Kind semantic handler to execute it, accounts for elapsed bus
// cycles via the selected Variant, and raises CPU exceptions when
// architectural conditions require it. A Disassembler and Assembler
// round out the package: Disassemble renders any decoded Instruction as
// text, Assemble produces the binary encoding from a structured
// description.
package m68k

import "log"

// Bus provides byte/word/long memory access for the CPU (spec.md §6.1).
// get/set operations that cannot complete (e.g. unmapped address) are
// signalled by returning ok=false, which the core turns into a bus-error
// exception.
type Bus interface {
	GetByte(addr uint32) (uint8, bool)
	GetWord(addr uint32) (uint16, bool)
	GetLong(addr uint32) (uint32, bool)
	SetByte(addr uint32, v uint8) bool
	SetWord(addr uint32, v uint16) bool
	SetLong(addr uint32, v uint32) bool
	// ResetInstruction notifies the host that the CPU executed the RESET
	// opcode. It has no effect on CPU state (spec.md §6.1).
	ResetInstruction()
}

// Registers is a snapshot of the programmer-visible state of the CPU
// (spec.md §3.1).
type Registers struct {
	D   [8]uint32
	A   [7]uint32 // A0-A6; A7 is context-dependent (USP or SSP)
	PC  uint32
	SR  uint16
	USP uint32
	SSP uint32
	IR  uint16
}

// Option configures a CPU at construction time.
type Option func(*CPU)

// WithTraceOnPrivileged controls whether a pending trace exception (T
// flag set at instruction entry) is also posted after a privileged
// instruction executes. spec.md §9 leaves this an open question; the
// default (false) follows the programming manual's "non-privileged only"
// reading used by the fast interpreter, per DESIGN.md.
func WithTraceOnPrivileged(v bool) Option {
	return func(c *CPU) { c.traceOnPrivileged = v }
}

// WithLogger overrides the diagnostic logger used for Fatal conditions
// (double bus fault while writing an exception frame).
func WithLogger(l *log.Logger) Option {
	return func(c *CPU) { c.log = l }
}

// regFile is the CPU's internal register file. Unlike Registers it holds
// all eight address registers: A[7] is whichever stack pointer is active,
// and the inactive one is kept in USP or SSP.
type regFile struct {
	D   [8]uint32
	A   [8]uint32
	PC  uint32
	SR  uint16
	USP uint32
	SSP uint32
	IR  uint16
}

// CPU is an MC68000-family processor core.
type CPU struct {
	reg regFile
	bus Bus

	variant Variant

	ir      uint16
	prevPC  uint32
	stopped bool

	pending exceptionSet
	cycles  uint64

	traceOnPrivileged bool
	log               *log.Logger
}

// New creates a CPU wired to bus under variant and performs a hardware
// reset (spec.md §4.5.1).
func New(bus Bus, variant Variant, opts ...Option) *CPU {
	c := &CPU{bus: bus, variant: variant, log: log.Default()}
	for _, opt := range opts {
		opt(c)
	}
	c.doReset()
	return c
}

// Registers returns a snapshot of the current register state. A7 is
// reported as the architectural USP/SSP pair, not whichever is currently
// active in reg.A[7].
func (c *CPU) Registers() Registers {
	r := Registers{D: c.reg.D, PC: c.reg.PC, SR: c.reg.SR, IR: c.reg.IR}
	copy(r.A[:], c.reg.A[:7])
	if c.supervisor() {
		r.SSP = c.reg.A[7]
		r.USP = c.reg.USP
	} else {
		r.USP = c.reg.A[7]
		r.SSP = c.reg.SSP
	}
	return r
}

// SetState installs a full register state directly, bypassing reset. This
// is intended for tests, where exact CPU state must be established before
// executing an instruction (mirrors the teacher's SetState).
func (c *CPU) SetState(r Registers) {
	c.reg.D = r.D
	copy(c.reg.A[:7], r.A[:])
	c.reg.SR = r.SR & srValidMask
	c.reg.PC = r.PC
	c.reg.USP = r.USP
	c.reg.SSP = r.SSP
	c.reg.IR = r.IR
	if c.supervisor() {
		c.reg.A[7] = c.reg.SSP
	} else {
		c.reg.A[7] = c.reg.USP
	}
	c.stopped = false
	c.pending = exceptionSet{}
	c.cycles = 0
}

// Cycles returns the total elapsed bus-cycle count since the last reset.
func (c *CPU) Cycles() uint64 { return c.cycles }

// Stopped reports whether the CPU executed a STOP instruction and has not
// yet been woken by an interrupt/trace/reset exception.
func (c *CPU) Stopped() bool { return c.stopped }

// RequestException injects a pending exception (spec.md §4.5). The vector
// is queued like an internally raised exception: it is not subject to the
// interrupt mask, does not change SR's interrupt level, and wakes a
// stopped CPU only for the reset and trace vectors. Interrupts are queued
// with RequestInterrupt instead.
func (c *CPU) RequestException(vector uint8) {
	c.exception(vector)
}

func (c *CPU) supervisor() bool { return c.reg.SR&flagS != 0 }

// effectiveA returns A[n], using the active stack pointer for n==7.
func (c *CPU) effectiveA(n uint8) uint32 {
	return c.reg.A[n]
}

func (c *CPU) setEffectiveA(n uint8, v uint32) {
	c.reg.A[n] = v
}

// setSR installs a new status register, swapping USP/SSP on a supervisor-
// mode transition, and masks to the architecturally valid bits (spec.md
// §3.1: "unused bits are always read as 0").
func (c *CPU) setSR(sr uint16) {
	oldS := c.reg.SR & flagS
	newS := sr & flagS
	if oldS != 0 && newS == 0 {
		c.reg.SSP = c.reg.A[7]
		c.reg.A[7] = c.reg.USP
	} else if oldS == 0 && newS != 0 {
		c.reg.USP = c.reg.A[7]
		c.reg.A[7] = c.reg.SSP
	}
	c.reg.SR = sr & srValidMask
}

func (c *CPU) setCCR(ccr uint8) {
	c.reg.SR = (c.reg.SR & 0xFF00) | uint16(ccr&0x1F)
}

// --- bus access ---

func (c *CPU) readBus(sz Size, addr uint32) uint32 {
	addr &= 0xFFFFFF
	if sz != Byte && !isEven(addr) {
		c.exception(vecAddressError)
		return 0
	}
	switch sz {
	case Byte:
		v, ok := c.bus.GetByte(addr)
		if !ok {
			c.exception(vecBusError)
			return 0
		}
		return uint32(v)
	case Word:
		v, ok := c.bus.GetWord(addr)
		if !ok {
			c.exception(vecBusError)
			return 0
		}
		return uint32(v)
	default:
		v, ok := c.bus.GetLong(addr)
		if !ok {
			c.exception(vecBusError)
			return 0
		}
		return v
	}
}

func (c *CPU) writeBus(sz Size, addr uint32, val uint32) {
	addr &= 0xFFFFFF
	val &= sz.Mask()
	if sz != Byte && !isEven(addr) {
		c.exception(vecAddressError)
		return
	}
	var ok bool
	switch sz {
	case Byte:
		ok = c.bus.SetByte(addr, uint8(val))
	case Word:
		ok = c.bus.SetWord(addr, uint16(val))
	default:
		ok = c.bus.SetLong(addr, val)
	}
	if !ok {
		c.exception(vecBusError)
	}
}

// fetchPC reads a word at PC and advances PC by 2 (spec.md §4.2 decode
// contract: decode consumes a lazy sequence of extension words).
func (c *CPU) fetchPC() uint16 {
	val := c.readBus(Word, c.reg.PC)
	c.reg.PC += 2
	return uint16(val)
}

func (c *CPU) fetchPCLong() uint32 {
	hi := c.fetchPC()
	lo := c.fetchPC()
	return uint32(hi)<<16 | uint32(lo)
}

func (c *CPU) pushWord(val uint16) {
	c.reg.A[7] -= 2
	c.writeBus(Word, c.reg.A[7], uint32(val))
}

func (c *CPU) pushLong(val uint32) {
	c.reg.A[7] -= 4
	c.writeBus(Long, c.reg.A[7], val)
}

func (c *CPU) popWord() uint16 {
	val := c.readBus(Word, c.reg.A[7])
	c.reg.A[7] += 2
	return uint16(val)
}

func (c *CPU) popLong() uint32 {
	val := c.readBus(Long, c.reg.A[7])
	c.reg.A[7] += 4
	return val
}
