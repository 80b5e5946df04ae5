package m68k

import "testing"

// testBus is a flat 1MB memory backing used across the test suite,
// grounded on the teacher's own in-package test bus shape.
type testBus struct {
	mem [1 << 20]byte
}

func newTestBus() *testBus { return &testBus{} }

func (b *testBus) GetByte(addr uint32) (uint8, bool) {
	if addr >= uint32(len(b.mem)) {
		return 0, false
	}
	return b.mem[addr], true
}

func (b *testBus) GetWord(addr uint32) (uint16, bool) {
	if addr+1 >= uint32(len(b.mem)) {
		return 0, false
	}
	return uint16(b.mem[addr])<<8 | uint16(b.mem[addr+1]), true
}

func (b *testBus) GetLong(addr uint32) (uint32, bool) {
	hi, ok1 := b.GetWord(addr)
	lo, ok2 := b.GetWord(addr + 2)
	return uint32(hi)<<16 | uint32(lo), ok1 && ok2
}

func (b *testBus) SetByte(addr uint32, v uint8) bool {
	if addr >= uint32(len(b.mem)) {
		return false
	}
	b.mem[addr] = v
	return true
}

func (b *testBus) SetWord(addr uint32, v uint16) bool {
	if addr+1 >= uint32(len(b.mem)) {
		return false
	}
	b.mem[addr] = uint8(v >> 8)
	b.mem[addr+1] = uint8(v)
	return true
}

func (b *testBus) SetLong(addr uint32, v uint32) bool {
	ok1 := b.SetWord(addr, uint16(v>>16))
	ok2 := b.SetWord(addr+2, uint16(v))
	return ok1 && ok2
}

func (b *testBus) ResetInstruction() {}

func (b *testBus) loadWords(addr uint32, words ...uint16) {
	for i, w := range words {
		b.SetWord(addr+uint32(i*2), w)
	}
}

// newTestCPU builds a CPU over a fresh testBus with a sane default
// register state: supervisor mode, stack pointers in distinct pages from
// the code/data area so a test's own buffers never alias the stack.
func newTestCPU(t *testing.T, variant Variant) (*CPU, *testBus) {
	t.Helper()
	bus := newTestBus()
	cpu := New(bus, variant)
	cpu.SetState(Registers{PC: 0x1000, SSP: 0x9000, USP: 0x8000, SR: flagS})
	return cpu, bus
}
