package m68k

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// roundTrip decodes the words loaded at addr and checks Assemble
// reproduces the exact same word sequence.
func roundTrip(t *testing.T, cpu *CPU, bus *testBus, addr uint32, label string) {
	t.Helper()
	inst, next := cpu.PeekDecode(addr)
	require.NotEqual(t, KindIllegal, inst.Kind, "%s: decoded as illegal", label)
	require.NotEqual(t, KindUnknown, inst.Kind, "%s: decoded as unknown", label)

	words, err := Assemble(inst)
	require.NoError(t, err, "%s: Assemble failed", label)

	wantWordCount := (next - addr) / 2
	require.Equal(t, int(wantWordCount), len(words), "%s: word count mismatch", label)

	for i, w := range words {
		got, ok := bus.GetWord(addr + uint32(i*2))
		require.True(t, ok)
		require.Equal(t, got, w, "%s: word %d mismatch", label, i)
	}
}

func TestDecodeAssembleRoundTrip(t *testing.T) {
	cases := []struct {
		label string
		words []uint16
	}{
		{"MOVE.L Dn,Dn", []uint16{0x2001}},
		{"MOVE.W (A0)+,-(A1)", []uint16{0x3318}},
		{"ADDI.L #imm,D0", []uint16{0x0680, 0x0001, 0x0002}},
		{"ANDI.W #imm,D1", []uint16{0x0241, 0x00FF}},
		{"BTST static #n,(A0)", []uint16{0x0810, 0x0003}},
		{"LSL.L D1,D0 reg-count", []uint16{0xE3A8}},
		{"MOVEM.L regs,-(A7)", []uint16{0x48E7, 0x0103}},
		{"MOVEM.L (A7)+,regs", []uint16{0x4CDF, 0x0103}},
		{"DBF D0,disp", []uint16{0x51C8, 0xFFFE}},
		{"EXG D0,D1", []uint16{0xC141}},
		{"LEA (A0),A1", []uint16{0x43D0}},
		{"Scc D0", []uint16{0x57C0}},
		{"CHK D0,D0", []uint16{0x4180}},
		{"DIVU.W #imm,D0", []uint16{0x80FC, 0x0007}},
		{"BSR.W disp", []uint16{0x6100, 0x0010}},
		{"ABCD D1,D0", []uint16{0xC101}},
		{"ASL.B #1,D0", []uint16{0xE300}},
		{"TAS D0", []uint16{0x4AC0}},
		{"LINK A5,#disp", []uint16{0x4E55, 0xFFF0}},
	}

	for _, tc := range cases {
		cpu, bus := newTestCPU(t, MC68000)
		bus.loadWords(0x2000, tc.words...)
		roundTrip(t, cpu, bus, 0x2000, tc.label)
	}
}
