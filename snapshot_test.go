package m68k

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSnapshotRestoreRoundTrip checks that Snapshot+RestoreSnapshot
// reproduces every field a test or debugger might compare on, including a
// pending exception queued but not yet serviced.
func TestSnapshotRestoreRoundTrip(t *testing.T) {
	cpu, _ := newTestCPU(t, MC68000)
	cpu.reg.D[3] = 0xDEADBEEF
	cpu.reg.A[2] = 0x00CAFE00
	cpu.reg.PC = 0x4242
	cpu.cycles = 123456
	cpu.pending.insert(pendingEntry{vector: vecTrap0, level: 0})

	data := cpu.Snapshot()

	other, _ := newTestCPU(t, MC68000)
	err := other.RestoreSnapshot(data)
	require.NoError(t, err)

	require.Equal(t, cpu.reg.D, other.reg.D)
	require.Equal(t, cpu.reg.A, other.reg.A)
	require.Equal(t, cpu.reg.PC, other.reg.PC)
	require.Equal(t, cpu.reg.SR, other.reg.SR)
	require.Equal(t, cpu.cycles, other.cycles)
	require.Equal(t, cpu.pending.entries, other.pending.entries)
}

// TestRestoreSnapshotRejectsWrongLength checks that a truncated or
// otherwise mis-sized buffer is rejected rather than read out of bounds.
func TestRestoreSnapshotRejectsWrongLength(t *testing.T) {
	cpu, _ := newTestCPU(t, MC68000)
	err := cpu.RestoreSnapshot([]byte{0, 1, 2})
	require.Error(t, err)
}

// TestRestoreSnapshotRejectsBadMagic checks a buffer of the right length
// but wrong leading magic is rejected.
func TestRestoreSnapshotRejectsBadMagic(t *testing.T) {
	cpu, _ := newTestCPU(t, MC68000)
	data := cpu.Snapshot()
	data[0] ^= 0xFF
	err := cpu.RestoreSnapshot(data)
	require.Error(t, err)
}
