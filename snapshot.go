package m68k

import (
	"encoding/binary"
	"fmt"
)

// snapshot.go implements a fixed-layout binary CPU-state dump, adapted
// from the teacher's serialize.go to this core's Registers/exceptionSet
// shape. A snapshot can be restored into another CPU with RestoreSnapshot.

const snapshotMagic = 0x4D36384B // "M68K"

// snapshotSize is the fixed encoded length: magic(4) + 8*D(4) + 7*A(4) +
// PC(4) + SR(2) + USP(4) + SSP(4) + cycles(8) + stopped(1) + pending
// count(1) + up to 8 pending entries*(vector 1 + level 1).
const snapshotSize = 4 + 8*4 + 7*4 + 4 + 2 + 4 + 4 + 8 + 1 + 1 + 8*2

// Snapshot encodes the CPU's full state (registers, cycle count, stop
// flag, pending exceptions) as a fixed-layout byte slice.
func (c *CPU) Snapshot() []byte {
	buf := make([]byte, snapshotSize)
	off := 0
	putU32 := func(v uint32) {
		binary.BigEndian.PutUint32(buf[off:], v)
		off += 4
	}
	putU16 := func(v uint16) {
		binary.BigEndian.PutUint16(buf[off:], v)
		off += 2
	}

	putU32(snapshotMagic)
	for _, d := range c.reg.D {
		putU32(d)
	}
	r := c.Registers()
	for _, a := range r.A {
		putU32(a)
	}
	putU32(c.reg.PC)
	putU16(c.reg.SR)
	putU32(r.USP)
	putU32(r.SSP)
	binary.BigEndian.PutUint64(buf[off:], c.cycles)
	off += 8
	if c.stopped {
		buf[off] = 1
	}
	off++

	n := len(c.pending.entries)
	if n > 8 {
		n = 8
	}
	buf[off] = uint8(n)
	off++
	for i := 0; i < 8; i++ {
		if i < n {
			buf[off] = c.pending.entries[i].vector
			buf[off+1] = c.pending.entries[i].level
		}
		off += 2
	}
	return buf
}

// RestoreSnapshot installs the state encoded by data, as produced by
// Snapshot, bypassing reset. Returns an error if data is not a
// well-formed snapshot of this layout.
func (c *CPU) RestoreSnapshot(data []byte) error {
	if len(data) != snapshotSize {
		return fmt.Errorf("m68k: snapshot has %d bytes, want %d", len(data), snapshotSize)
	}
	off := 0
	getU32 := func() uint32 {
		v := binary.BigEndian.Uint32(data[off:])
		off += 4
		return v
	}
	getU16 := func() uint16 {
		v := binary.BigEndian.Uint16(data[off:])
		off += 2
		return v
	}

	if magic := getU32(); magic != snapshotMagic {
		return fmt.Errorf("m68k: bad snapshot magic %#x", magic)
	}
	var d [8]uint32
	for i := range d {
		d[i] = getU32()
	}
	var a [7]uint32
	for i := range a {
		a[i] = getU32()
	}
	pc := getU32()
	sr := getU16()
	usp := getU32()
	ssp := getU32()
	cycles := binary.BigEndian.Uint64(data[off:])
	off += 8
	stopped := data[off] != 0
	off++

	n := int(data[off])
	off++
	var entries []pendingEntry
	for i := 0; i < 8; i++ {
		vector, level := data[off], data[off+1]
		off += 2
		if i < n {
			entries = append(entries, pendingEntry{vector: vector, level: level})
		}
	}

	c.SetState(Registers{D: d, A: a, PC: pc, SR: sr, USP: usp, SSP: ssp, IR: c.reg.IR})
	c.cycles = cycles
	c.stopped = stopped
	c.pending = exceptionSet{entries: entries}
	return nil
}
