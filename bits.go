package m68k

// bitField extracts the (hi-lo+1)-bit field [lo,hi] from a 16-bit word.
func bitField(word uint16, hi, lo uint) uint16 {
	mask := uint16((1 << (hi - lo + 1)) - 1)
	return (word >> lo) & mask
}

// isEven reports whether an address is word-aligned.
func isEven(addr uint32) bool {
	return addr&1 == 0
}

// addCarry computes dst+src+x at the given size and reports the carry out
// of the top bit and the signed overflow, without touching any CPU state.
func addCarry(src, dst, x uint32, sz Size) (result uint32, carry, overflow bool) {
	mask := sz.Mask()
	msb := sz.MSB()
	s := src & mask
	d := dst & mask
	full := uint64(s) + uint64(d) + uint64(x)
	result = uint32(full) & mask

	carry = full&uint64(mask+1) != 0
	overflow = (s^result)&(d^result)&msb != 0
	return result, carry, overflow
}

// subCarry computes dst-src-x at the given size and reports the borrow out
// of the top bit and the signed overflow, without touching any CPU state.
func subCarry(src, dst, x uint32, sz Size) (result uint32, borrow, overflow bool) {
	mask := sz.Mask()
	msb := sz.MSB()
	s := src & mask
	d := dst & mask
	full := int64(d) - int64(s) - int64(x)
	result = uint32(full) & mask

	borrow = full < 0
	overflow = (s^d)&(result^d)&msb != 0
	return result, borrow, overflow
}

// signExtendWord sign-extends a 16-bit value to 32 bits.
func signExtendWord(v uint16) uint32 {
	return uint32(int32(int16(v)))
}

// signExtendByte sign-extends an 8-bit value to 32 bits.
func signExtendByte(v uint8) uint32 {
	return uint32(int32(int8(v)))
}
