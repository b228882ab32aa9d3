// Package keycmp implements the fixed-size, endianness-correct key
// comparator that backs the ordered map's default ordering.
//
// Byte-wise comparison alone is not enough: on a little-endian host,
// comparing an integer key's raw bytes from index 0 upward would sort
// by the least significant byte first. Compare always compares as if
// the key were an unsigned integer of its width in the host's native
// byte order, regardless of which end of memory that representation's
// most significant byte actually lives at.
package keycmp

import "unsafe"

// endianness records whether this host is little- or big-endian.
// Detected once at package init, the same way the original C project
// probed a sentinel uint32 at startup.
type endianness int

const (
	littleEndian endianness = iota
	bigEndian
)

var hostEndian = detectEndian()

// detectEndian writes a known uint32 through an unsafe.Pointer and
// inspects its first byte to determine host byte order.
func detectEndian() endianness {
	var probe uint32 = 0x01020304
	b := (*[4]byte)(unsafe.Pointer(&probe))
	if b[0] == 0x04 {
		return littleEndian
	}
	return bigEndian
}

// Compare returns -1, 0, or +1 according to the numeric ordering of a
// and b, interpreting each as an unsigned integer of K's width in the
// host's native byte order.
//
// K must be a fixed-size, trivially copyable type (an integer type, a
// float, an array of such, or a struct composed only of such fields
// with no padding). Composite keys with padding are undefined
// behaviour, same as in the source this engine was distilled from:
// the comparator reads every byte of K's in-memory representation,
// including any uninitialized padding bytes.
func Compare[K any](a, b K) int {
	size := unsafe.Sizeof(a)
	pa := (*byte)(unsafe.Pointer(&a))
	pb := (*byte)(unsafe.Pointer(&b))
	ba := unsafe.Slice(pa, size)
	bb := unsafe.Slice(pb, size)

	if hostEndian == littleEndian {
		for i := int(size) - 1; i >= 0; i-- {
			if ba[i] != bb[i] {
				return cmpByte(ba[i], bb[i])
			}
		}
		return 0
	}

	for i := 0; i < int(size); i++ {
		if ba[i] != bb[i] {
			return cmpByte(ba[i], bb[i])
		}
	}
	return 0
}

func cmpByte(a, b byte) int {
	if a < b {
		return -1
	}
	return 1
}

// Less adapts Compare into a strict less-than predicate.
func Less[K any](a, b K) bool {
	return Compare(a, b) < 0
}
