// Package endian provides byte order utilities for the grove binary format.
//
// The optimized forest format is always little-endian on the wire. This
// package combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine, and exposes a native byte
// order probe used to decide whether a serialized node array can be viewed
// in place or must be decoded field by field.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used by the grove
// wire format. The returned engine is stateless and safe for concurrent use.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host stores integers
// little-endian, i.e. whether wire-format records match memory layout.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}
