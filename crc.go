package zipper

import (
	"encoding/binary"
	"hash/crc32"
)

// checksumTrailer computes the CRC-32 of data using the IEEE polynomial
// (0xEDB88320, reflected; the zlib/gzip "CRC-32"), big-endian encoded as
// the 4-byte trailer spec.md §3/§4.3 appends to every patch.
//
// The standard library's hash/crc32.ChecksumIEEE is this exact checksum;
// there is no third-party replacement in the example corpus that does
// anything but wrap the same table-driven algorithm, so this is one of
// the rare places the codec reaches for the standard library directly.
func checksumTrailer(data []byte) [4]byte {
	var out [4]byte
	binary.BigEndian.PutUint32(out[:], crc32.ChecksumIEEE(data))
	return out
}
