package rle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x01},
		{0x01, 0x02, 0x03},
		bytesOf(0xFF, 2),
		bytesOf(0xAB, 3),
		bytesOf(0x00, 200),
		append(bytesOf(0x11, 5), bytesOf(0x22, 130)...),
		sequential(300),
	}

	for _, data := range cases {
		encoded := Encode(data)
		decoded, err := Decode(encoded, len(data))
		assert.NoError(t, err)
		assert.Equal(t, data, decoded)
	}
}

func TestEncode_ShortRunStaysLiteral(t *testing.T) {
	// A run of exactly 2 identical bytes costs 2 bytes either way
	// (control+byte vs. 2 literal bytes); spec.md says only 3+ strictly
	// saves, so a 2-byte run should not become a repeat segment.
	data := []byte{0xAA, 0xAA}
	encoded := Encode(data)
	assert.Equal(t, byte(0x01), encoded[0]) // literal, count 2
	assert.Equal(t, []byte{0xAA, 0xAA}, encoded[1:])
}

func TestEncode_LongRunSplitsAtSegmentCap(t *testing.T) {
	data := bytesOf(0x5A, 129)
	encoded := Encode(data)
	assert.Equal(t, []byte{0xFF, 0x5A}, encoded) // 0x80 | (129-2) == 0xFF
}

func TestEncode_RunBeyondCapSpillsToNextSegment(t *testing.T) {
	data := bytesOf(0x5A, 130)
	encoded := Encode(data)
	assert.Equal(t, []byte{0xFF, 0x5A, 0x00, 0x5A}, encoded)
}

func TestDecode_UnderrunFails(t *testing.T) {
	_, err := Decode([]byte{0x80}, 2) // repeat control with no byte following
	assert.Error(t, err)
}

func TestDecode_OverrunFails(t *testing.T) {
	_, err := Decode([]byte{0x03, 0x01, 0x02, 0x03, 0x04}, 2) // literal count 4 into a 2-byte budget
	assert.Error(t, err)
}

func TestDecode_LengthMismatchFails(t *testing.T) {
	_, err := Decode([]byte{0x00, 0x01}, 5)
	assert.Error(t, err)
}

func bytesOf(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func sequential(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}
