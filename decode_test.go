package zipper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zissis-pap/zipper/zerr"
)

func TestDecode_RejectsTruncatedPatch(t *testing.T) {
	_, err := Decode([]byte("ref"), []byte{64, 0x43})
	assert.Error(t, err)
	assert.True(t, zerr.Is(err, zerr.TruncatedPatch))
}

func TestDecode_RejectsBadHeaderBlockSize(t *testing.T) {
	patch := []byte{7, 0, 0, 0, 0}
	_, err := Decode([]byte("reference"), patch)
	assert.Error(t, err)
	assert.True(t, zerr.Is(err, zerr.InvalidBlockSize))
}

func TestDecode_RejectsUnknownTag(t *testing.T) {
	patch := []byte{8, 0x99, 0, 0, 0, 0}
	_, err := Decode(make([]byte, 8), patch)
	assert.Error(t, err)
	assert.True(t, zerr.Is(err, zerr.UnknownTag))
}

func TestDecode_RejectsChecksumMismatch(t *testing.T) {
	reference := sequentialBytes(64)
	patch, err := Encode(reference, reference, 64)
	assert.NoError(t, err)

	tampered := append([]byte{}, patch...)
	tampered[len(tampered)-1] ^= 0xFF

	_, err = Decode(reference, tampered)
	assert.Error(t, err)
	assert.True(t, zerr.Is(err, zerr.ChecksumMismatch))
}

func TestDecode_RejectsTrailingDataAfterPartial(t *testing.T) {
	reference := sequentialBytes(64)
	patch := []byte{64, 0x50, 0x02, 0x00, 0x01, 0x43, 0, 0, 0, 0}
	_, err := Decode(reference, patch)
	assert.Error(t, err)
	assert.True(t, zerr.Is(err, zerr.TrailingData))
}

func TestDecode_RejectsCopyOffsetOutOfBounds(t *testing.T) {
	reference := sequentialBytes(64)
	patch := []byte{64, 0x52, 0xFF, 0xFF, 0xFF, 0, 0, 0, 0}
	_, err := Decode(reference, patch)
	assert.Error(t, err)
	assert.True(t, zerr.Is(err, zerr.MalformedPatch))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	cases := []struct {
		reference []byte
		target    []byte
		blockSize int
	}{
		{sequentialBytes(1024), sequentialBytes(1024), 64},
		{make([]byte, 64), bytesAll(0xFF, 64), 64},
		{sequentialBytes(66), sequentialBytes(66), 64},
		{sequentialBytes(128), []byte{0x01, 0x02, 0x03}, 64},
		{[]byte{}, []byte{}, 8},
		{sequentialBytes(2000), shuffledCopy(sequentialBytes(2000)), 32},
	}

	for _, c := range cases {
		patch, err := Encode(c.reference, c.target, c.blockSize)
		assert.NoError(t, err)

		got, err := Decode(c.reference, patch)
		assert.NoError(t, err)
		assert.Equal(t, c.target, got)
	}
}

func TestEncode_IdentityPatchSize(t *testing.T) {
	blob := sequentialBytes(2048)
	patch, err := Encode(blob, blob, 64)
	assert.NoError(t, err)
	// A fully-matching blob collapses into header + one COPY_RUN + CRC.
	assert.Less(t, len(patch), len(blob)/10)
}

func bytesAll(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func shuffledCopy(data []byte) []byte {
	out := append([]byte{}, data...)
	// Swap block-sized chunks around and perturb a few bytes so the
	// encoder has to exercise COPY_OFFSET and XOR_RLE, not just COPY_RUN.
	// Every other pair of 32-byte chunks (mirrored around the middle) is
	// swapped; the chunks in between stay in place.
	const chunk = 32
	chunks := len(out) / chunk
	for i := 0; i < chunks/2; i += 2 {
		a := out[i*chunk : (i+1)*chunk]
		b := out[(chunks-1-i)*chunk : (chunks-i)*chunk]
		for k := range a {
			a[k], b[k] = b[k], a[k]
		}
	}
	for i := 0; i < len(out); i += 97 {
		out[i] ^= 0x2A
	}
	return out
}
