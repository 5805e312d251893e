package watch

import "hash"

// rolling hash constants, carried over from the Mackerras checksum this
// type is adapted from: a base large enough to keep byte-at-a-time
// addition/removal cheap without overflowing a uint32 accumulator.
const (
	modulus = 2 << 16
	initial = 0
)

// digest is a Mackerras/Adler-style rolling checksum over a fixed-size
// trailing window. Fingerprint uses it as a cheap, non-cryptographic
// fingerprint of a reference blob: fast enough to recompute on every
// filesystem event, so a watcher can skip a full re-encode when the
// content hasn't actually changed.
type digest struct {
	windowSize int
	value      uint32
	circle     []byte
	index      int
}

func newDigest(windowSize int) hash.Hash32 {
	return &digest{
		windowSize: windowSize,
		value:      initial,
		circle:     make([]byte, windowSize),
	}
}

func (d *digest) Reset() {
	d.value = initial
	d.circle = make([]byte, d.windowSize)
	d.index = 0
}

func (d *digest) Size() int      { return 4 }
func (d *digest) BlockSize() int { return d.windowSize }

func (d *digest) Write(p []byte) (int, error) {
	r1, r2 := d.value&0xffff, d.value>>16
	l := uint32(d.windowSize)

	for i := 0; i < len(p); i++ {
		out := uint32(d.circle[d.index])
		r1 = (r1 - out + uint32(p[i])) % modulus
		r2 = (r2 - l*out + r1) % modulus
		d.circle[d.index] = p[i]
		d.index = (d.index + 1) % d.windowSize
	}

	d.value = (r1 & 0xffff) | (r2 << 16)
	return len(p), nil
}

func (d *digest) Sum32() uint32 { return d.value }

func (d *digest) Sum(in []byte) []byte {
	s := d.value
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

// Signature is a cheap fingerprint of a blob, used to decide whether a
// reference file actually changed before paying for a full Encode.
type Signature uint32

// Fingerprint feeds data through a rolling window of windowSize (clamped
// to len(data) when the blob is smaller) and returns the resulting
// fingerprint, which depends only on the last windowSize bytes of data.
// Two blobs with the same Signature are not guaranteed
// identical; it exists only to short-circuit the common case where a
// filesystem event fires but the bytes didn't change.
func Fingerprint(data []byte, windowSize int) Signature {
	if windowSize <= 0 {
		windowSize = 1
	}
	if windowSize > len(data) {
		windowSize = len(data)
	}
	if windowSize == 0 {
		return Signature(initial)
	}

	d := newDigest(windowSize)
	_, _ = d.Write(data)
	return Signature(d.Sum32())
}
