package refindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_AlignedOffsetWinsTie(t *testing.T) {
	// "ABAB" with blockSize 2: "AB" occurs aligned at 0 and unaligned
	// at... actually construct a clearer collision: reference where
	// the same 2-byte key appears at an aligned offset and, later, at
	// an unaligned offset too.
	reference := []byte("ABXAB") // "AB" at 0 (aligned) and at 3 (unaligned)
	idx := Build(reference, 2)

	offset, ok := idx.Lookup([]byte("AB"))
	assert.True(t, ok)
	assert.Equal(t, 0, offset)
}

func TestBuild_UnalignedOnlyKeyStillFound(t *testing.T) {
	reference := []byte("XYAB") // "YA" only appears unaligned at offset 1
	idx := Build(reference, 2)

	offset, ok := idx.Lookup([]byte("YA"))
	assert.True(t, ok)
	assert.Equal(t, 1, offset)
}

func TestBuild_EarliestOffsetKeptAmongAlignedDuplicates(t *testing.T) {
	reference := []byte("ABAB")
	idx := Build(reference, 2)

	offset, ok := idx.Lookup([]byte("AB"))
	assert.True(t, ok)
	assert.Equal(t, 0, offset)
}

func TestBuild_NoMatchForUnseenKey(t *testing.T) {
	idx := Build([]byte("AAAA"), 2)
	_, ok := idx.Lookup([]byte("ZZ"))
	assert.False(t, ok)
}

func TestBuild_ReferenceShorterThanBlockSize(t *testing.T) {
	idx := Build([]byte("AB"), 4)
	assert.Equal(t, 0, idx.Len())
}
