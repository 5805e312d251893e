// Package refindex builds the reference-blob lookup map the encoder
// consults when a block doesn't match at its own output offset. It plays
// the same role as carrybasket's BlockCache, but keyed on raw B-byte
// slices of the reference blob rather than content hashes, and with the
// aligned-offset-wins tie-break spec.md §4.2 requires.
package refindex

// Index maps every blockSize-byte slice of a reference blob to the
// earliest offset at which it occurs, preferring aligned offsets
// (multiples of blockSize) on collision.
type Index struct {
	blockSize int
	offsets   map[string]int
}

// Build scans reference in two passes: aligned offsets first, then
// unaligned offsets, each pass inserting a key only if it is still
// absent. This keeps the earliest offset per key and lets pass 1's
// aligned offsets win ties against pass 2's unaligned ones.
func Build(reference []byte, blockSize int) *Index {
	idx := &Index{
		blockSize: blockSize,
		offsets:   make(map[string]int),
	}

	if blockSize <= 0 || len(reference) < blockSize {
		return idx
	}

	lastStart := len(reference) - blockSize

	for i := 0; i <= lastStart; i += blockSize {
		key := string(reference[i : i+blockSize])
		if _, ok := idx.offsets[key]; !ok {
			idx.offsets[key] = i
		}
	}

	for i := 0; i <= lastStart; i++ {
		if i%blockSize == 0 {
			continue
		}
		key := string(reference[i : i+blockSize])
		if _, ok := idx.offsets[key]; !ok {
			idx.offsets[key] = i
		}
	}

	return idx
}

// Lookup returns the earliest offset at which key occurs in the
// reference blob this Index was built from, with the Build-time
// aligned-offset preference baked into which offset is stored.
func (idx *Index) Lookup(key []byte) (int, bool) {
	offset, ok := idx.offsets[string(key)]
	return offset, ok
}

// Len reports how many distinct blockSize-byte keys were indexed.
func (idx *Index) Len() int { return len(idx.offsets) }
