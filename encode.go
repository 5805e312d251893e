package zipper

import (
	"bytes"

	"github.com/zissis-pap/zipper/refindex"
	"github.com/zissis-pap/zipper/rle"
	"github.com/zissis-pap/zipper/zerr"
)

const maxOffset = 1<<24 - 1 // largest 3-byte offset storable in a COPY_OFFSET record
const maxRunBlocks = 256    // COPY_RUN covers at most this many blocks (n stored as n-1, one byte)

// Encode produces a patch P such that Decode(reference, P) reproduces
// target bit-for-bit. blockSize must be a positive multiple of 8, no
// greater than 255; any other value fails with zerr.InvalidBlockSize.
//
// Encode walks target in blockSize-byte blocks, consults a reference
// index built once up front, and for each block picks the cheapest of
// COPY_SAME/COPY_RUN, COPY_OFFSET, XOR_RLE, or RAW, per spec.md §4.3.
// A final block shorter than blockSize is always emitted as PARTIAL; a
// target whose length is a multiple of blockSize gets no PARTIAL record.
func Encode(reference, target []byte, blockSize int) ([]byte, error) {
	if blockSize <= 0 || blockSize%8 != 0 || blockSize > 255 {
		return nil, zerr.Newf(zerr.InvalidBlockSize,
			"block size %d must be a positive multiple of 8, at most 255", blockSize)
	}
	b := blockSize

	idx := refindex.Build(reference, b)

	out := make([]byte, 0, len(target)/4+8)
	out = append(out, byte(b))

	p := 0
	for p+b <= len(target) {
		runLen := matchRunLength(reference, target, p, b)
		if runLen > 0 {
			n := runLen - 1
			if n == 0 {
				out = copySameRecord{}.appendTo(out)
			} else {
				out = copyRunRecord{n: byte(n)}.appendTo(out)
			}
			p += runLen * b
			continue
		}

		rec := chooseRecord(reference, target, p, b, idx)
		out = rec.appendTo(out)
		p += b
	}

	if p < len(target) {
		out = partialRecord{data: target[p:]}.appendTo(out)
	}

	trailer := checksumTrailer(target)
	out = append(out, trailer[:]...)
	return out, nil
}

// matchRunLength reports how many consecutive blockSize blocks starting
// at p same-position-match the reference, capped at maxRunBlocks. It
// returns 0 if even the first block at p doesn't match.
func matchRunLength(reference, target []byte, p, blockSize int) int {
	run := 0
	for run < maxRunBlocks {
		blockStart := p + run*blockSize
		blockEnd := blockStart + blockSize
		if blockEnd > len(reference) || blockEnd > len(target) {
			break
		}
		if !bytes.Equal(reference[blockStart:blockEnd], target[blockStart:blockEnd]) {
			break
		}
		run++
	}
	return run
}

// chooseRecord picks the cheapest record for a single full block of
// target at offset p that failed the same-position match, per the
// priority order in spec.md §4.3 step 4: COPY_OFFSET, then XOR_RLE,
// then RAW.
func chooseRecord(reference, target []byte, p, blockSize int, idx *refindex.Index) record {
	block := target[p : p+blockSize]

	// Candidates are gathered in priority order (offset, XOR, RAW) so
	// that a cost tie is broken by picking the earliest one still in
	// the list, per spec.md §4.3 step 4.
	type candidate struct {
		rec  record
		cost int
	}
	candidates := make([]candidate, 0, 3)

	if offset, ok := idx.Lookup(block); ok && offset != p && offset <= maxOffset {
		rec := copyOffsetRecord{offset: uint32(offset)}
		candidates = append(candidates, candidate{rec, rec.cost()})
	}

	if p+blockSize <= len(reference) {
		refBlock := reference[p : p+blockSize]
		delta := make([]byte, blockSize)
		for i := 0; i < blockSize; i++ {
			delta[i] = refBlock[i] ^ block[i]
		}
		payload := rle.Encode(delta)
		if len(payload) <= 255 && 1+len(payload) < blockSize+1 {
			rec := xorRLERecord{payload: payload}
			candidates = append(candidates, candidate{rec, rec.cost()})
		}
	}

	raw := rawRecord{data: block}
	candidates = append(candidates, candidate{raw, raw.cost()})

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.cost < best.cost {
			best = c
		}
	}
	return best.rec
}
