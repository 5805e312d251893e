package zipper

import (
	"bytes"

	"github.com/zissis-pap/zipper/rle"
	"github.com/zissis-pap/zipper/zerr"
)

// Decode parses patch (as produced by Encode) and replays its record
// stream against reference to reconstruct the original target blob,
// validating the trailing CRC-32 before returning.
func Decode(reference, patch []byte) ([]byte, error) {
	if len(patch) < 5 {
		return nil, zerr.Newf(zerr.TruncatedPatch,
			"patch is %d bytes, need at least 5 (header + CRC trailer)", len(patch))
	}

	blockSize := int(patch[0])
	if blockSize == 0 || blockSize%8 != 0 {
		return nil, zerr.Newf(zerr.InvalidBlockSize,
			"patch header declares block size %d, must be a positive multiple of 8", blockSize)
	}

	stream := patch[1 : len(patch)-4]
	expectedCRC := patch[len(patch)-4:]

	out := make([]byte, 0, len(stream))
	pos := 0
	for pos < len(stream) {
		t := stream[pos]
		pos++

		switch tag(t) {
		case tagCopySame:
			block, err := readReferenceBlock(reference, len(out), blockSize)
			if err != nil {
				return nil, err
			}
			out = append(out, block...)

		case tagCopyRun:
			if pos >= len(stream) {
				return nil, zerr.New(zerr.TruncatedPatch, "COPY_RUN record missing its count byte")
			}
			count := int(stream[pos]) + 1
			pos++
			for i := 0; i < count; i++ {
				block, err := readReferenceBlock(reference, len(out), blockSize)
				if err != nil {
					return nil, err
				}
				out = append(out, block...)
			}

		case tagCopyOffset:
			if pos+3 > len(stream) {
				return nil, zerr.New(zerr.TruncatedPatch, "COPY_OFFSET record missing its 3-byte offset")
			}
			offset := int(stream[pos])<<16 | int(stream[pos+1])<<8 | int(stream[pos+2])
			pos += 3
			block, err := readReferenceBlock(reference, offset, blockSize)
			if err != nil {
				return nil, err
			}
			out = append(out, block...)

		case tagXorRLE:
			if pos >= len(stream) {
				return nil, zerr.New(zerr.TruncatedPatch, "XOR_RLE record missing its length byte")
			}
			length := int(stream[pos])
			pos++
			if pos+length > len(stream) {
				return nil, zerr.New(zerr.TruncatedPatch, "XOR_RLE payload truncated")
			}
			payload := stream[pos : pos+length]
			pos += length

			delta, err := rle.Decode(payload, blockSize)
			if err != nil {
				return nil, err
			}
			refBlock, err := readReferenceBlock(reference, len(out), blockSize)
			if err != nil {
				return nil, err
			}
			block := make([]byte, blockSize)
			for i := 0; i < blockSize; i++ {
				block[i] = refBlock[i] ^ delta[i]
			}
			out = append(out, block...)

		case tagRaw:
			if pos+blockSize > len(stream) {
				return nil, zerr.New(zerr.TruncatedPatch, "RAW record truncated")
			}
			out = append(out, stream[pos:pos+blockSize]...)
			pos += blockSize

		case tagPartial:
			if pos >= len(stream) {
				return nil, zerr.New(zerr.TruncatedPatch, "PARTIAL record missing its length byte")
			}
			length := int(stream[pos])
			pos++
			if pos+length > len(stream) {
				return nil, zerr.New(zerr.TruncatedPatch, "PARTIAL payload truncated")
			}
			out = append(out, stream[pos:pos+length]...)
			pos += length

			if pos != len(stream) {
				return nil, zerr.New(zerr.TrailingData, "bytes remain in the record stream after PARTIAL")
			}

		default:
			return nil, zerr.Newf(zerr.UnknownTag, "unknown record tag 0x%02X", t)
		}
	}

	actual := checksumTrailer(out)
	if !bytes.Equal(actual[:], expectedCRC) {
		return nil, zerr.Newf(zerr.ChecksumMismatch,
			"reconstructed output CRC %x does not match trailer %x", actual, expectedCRC)
	}

	return out, nil
}

// readReferenceBlock returns blockSize bytes of reference starting at
// offset, failing with zerr.MalformedPatch if that range falls outside
// the reference blob.
func readReferenceBlock(reference []byte, offset, blockSize int) ([]byte, error) {
	if offset < 0 || offset+blockSize > len(reference) {
		return nil, zerr.Newf(zerr.MalformedPatch,
			"reference read [%d:%d] out of bounds for a %d-byte reference",
			offset, offset+blockSize, len(reference))
	}
	return reference[offset : offset+blockSize], nil
}
