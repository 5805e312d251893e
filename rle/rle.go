// Package rle implements the literal/repeat run-length codec used inside
// XOR_RLE patch records. It has no knowledge of the patch format; it just
// moves bytes in and out of the wire format described in spec.md §4.1.
package rle

import "github.com/zissis-pap/zipper/zerr"

const (
	maxLiteralRun = 128
	maxRepeatRun  = 129
	minRepeatRun  = 3
)

// Encode run-length encodes data into a sequence of literal and repeat
// segments. A maximal run of 3 or more identical bytes is emitted as one
// or more repeat segments (each capped at 129 bytes); everything else
// accumulates into literal segments capped at 128 bytes.
func Encode(data []byte) []byte {
	out := make([]byte, 0, len(data))
	i := 0
	n := len(data)

	for i < n {
		runLen := 1
		for i+runLen < n && data[i+runLen] == data[i] && runLen < maxRepeatRun {
			runLen++
		}

		if runLen >= minRepeatRun {
			out = append(out, 0x80|byte(runLen-2), data[i])
			i += runLen
			continue
		}

		litStart := i
		litLen := 1
		i++
		for litLen < maxLiteralRun && i < n {
			if i+2 < n && data[i] == data[i+1] && data[i] == data[i+2] {
				break
			}
			litLen++
			i++
		}
		out = append(out, byte(litLen-1))
		out = append(out, data[litStart:litStart+litLen]...)
	}

	return out
}

// Decode reverses Encode, producing exactly expectedLen bytes. It fails
// with zerr.MalformedPatch on underrun (a segment reads past the end of
// data) or overrun (more than expectedLen bytes would be produced).
func Decode(data []byte, expectedLen int) ([]byte, error) {
	out := make([]byte, 0, expectedLen)
	i := 0

	for i < len(data) {
		ctrl := data[i]
		i++

		var count int
		if ctrl&0x80 != 0 {
			count = int(ctrl&0x7f) + 2
			if i >= len(data) {
				return nil, zerr.New(zerr.MalformedPatch, "rle: repeat segment missing its byte")
			}
			if len(out)+count > expectedLen {
				return nil, zerr.New(zerr.MalformedPatch, "rle: repeat segment overruns expected length")
			}
			b := data[i]
			for k := 0; k < count; k++ {
				out = append(out, b)
			}
			i++
		} else {
			count = int(ctrl) + 1
			if i+count > len(data) {
				return nil, zerr.New(zerr.MalformedPatch, "rle: literal segment truncated")
			}
			if len(out)+count > expectedLen {
				return nil, zerr.New(zerr.MalformedPatch, "rle: literal segment overruns expected length")
			}
			out = append(out, data[i:i+count]...)
			i += count
		}
	}

	if len(out) != expectedLen {
		return nil, zerr.Newf(zerr.MalformedPatch, "rle: decoded %d bytes, expected %d", len(out), expectedLen)
	}
	return out, nil
}
