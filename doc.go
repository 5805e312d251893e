// Package zipper implements a block-oriented binary delta codec: Encode
// produces a compact patch describing how to turn a reference blob into
// a target blob, and Decode replays that patch against the same
// reference to reproduce the target exactly, verifying a CRC-32 trailer
// along the way.
//
// The wire format, the six record kinds, and the record-selection rules
// are described package by package: record.go holds the record sum
// type, rle/ the inner literal/repeat codec used by XOR_RLE payloads,
// and refindex/ the reference-block lookup table the encoder consults.
package zipper
