// Package scanner launches the BLE scanner subprocess and exposes its
// standard output as an ordered stream of lines.
//
// The scanner itself is an external Python program (bleak-based) that
// prints one JSON status record per line. This package only owns the
// spawn contract: interpreter + script + forwarded args, the
// AIRSTATUS_* environment knobs, and line-buffered delivery. Protocol
// decoding stays in the scanner; record parsing lives in
// internal/record.
package scanner
