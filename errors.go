package ais

import (
	"errors"
	"fmt"
)

// Sentence framing and fragment-reassembly error sentinels (spec §7, C10).
// Message-layer errors (ArmorOutOfRange, UnexpectedEnd, TextDecode,
// UnimplementedType) live closer to their producers in internal/bitstream
// and messages and are not re-exported here; Parse wraps armor errors with
// %w and returns dispatch errors unchanged, so errors.Is works against the
// producing package's sentinels.
var (
	// ErrFrame reports a malformed sentence: a missing comma, a missing '*',
	// a non-digit where a digit is required, or a fill-bit count >= 6.
	ErrFrame = errors.New("ais: malformed sentence frame")

	// ErrFragmentSequence reports a group-id mismatch, a skipped fragment
	// index, or a new fragment-index-1 sentence arriving mid-group.
	ErrFragmentSequence = errors.New("ais: fragment sequence error")
)

// ChecksumError reports a sentence or tag-block checksum mismatch, carrying
// both the declared and computed values (spec §7 ChecksumMismatch{expected,
// found}).
type ChecksumError struct {
	Expected byte
	Found    byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("ais: checksum mismatch: expected %02X, found %02X", e.Expected, e.Found)
}

// Is allows errors.Is(err, ErrChecksumMismatch) style sentinel comparisons
// without callers needing to type-assert *ChecksumError directly.
func (e *ChecksumError) Is(target error) bool {
	_, ok := target.(*ChecksumError)
	return ok
}

// ErrChecksumMismatch is a zero-value sentinel usable with errors.Is; the
// concrete *ChecksumError returned by the framer carries the actual values.
var ErrChecksumMismatch = &ChecksumError{}
