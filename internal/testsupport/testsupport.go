// Package testsupport holds small test-only helpers, mirroring the teacher's
// own test_test package. No test file in this module imports it.
package testsupport

import "time"

// UTCTime creates an instance of time in UTC so tests behave the same
// regardless of the machine's local timezone.
func UTCTime(sec int64) time.Time {
	return time.Unix(sec, 0).In(time.UTC)
}

// MockReaderWriter replays a scripted sequence of reads, standing in for an
// io.Reader-based device; writes are accepted and discarded.
type MockReaderWriter struct {
	Reads     [][]byte
	Errs      []error
	readIndex int
}

func (m *MockReaderWriter) Read(p []byte) (int, error) {
	if m.readIndex >= len(m.Reads) {
		return 0, ErrNoMoreReads
	}
	data := m.Reads[m.readIndex]
	var err error
	if m.readIndex < len(m.Errs) {
		err = m.Errs[m.readIndex]
	}
	m.readIndex++
	n := copy(p, data)
	return n, err
}

func (m *MockReaderWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

// ErrNoMoreReads is returned once a MockReaderWriter's scripted reads are exhausted.
var ErrNoMoreReads = errNoMoreReads{}

type errNoMoreReads struct{}

func (errNoMoreReads) Error() string { return "testsupport: no more scripted reads" }
