package ais

import (
	"fmt"
	"strconv"
	"strings"
)

// TagBlock is the optional NMEA tag-block metadata preceding a sentence
// (spec §3/§4.9): `\key:value,...*HH\`. A zero-value TagBlock (all fields
// absent) represents "no tag block present".
type TagBlock struct {
	ReceiverTimestamp *int64
	Destination       string
	LineCounter       *int
	RelativeTime      *int
	Source            string
	Text              string
}

// splitTagBlock pulls a leading `\...\` tag block off line, if present, and
// returns the remainder alongside it. ok is false when line does not start
// with a tag block at all (not an error condition - most lines lack one).
func splitTagBlock(line []byte) (tagBlockBytes []byte, rest []byte, ok bool) {
	if len(line) == 0 || line[0] != '\\' {
		return nil, line, false
	}
	for i := 1; i < len(line); i++ {
		if line[i] == '\\' {
			return line[1:i], line[i+1:], true
		}
	}
	return nil, line, false
}

// parseTagBlock implements C9: split at the last '*', verify the XOR
// checksum of everything before it, then parse the comma-separated
// key:value pairs. Unknown keys are ignored; an empty block (no content
// before '*') yields a zero-value TagBlock.
func parseTagBlock(raw []byte) (TagBlock, error) {
	star := -1
	for i := len(raw) - 1; i >= 0; i-- {
		if raw[i] == '*' {
			star = i
			break
		}
	}
	if star < 0 || star+3 != len(raw) {
		return TagBlock{}, fmt.Errorf("ais: tag block missing checksum: %w", ErrFrame)
	}

	declared, err := strconv.ParseUint(string(raw[star+1:star+3]), 16, 8)
	if err != nil {
		return TagBlock{}, fmt.Errorf("ais: tag block invalid checksum digits: %w", ErrFrame)
	}

	var computed byte
	for _, b := range raw[:star] {
		computed ^= b
	}
	if byte(declared) != computed {
		return TagBlock{}, &ChecksumError{Expected: byte(declared), Found: computed}
	}

	var tb TagBlock
	body := raw[:star]
	if len(body) == 0 {
		return tb, nil
	}

	for _, pair := range strings.Split(string(body), ",") {
		key, value, found := strings.Cut(pair, ":")
		if !found {
			continue
		}
		switch key {
		case "c":
			if ts, err := strconv.ParseInt(value, 10, 64); err == nil {
				tb.ReceiverTimestamp = &ts
			}
		case "d":
			tb.Destination = value
		case "n":
			if n, err := strconv.Atoi(value); err == nil {
				tb.LineCounter = &n
			}
		case "r":
			if r, err := strconv.Atoi(value); err == nil {
				tb.RelativeTime = &r
			}
		case "s":
			tb.Source = value
		case "t":
			tb.Text = value
		}
	}
	return tb, nil
}
