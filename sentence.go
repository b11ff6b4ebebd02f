package ais

import (
	"fmt"
	"strconv"
)

// TalkerID is the two-character prefix identifying the source device class
// of a sentence (spec §3). The closed set below covers every talker id in
// common AIS use; anything else decodes to TalkerUnknown with TalkerIDRaw set.
type TalkerID string

const (
	TalkerAB      TalkerID = "AB"
	TalkerAD      TalkerID = "AD"
	TalkerAI      TalkerID = "AI"
	TalkerAN      TalkerID = "AN"
	TalkerAR      TalkerID = "AR"
	TalkerAS      TalkerID = "AS"
	TalkerAT      TalkerID = "AT"
	TalkerAX      TalkerID = "AX"
	TalkerBS      TalkerID = "BS"
	TalkerSA      TalkerID = "SA"
	TalkerUnknown TalkerID = ""
)

func parseTalkerID(raw string) TalkerID {
	switch TalkerID(raw) {
	case TalkerAB, TalkerAD, TalkerAI, TalkerAN, TalkerAR, TalkerAS, TalkerAT, TalkerAX, TalkerBS, TalkerSA:
		return TalkerID(raw)
	default:
		return TalkerUnknown
	}
}

// ReportKind is the three-character sentence formatter (spec §3): VDM for a
// received AIS message, VDO for an own-ship transmission, Unknown otherwise.
type ReportKind string

const (
	ReportVDM     ReportKind = "VDM"
	ReportVDO     ReportKind = "VDO"
	ReportUnknown ReportKind = ""
)

func parseReportKind(raw string) ReportKind {
	switch ReportKind(raw) {
	case ReportVDM, ReportVDO:
		return ReportKind(raw)
	default:
		return ReportUnknown
	}
}

// Sentence is a single parsed NMEA 0183 AIS sentence (spec §3, C7). Message
// is nil until the top-level Parser has decoded the reassembled payload.
type Sentence struct {
	TalkerID       TalkerID
	TalkerIDRaw    string
	ReportKind     ReportKind
	ReportKindRaw  string
	FragmentCount  int
	FragmentIndex  int
	GroupID        *int
	Channel        string
	ArmoredPayload []byte
	FillBits       int
	Message        any
}

// HasMore reports whether further fragments are expected after this one.
func (s Sentence) HasMore() bool { return s.FragmentIndex < s.FragmentCount }

// IsFragmented reports whether this sentence is part of a multi-sentence group.
func (s Sentence) IsFragmented() bool { return s.FragmentCount > 1 }

// parseSentence implements C7: it validates the grammar and checksum of one
// NMEA 0183 line (tag block, if any, already stripped by the caller) and
// returns a Sentence with Message left nil. It does not touch the armor
// codec or message layer.
//
// Field layout after the leading '!'/'$', comma-separated:
// TTRRR, F, I, [GID], [C], ARMORED, FB  — 7 fields total (spec §4.7/§6).
func parseSentence(line []byte) (Sentence, error) {
	if len(line) == 0 {
		return Sentence{}, fmt.Errorf("ais: empty sentence: %w", ErrFrame)
	}

	switch line[0] {
	case '!', '$':
	default:
		return Sentence{}, fmt.Errorf("ais: missing leading '!' or '$': %w", ErrFrame)
	}

	star := -1
	for i := len(line) - 1; i >= 0; i-- {
		if line[i] == '*' {
			star = i
			break
		}
	}
	if star < 0 || star+3 != len(line) {
		return Sentence{}, fmt.Errorf("ais: missing or misplaced checksum marker: %w", ErrFrame)
	}

	declared, err := strconv.ParseUint(string(line[star+1:star+3]), 16, 8)
	if err != nil {
		return Sentence{}, fmt.Errorf("ais: invalid checksum digits: %w", ErrFrame)
	}

	var computed byte
	for _, b := range line[1:star] {
		computed ^= b
	}
	if byte(declared) != computed {
		return Sentence{}, &ChecksumError{Expected: byte(declared), Found: computed}
	}

	fields := splitFields(line[1:star])
	if len(fields) != 7 {
		return Sentence{}, fmt.Errorf("ais: expected 7 comma-separated fields, found %d: %w", len(fields), ErrFrame)
	}

	head := fields[0]
	if len(head) < 5 {
		return Sentence{}, fmt.Errorf("ais: sentence head too short: %w", ErrFrame)
	}
	talkerRaw := string(head[0:2])
	reportRaw := string(head[2:5])

	fragCount, err := parseDigitField(fields[1])
	if err != nil || fragCount < 1 {
		return Sentence{}, fmt.Errorf("ais: invalid fragment count: %w", ErrFrame)
	}
	fragIndex, err := parseDigitField(fields[2])
	if err != nil || fragIndex < 1 {
		return Sentence{}, fmt.Errorf("ais: invalid fragment index: %w", ErrFrame)
	}
	if fragIndex > fragCount {
		return Sentence{}, fmt.Errorf("ais: fragment index %d exceeds fragment count %d: %w", fragIndex, fragCount, ErrFrame)
	}

	var groupID *int
	if len(fields[3]) > 0 {
		g, err := parseDigitField(fields[3])
		if err != nil {
			return Sentence{}, fmt.Errorf("ais: invalid group id: %w", ErrFrame)
		}
		groupID = &g
	}

	channel := string(fields[4])
	if len(channel) > 1 {
		return Sentence{}, fmt.Errorf("ais: channel field must be zero or one character: %w", ErrFrame)
	}

	armored := make([]byte, len(fields[5]))
	copy(armored, fields[5])

	fillField := fields[6]
	if len(fillField) != 1 || fillField[0] < '0' || fillField[0] > '9' {
		return Sentence{}, fmt.Errorf("ais: invalid fill-bit digit: %w", ErrFrame)
	}
	fillBits := int(fillField[0] - '0')
	if fillBits >= 6 {
		return Sentence{}, fmt.Errorf("ais: fill-bit count %d >= 6: %w", fillBits, ErrFrame)
	}

	return Sentence{
		TalkerID:       parseTalkerID(talkerRaw),
		TalkerIDRaw:    talkerRaw,
		ReportKind:     parseReportKind(reportRaw),
		ReportKindRaw:  reportRaw,
		FragmentCount:  fragCount,
		FragmentIndex:  fragIndex,
		GroupID:        groupID,
		Channel:        channel,
		ArmoredPayload: armored,
		FillBits:       fillBits,
	}, nil
}

func splitFields(b []byte) [][]byte {
	var fields [][]byte
	start := 0
	for i := 0; i <= len(b); i++ {
		if i == len(b) || b[i] == ',' {
			fields = append(fields, b[start:i])
			start = i + 1
		}
	}
	return fields
}

func parseDigitField(b []byte) (int, error) {
	if len(b) != 1 || b[0] < '0' || b[0] > '9' {
		return 0, fmt.Errorf("not a single digit")
	}
	return int(b[0] - '0'), nil
}
