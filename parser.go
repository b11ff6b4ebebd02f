// Package ais implements an AIS (Automatic Identification System) decoder
// for NMEA 0183 transport: sentence framing, optional tag-block metadata,
// multi-sentence fragment reassembly, 6-bit armor decoding and dispatch into
// the typed message records in package messages. It mirrors the shape of
// the teacher's root nmea package: a stateful Parser sitting on top of a
// stateless framer and a small reassembly state machine, fed lines by a
// transport collaborator.
package ais

import (
	"fmt"

	"github.com/aisgo/go-ais/internal/bitstream"
	"github.com/aisgo/go-ais/messages"
)

// ParserOptions configures a Parser (spec §4.10/§6). The zero value is
// usable: tag blocks are parsed when present, but Decode is false, so
// sentences are framed and not decoded. DefaultParserOptions turns decoding on.
type ParserOptions struct {
	// Decode controls whether a completed sentence's payload is run through
	// the armor codec and message dispatcher. If false, Parse returns the
	// framed Sentence without a Message attached.
	Decode bool
}

// DefaultParserOptions matches the teacher's zero-config constructor
// convention (e.g. canboat.NewDecoder's DecoderConfig{}) - decoding on by
// default, since that is the common case for a caller of this package.
func DefaultParserOptions() ParserOptions {
	return ParserOptions{Decode: true}
}

// Parser is the stateful top-level object described in spec §4.10 (C11): it
// owns one reassembler instance and exposes a single Parse method. Not safe
// for concurrent use - construct one Parser per logical stream, per spec §5.
type Parser struct {
	opts ParserOptions
	asm  reassembler
}

// NewParser constructs a Parser with the given options.
func NewParser(opts ParserOptions) *Parser {
	return &Parser{opts: opts}
}

// ParseResult is returned by Parser.Parse. Complete reports whether the
// sentence (and any group it belonged to) has now fully arrived; Sentence
// is populated either way (spec §4.10's Complete/Incomplete variants).
type ParseResult struct {
	Complete bool
	Sentence Sentence
	TagBlock *TagBlock
}

// Parse consumes one physical line (no trailing newline, per §6's reader
// collaborator contract) and advances the parser's reassembly state. A
// standalone single-fragment sentence always reports Complete immediately;
// a multi-fragment group reports Complete only once its final fragment has
// arrived, at which point Sentence.ArmoredPayload holds the concatenation
// of every fragment in the group and Sentence.Message (if opts.Decode) the
// decoded record.
func (p *Parser) Parse(line []byte) (ParseResult, error) {
	var tb *TagBlock
	body := line
	if tagBytes, rest, ok := splitTagBlock(line); ok {
		parsed, err := parseTagBlock(tagBytes)
		if err != nil {
			return ParseResult{}, err
		}
		tb = &parsed
		body = rest
	}

	sentence, err := parseSentence(body)
	if err != nil {
		return ParseResult{}, err
	}

	payload, fillBits, complete, err := p.asm.feed(sentence)
	if err != nil {
		return ParseResult{}, err
	}
	if !complete {
		return ParseResult{Complete: false, Sentence: sentence, TagBlock: tb}, nil
	}

	sentence.ArmoredPayload = payload
	sentence.FillBits = fillBits

	if p.opts.Decode {
		msg, err := decodePayload(payload, fillBits)
		if err != nil {
			return ParseResult{}, err
		}
		sentence.Message = msg
	}

	return ParseResult{Complete: true, Sentence: sentence, TagBlock: tb}, nil
}

func decodePayload(armored []byte, fillBits int) (messages.Message, error) {
	raw, err := bitstream.Unarmor(armored, fillBits)
	if err != nil {
		return nil, fmt.Errorf("ais: unarmor payload: %w", err)
	}
	msg, err := messages.Dispatch(raw)
	if err != nil {
		return nil, err
	}
	return msg, nil
}
