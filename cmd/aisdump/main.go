package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aisgo/go-ais"
	"github.com/aisgo/go-ais/internal/utils"
	"github.com/aisgo/go-ais/transport"
)

// lineReader is the minimal contract every transport collaborator in this
// repo satisfies (spec §6's "reader collaborator delivers one sentence per
// call").
type lineReader interface {
	ReadLine() ([]byte, error)
	Close() error
}

func main() {
	deviceAddr := flag.String("device", "/dev/ttyUSB0", "path to serial AIS receiver device")
	inputMode := flag.String("input", "serial", "input transport: serial, tcp, udp, stdin")
	baudRate := flag.Int("baud", 38400, "serial device baud rate")
	noDecode := flag.Bool("raw-only", false, "only frame sentences, skip message decoding")
	outputFormat := flag.String("output-format", "json", "output format: json, raw")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch *outputFormat {
	case "json", "raw":
	default:
		log.Fatal("unknown output format given\n")
	}

	reader, err := openReader(ctx, *inputMode, *deviceAddr, *baudRate)
	if err != nil {
		log.Fatal(err)
	}
	if reader != nil {
		defer reader.Close()
	}
	go func() {
		<-ctx.Done()
		if reader != nil {
			reader.Close()
		}
	}()

	fmt.Printf("# Starting to read: %v (%v)\n", *deviceAddr, *inputMode)

	parser := ais.NewParser(ais.ParserOptions{Decode: !*noDecode})

	msgCount := uint64(0)
	errorCount := uint64(0)
	for {
		line, err := nextLine(reader)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			errorCount++
			fmt.Printf("# Error reading line: %v\n", err)
			if errorCount > 20 {
				break
			}
			continue
		}
		if len(line) == 0 {
			continue
		}

		result, err := parser.Parse(line)
		if err != nil {
			errorCount++
			fmt.Printf("# Error parsing sentence %q: %v\n", utils.FormatSpaces(line), err)
			continue
		}
		msgCount++
		if !result.Complete {
			continue
		}

		switch *outputFormat {
		case "json":
			b, err := json.Marshal(result.Sentence)
			if err != nil {
				fmt.Printf("# Error marshaling sentence: %v\n", err)
				continue
			}
			fmt.Printf("%s\n", b)
		case "raw":
			fmt.Printf("%s\n", result.Sentence.ArmoredPayload)
		}
	}
	fmt.Printf("# Finishing, number of sentences processed: %v, errors: %v\n", msgCount, errorCount)
}

func openReader(ctx context.Context, mode, device string, baud int) (lineReader, error) {
	switch mode {
	case "serial":
		return transport.OpenSerial(transport.SerialConfig{
			Device:      device,
			BaudRate:    baud,
			ReadTimeout: 100 * time.Millisecond,
		})
	case "tcp":
		return transport.DialTCP(ctx, device)
	case "udp":
		return transport.ListenUDP(device)
	case "stdin":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown input mode %q", mode)
	}
}

var stdinScanner *bufio.Scanner

func nextLine(reader lineReader) ([]byte, error) {
	if reader != nil {
		return reader.ReadLine()
	}
	if stdinScanner == nil {
		stdinScanner = bufio.NewScanner(os.Stdin)
	}
	if stdinScanner.Scan() {
		return []byte(strings.TrimRight(stdinScanner.Text(), "\r")), nil
	}
	if err := stdinScanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}
