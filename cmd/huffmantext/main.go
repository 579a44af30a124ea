// Command huffmantext Huffman-encodes its text argument, prints the encoded
// bit stream, and decodes it again with the same tree.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	logging "github.com/op/go-logging"

	huffman "github.com/chronos-tachyon/huffmantext"
)

const progName = "huffmantext"
const usageMessageRaw = `
Usage: huffmantext [-v] [-table] [-hex] TEXT...

Encodes TEXT (the arguments joined by single spaces), writes the encoded
bit stream to standard output, then decodes it and checks that the result
matches TEXT.

Options:
  -v      log at DEBUG level
  -table  dump the code table
  -hex    also print the stream packed into bytes, as hex
`

var log = logging.MustGetLogger(progName)

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

func startLogging(verbose bool) {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{color:bold}%{level:6s}%{color:reset} %{module:-12s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}
	logging.SetBackend(leveled)
}

func main() {
	flags := flag.NewFlagSet(progName, flag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usageMessage())
	}
	verbose := flags.Bool("v", false, "log at DEBUG level")
	dumpTable := flags.Bool("table", false, "dump the code table")
	showHex := flags.Bool("hex", false, "print the packed stream as hex")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		usageErrorf("%v", err)
	}
	if flags.NArg() == 0 {
		usageErrorf("no text given")
	}

	startLogging(*verbose)

	text := strings.Join(flags.Args(), " ")
	enc, err := huffman.Encode(text)
	if err != nil {
		exitError(err)
	}

	if *dumpTable {
		if _, err := enc.Table.Dump(os.Stdout); err != nil {
			exitError(err)
		}
	}

	fmt.Println(enc.Stream)
	if *showHex {
		fmt.Printf("%s (%d bits)\n", hex.EncodeToString(enc.Stream.Bytes()), enc.Stream.Len())
	}

	decoded, err := huffman.Decode(enc.Stream, enc.Root)
	if err != nil {
		exitError(err)
	}
	if decoded != text {
		exitError(fmt.Errorf("round trip mismatch: got %q", decoded))
	}
	log.Infof("%d symbols, %d bits (%d bits as UTF-8)", len([]rune(text)), enc.Stream.Len(), 8*len(text))
}
