// Command emojicode converts emoji code-point sequences between their hex
// (unified) and decimal forms and describes the emoji they encode.
//
// Usage:
//
//	emojicode [-v] [-json] hex2dec [unified ...]   1f600-1f3fb -> 128512-127995
//	emojicode [-v] [-json] dec2hex [code ...]      128512-127995 -> 1f600-1f3fb
//	emojicode [-v] [-json] describe [-from hex|dec|text] [value ...]
//	emojicode version
//
// If no value is given, values are read from stdin, one per line.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/emojicode"
	"github.com/gogpu/emojicode/emoji"
)

const version = "0.1.0"

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// result is one converted or described value.
type result struct {
	Input       string   `json:"input"`
	Output      string   `json:"output,omitempty"`
	Unified     string   `json:"unified,omitempty"`
	Decimal     string   `json:"decimal,omitempty"`
	Text        string   `json:"text,omitempty"`
	Type        string   `json:"type,omitempty"`
	SkinTone    string   `json:"skinTone,omitempty"`
	Flag        string   `json:"flag,omitempty"`
	Subdivision string   `json:"subdivision,omitempty"`
	Normalized  string   `json:"normalized,omitempty"`
	Names       []string `json:"names,omitempty"`
	Error       string   `json:"error,omitempty"`
}

type options struct {
	json   bool
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("emojicode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log rejected tokens to stderr")
	jsonOut := fs.Bool("json", false, "print one JSON object per value")
	fs.Usage = func() { printUsage(stderr) }
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if *verbose {
		emojicode.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer emojicode.SetLogger(nil)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		printUsage(stderr)
		return exitUsage
	}
	opts := options{json: *jsonOut, stdout: stdout, stderr: stderr}

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "hex2dec":
		return convertAll(opts, values(cmdArgs, stdin), emojicode.HexToDecimal)
	case "dec2hex":
		return convertAll(opts, values(cmdArgs, stdin), emojicode.DecimalToHex)
	case "describe":
		return cmdDescribe(opts, cmdArgs, stdin)
	case "version":
		fmt.Fprintf(stdout, "emojicode %s\n", version)
		return exitOK
	case "help", "-h", "--help":
		printUsage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "emojicode: unknown command: %s\n", cmd)
		printUsage(stderr)
		return exitUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: emojicode [-v] [-json] <command> [value ...]

Commands:
  hex2dec    convert unified hex identifiers to decimal codes
  dec2hex    convert decimal codes to unified hex identifiers
  describe   classify an emoji and list its code point names
             usage: describe [-from hex|dec|text] [value ...]
             (default hex; -from must come before the values)
  version    print version info

If no value is given, values are read from stdin, one per line.
`)
}

// values yields args, or the lines of stdin when args is empty.
func values(args []string, stdin io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if len(args) > 0 {
			for _, a := range args {
				if !yield(a, nil) {
					return
				}
			}
			return
		}
		sc := bufio.NewScanner(stdin)
		for sc.Scan() {
			if !yield(strings.TrimRight(sc.Text(), "\r"), nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield("", fmt.Errorf("read stdin: %w", err))
		}
	}
}

func convertAll(opts options, in iter.Seq2[string, error], convert func(string) (string, error)) int {
	code := exitOK
	for v, err := range in {
		if err != nil {
			fmt.Fprintf(opts.stderr, "emojicode: %v\n", err)
			return exitFail
		}
		out, err := convert(v)
		res := result{Input: v, Output: out}
		if err != nil {
			res.Error = err.Error()
			code = exitFail
		}
		emit(opts, res, out)
	}
	return code
}

func cmdDescribe(opts options, args []string, stdin io.Reader) int {
	fs := flag.NewFlagSet("describe", flag.ContinueOnError)
	fs.SetOutput(opts.stderr)
	from := fs.String("from", "hex", "input form: hex, dec or text")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	// flag stops at the first value, so a later flag would be read as one.
	for _, a := range fs.Args() {
		if len(a) > 1 && strings.HasPrefix(a, "-") {
			fmt.Fprintf(opts.stderr, "emojicode describe: flag %s must come before the values\n", a)
			return exitUsage
		}
	}

	var decode func(string) (emoji.Sequence, error)
	switch *from {
	case "hex":
		decode = emoji.FromUnified
	case "dec":
		decode = emoji.FromDecimal
	case "text":
		decode = func(s string) (emoji.Sequence, error) { return emoji.Classify([]rune(s)) }
	default:
		fmt.Fprintf(opts.stderr, "emojicode describe: unknown -from %q (want hex, dec or text)\n", *from)
		return exitUsage
	}

	code := exitOK
	for v, err := range values(fs.Args(), stdin) {
		if err != nil {
			fmt.Fprintf(opts.stderr, "emojicode: %v\n", err)
			return exitFail
		}
		seq, err := decode(v)
		if err != nil {
			emit(opts, result{Input: v, Error: err.Error()}, "")
			code = exitFail
			continue
		}
		res := result{
			Input:   v,
			Unified: seq.Unified(),
			Decimal: seq.Decimal(),
			Text:    seq.String(),
			Type:    seq.Type.String(),
			Names:   seq.Names(),
		}
		if seq.HasModifier() {
			res.SkinTone = seq.SkinTone().String()
		}
		res.Flag = emoji.FlagCode(seq)
		res.Subdivision = emoji.TagCode(seq)
		if norm := emoji.Normalize(seq).Unified(); norm != res.Unified {
			res.Normalized = norm
		}
		emit(opts, res, describeText(res))
	}
	return code
}

func describeText(res result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "unified:  %s\n", res.Unified)
	fmt.Fprintf(&b, "decimal:  %s\n", res.Decimal)
	fmt.Fprintf(&b, "text:     %s\n", res.Text)
	fmt.Fprintf(&b, "type:     %s\n", res.Type)
	if res.SkinTone != "" {
		fmt.Fprintf(&b, "skin:     %s\n", res.SkinTone)
	}
	if res.Flag != "" {
		fmt.Fprintf(&b, "flag:     %s\n", res.Flag)
	}
	if res.Subdivision != "" {
		fmt.Fprintf(&b, "region:   %s\n", res.Subdivision)
	}
	if res.Normalized != "" {
		fmt.Fprintf(&b, "normal:   %s\n", res.Normalized)
	}
	fmt.Fprintf(&b, "names:    %s", strings.Join(res.Names, ", "))
	return b.String()
}

// emit prints res as JSON or as text. Failures go to stderr in text mode.
func emit(opts options, res result, text string) {
	if opts.json {
		if err := json.NewEncoder(opts.stdout).Encode(res); err != nil {
			fmt.Fprintf(opts.stderr, "emojicode: encode: %v\n", err)
		}
		return
	}
	if res.Error != "" {
		fmt.Fprintln(opts.stderr, res.Error)
		return
	}
	fmt.Fprintln(opts.stdout, text)
}
