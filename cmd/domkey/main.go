// Package main is a line-oriented filter for browser keyboard events.
//
// It reads one JSON keyboard event per line on stdin, decodes each against
// a TOML key table, optionally filters through a Lua selector, and writes
// one normalized record (or selected message) per line on stdout.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/tidwall/sjson"

	"github.com/dshills/domkey/keyevent"
	"github.com/dshills/domkey/keylua"
	"github.com/dshills/domkey/keytable"
)

// Version information (set via ldflags during build).
var version = "dev"

type options struct {
	tablePath  string
	selectPath string
	watch      bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, ok := parseFlags()
	if !ok {
		return 2
	}

	translate, cleanup, err := newTranslate(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "domkey: %v\n", err)
		return 1
	}
	defer cleanup()

	dec := keyevent.NewDecoder(translate)

	decode, cleanupSel, err := newDecodeFunc(dec, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "domkey: %v\n", err)
		return 1
	}
	defer cleanupSel()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		msg, err := decode(line)
		switch {
		case errors.Is(err, keyevent.ErrIgnored):
			// Selector declined; drop silently.
		case err != nil:
			fmt.Fprintf(os.Stderr, "domkey: skipping event: %v\n", err)
		default:
			fmt.Fprintln(out, msg)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "domkey: reading stdin: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (options, bool) {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.tablePath, "table", "", "path to the TOML key code table (required)")
	flag.StringVar(&opts.selectPath, "select", "", "path to a Lua selector script")
	flag.BoolVar(&opts.watch, "watch", false, "reload the key table when the file changes")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("domkey %s\n", version)
		os.Exit(0)
	}
	if opts.tablePath == "" {
		fmt.Fprintln(os.Stderr, "domkey: -table is required")
		flag.Usage()
		return opts, false
	}
	return opts, true
}

// newTranslate builds the code-to-identifier translation, either from a
// one-shot table load or a live-reloading watcher.
func newTranslate(opts options) (keyevent.TranslateFunc, func(), error) {
	if opts.watch {
		w, err := keytable.NewWatcher(opts.tablePath, keytable.WatchOptions{
			OnError: func(err error) {
				fmt.Fprintf(os.Stderr, "domkey: reloading table: %v\n", err)
			},
		})
		if err != nil {
			return nil, nil, err
		}
		return w.Lookup, func() { _ = w.Close() }, nil
	}

	tbl, err := keytable.Load(opts.tablePath)
	if err != nil {
		return nil, nil, err
	}
	return tbl.Func(), func() {}, nil
}

// newDecodeFunc builds the per-line decode step: selector-filtered when a
// Lua script is given, plain record formatting otherwise.
func newDecodeFunc(dec *keyevent.Decoder, opts options) (func([]byte) (string, error), func(), error) {
	if opts.selectPath == "" {
		decode := func(data []byte) (string, error) {
			ev, err := dec.DecodeJSON(data)
			if err != nil {
				return "", err
			}
			return formatEvent(ev)
		}
		return decode, func() {}, nil
	}

	src, err := os.ReadFile(opts.selectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading selector script: %w", err)
	}
	sel, err := keylua.NewSelector(string(src))
	if err != nil {
		return nil, nil, err
	}
	return keyevent.ConsiderJSON(dec, sel.Func()), sel.Close, nil
}

// formatEvent renders a normalized record as a single-line JSON object.
// The key field is omitted entirely when the event carried no key name.
func formatEvent(ev keyevent.KeyboardEvent) (string, error) {
	out := "{}"
	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		out, err = sjson.Set(out, path, value)
	}

	set("keyCode", string(ev.KeyCode))
	if ev.HasKey {
		set("key", ev.Key)
	}
	set("altKey", ev.AltKey)
	set("ctrlKey", ev.CtrlKey)
	set("metaKey", ev.MetaKey)
	set("repeat", ev.Repeat)
	set("shiftKey", ev.ShiftKey)

	if err != nil {
		return "", fmt.Errorf("formatting event: %w", err)
	}
	return out, nil
}
