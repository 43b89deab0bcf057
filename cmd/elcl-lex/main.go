// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Program elcl-lex lexes Erbsland Configuration Language documents and
// prints their token stream.
//
// Usage: elcl-lex [--format text|json] [--digest] [--trace FILE] [FILE ...]
//
// Each FILE is lexed in turn. With no FILE arguments, standard input is
// read as a single document. --path is accepted for compatibility with
// tools that always pass an include path, but the lexer core never
// resolves includes, so it has no effect here.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erbsland-dev/erbsland-lexer-go/pkg/elcl"
	"github.com/pborman/getopt"
)

func main() {
	var format string
	var includePaths []string
	var showDigest bool
	var tracePath string
	var help bool
	getopt.StringVarLong(&format, "format", 0, "output format: text or json", "FORMAT")
	getopt.ListVarLong(&includePaths, "path", 0, "comma separated include path (accepted, unused)", "DIR[,DIR...]")
	getopt.BoolVarLong(&showDigest, "digest", 0, "print the document's SHA-256 digest after its tokens")
	getopt.StringVarLong(&tracePath, "trace", 0, "write a line-oriented token trace to FILE", "TRACEFILE")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	_ = includePaths
	getopt.SetParameters("[FILE ...]")

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}
	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		os.Exit(0)
	}
	if format == "" {
		format = "text"
	}
	if format != "text" && format != "json" {
		fmt.Fprintf(os.Stderr, "elcl-lex: unknown --format %q, expected text or json\n", format)
		os.Exit(1)
	}

	var trace *os.File
	if tracePath != "" {
		f, err := os.Create(tracePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		trace = f
	}

	files := getopt.Args()
	exitCode := 0
	errorCount := 0
	report := func(err error) {
		fmt.Fprintln(os.Stderr, err)
		errorCount++
		if errorCount >= 10 {
			fmt.Fprintln(os.Stderr, "elcl-lex: too many errors, stopping")
			os.Exit(1)
		}
		exitCode = 1
	}

	if len(files) == 0 {
		if err := lexReader(os.Stdin, "<STDIN>", format, showDigest, trace); err != nil {
			report(err)
		}
	}
	for _, name := range files {
		if err := lexFile(name, format, showDigest, trace); err != nil {
			report(err)
		}
	}
	os.Exit(exitCode)
}

func lexFile(path string, format string, showDigest bool, trace *os.File) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return lexReader(f, path, format, showDigest, trace)
}

// tokenRecord is the JSON shape of one emitted token, for --format json.
type tokenRecord struct {
	Type    string `json:"type"`
	Begin   string `json:"begin"`
	End     string `json:"end"`
	RawText string `json:"raw_text"`
}

func lexReader(r io.Reader, name string, format string, showDigest bool, trace *os.File) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	source := elcl.NewSourceIdentifier(name, name)
	stream := elcl.NewCharStream(elcl.NewUtf8Decoder(elcl.NewByteSliceSource(data)), source)
	decoder, err := elcl.NewTokenDecoder(stream)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	lexer := elcl.NewLexer(decoder)
	var records []tokenRecord
	for {
		tok, err := lexer.NextToken()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if trace != nil {
			fmt.Fprintf(trace, "%s\t%v\t%v\t%s\n", tok.Type, tok.Begin, tok.End, escapeTraceText(tok.RawText))
		}
		switch format {
		case "json":
			records = append(records, tokenRecord{
				Type:    tok.Type.String(),
				Begin:   tok.Begin.String(),
				End:     tok.End.String(),
				RawText: tok.RawText,
			})
		default:
			fmt.Println(tok.String())
		}
		if tok.Type == elcl.EndOfData {
			break
		}
	}
	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if showDigest {
		fmt.Printf("%s: digest %s\n", name, elcl.DigestHex(lexer.Digest()))
	}
	return nil
}

func escapeTraceText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\t", "\\t")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	return s
}
