// flexquery - Flex Query decode CLI
//
// Usage:
//
//	flexquery [--tolerant] [file]    Decode a Flex XML export and summarize
//	flexquery version                Print version info
//
// With --tolerant, attributes and record types the schema registry does
// not know are skipped instead of failing the decode.
//
// If no file is given, reads from stdin.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/openfolio/flexquery/flex"
)

const libVersion = "0.3.0"

func main() {
	tolerant := false
	fileArg := ""
	for _, arg := range os.Args[1:] {
		switch {
		case arg == "version":
			fmt.Printf("flexquery %s\n", libVersion)
			return
		case arg == "--tolerant":
			tolerant = true
		case arg == "-h" || arg == "--help":
			printUsage()
			return
		default:
			fileArg = arg
		}
	}

	var input io.Reader = os.Stdin
	if fileArg != "" && fileArg != "-" {
		f, err := os.Open(fileArg)
		if err != nil {
			fatal("open file: %v", err)
		}
		defer f.Close()
		input = f
	}

	data, err := io.ReadAll(input)
	if err != nil {
		fatal("read input: %v", err)
	}

	if tolerant {
		flex.EnableTolerance()
	}

	resp, err := flex.Decode(data)
	if err != nil {
		fatal("decode: %v", err)
	}

	fmt.Printf("query %q (type %s): %d statement(s)\n",
		resp.Root.Get("queryName"), resp.Root.Get("type"), len(resp.Statements))

	for _, stmt := range resp.Statements {
		fmt.Printf("  account %s, %s to %s\n",
			stmt.Get("accountId"), stmt.Get("fromDate"), stmt.Get("toDate"))

		tags := make([]string, 0, len(stmt.Sections))
		for tag := range stmt.Sections {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		for _, tag := range tags {
			d := stmt.Section(tag)
			if d.Record != nil {
				fmt.Printf("    %s: 1 record\n", tag)
				continue
			}
			fmt.Printf("    %s: %d record(s)\n", tag, len(d.List))
		}
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `flexquery - Flex Query decode CLI

Usage:
  flexquery [--tolerant] [file]    Decode a Flex XML export and summarize
  flexquery version                Print version info

If no file is given, reads from stdin.`)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "flexquery: "+format+"\n", args...)
	os.Exit(1)
}
