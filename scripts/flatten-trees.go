//go:build ignore

// Flatten multi-line bracketed treebank files (.mrg) into one tree per
// line, the input format of evalb.
// Usage: go run ./scripts/flatten-trees.go [-o out.gld] file.mrg...
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
)

type options struct {
	Output string `short:"o" long:"output" description:"output file (default stdout)"`
}

func main() {
	var opts options
	paths, err := flags.Parse(&opts)
	if err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	out := os.Stdout
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", opts.Output, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	defer w.Flush()

	total := 0
	for _, path := range paths {
		n, err := flattenFile(w, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "  %s: %d trees\n", path, n)
		total += n
	}
	fmt.Fprintf(os.Stderr, "Done! %d trees\n", total)
}

func flattenFile(w io.Writer, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	var (
		tree  strings.Builder
		depth int
		n     int
	)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Header lines in some treebank releases
		if depth == 0 && (line == "" || strings.HasPrefix(line, "*x*")) {
			continue
		}

		for _, field := range strings.Fields(line) {
			if tree.Len() > 0 && !strings.HasPrefix(field, ")") {
				tree.WriteByte(' ')
			}
			tree.WriteString(field)
			depth += strings.Count(field, "(") - strings.Count(field, ")")
		}

		if depth < 0 {
			return n, fmt.Errorf("unbalanced close bracket after tree %d", n)
		}
		if depth == 0 && tree.Len() > 0 {
			if _, err := fmt.Fprintln(w, tree.String()); err != nil {
				return n, err
			}
			tree.Reset()
			n++
		}
	}

	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("scanning file: %w", err)
	}
	if depth != 0 {
		return n, errors.New("unterminated tree at end of file")
	}
	return n, nil
}
