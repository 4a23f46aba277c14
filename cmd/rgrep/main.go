// Command rgrep filters input lines through a restricted regex pattern.
//
// A line is selected when the pattern matches its entire text. Lines are
// read from the given files, or from stdin when no file is named.
//
// Exit status: 0 when at least one line was selected, 1 when none were,
// 2 on usage or pattern errors.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/coregx/rematch"
)

type options struct {
	Invert bool `short:"v" long:"invert-match" description:"select lines the pattern does not match"`
	Quiet  bool `short:"q" long:"quiet" description:"suppress normal output; exit status carries the result"`
	Count  bool `short:"c" long:"count" description:"print only a count of selected lines"`

	Args struct {
		Pattern string   `positional-arg-name:"pattern" required:"true"`
		Files   []string `positional-arg-name:"file"`
	} `positional-args:"true"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS] pattern [file...]"

	if _, err := parser.Parse(); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "rgrep: %v\n", err)
		os.Exit(2)
	}

	re, err := rematch.Compile(opts.Args.Pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rgrep: %v\n", err)
		os.Exit(2)
	}

	selected := 0
	scan := func(r io.Reader) error {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if re.MatchString(line) == opts.Invert {
				continue
			}
			selected++
			if !opts.Quiet && !opts.Count {
				fmt.Println(line)
			}
		}
		return scanner.Err()
	}

	if len(opts.Args.Files) == 0 {
		if err := scan(os.Stdin); err != nil {
			fmt.Fprintf(os.Stderr, "rgrep: stdin: %v\n", err)
			os.Exit(2)
		}
	}
	for _, name := range opts.Args.Files {
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rgrep: %v\n", err)
			os.Exit(2)
		}
		err = scan(f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "rgrep: %s: %v\n", name, err)
			os.Exit(2)
		}
	}

	if opts.Count && !opts.Quiet {
		fmt.Println(selected)
	}
	if selected == 0 {
		os.Exit(1)
	}
}
