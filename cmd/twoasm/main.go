// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tebeka/atexit"

	"github.com/ezrec/twoasm/asm"
)

func main() {
	var input string
	var output string
	var verbose bool

	flag.StringVar(&input, "i", "-", "Assembly source input")
	flag.StringVar(&output, "o", "-", "Listing output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	var in io.Reader = os.Stdin
	if input != "-" {
		inf, err := os.Open(input)
		if err != nil {
			atexit.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		in = inf
	} else {
		input = "stdin"
	}

	var out io.Writer = os.Stdout
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			atexit.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		out = ouf
	}

	assembler := &asm.Assembler{Verbose: verbose}

	prog, err := assembler.Parse(in)
	if err != nil {
		atexit.Fatalf("%v: %v", input, err)
	}

	entries, err := prog.Listing()
	if err != nil {
		atexit.Fatalf("%v: %v", input, err)
	}

	// The listing is only written once the whole input has assembled.
	w := bufio.NewWriter(out)
	atexit.Register(func() { w.Flush() })

	for _, entry := range entries {
		if verbose && len(entry.Key) != 0 {
			fmt.Fprintf(w, "%04o %s ; %s\n", entry.Addr, entry.Word, entry.Key)
		} else {
			fmt.Fprintf(w, "%04o %s\n", entry.Addr, entry.Word)
		}
	}

	atexit.Exit(0)
}
