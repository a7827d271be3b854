// numfmt-tester is a line-oriented tool for exercising the formatting
// entry points. Each input line is parsed as an integer (signed, then
// unsigned) or a float, and every applicable encoding is printed with its
// byte count. In a terminal it behaves as a small REPL; with piped input
// it processes lines silently.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	numfmt "github.com/enerqi/odin-num-format"
	"golang.org/x/term"
)

func main() {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		fmt.Println("numfmt tester: enter a number per line, 'quit' to exit")
		fmt.Printf("buffer minimums: float %d bytes, int %d bytes\n",
			numfmt.MinFloatBufLen, numfmt.MinIntBufLen)
	}

	in := bufio.NewReader(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}
		line, err := in.ReadString('\n')
		if err == io.EOF && line == "" {
			return
		}
		if err != nil && err != io.EOF {
			fmt.Fprintf(os.Stderr, "read error: %v\n", err)
			os.Exit(1)
		}

		input := strings.TrimSpace(line)
		switch input {
		case "":
			continue
		case "quit", "exit":
			return
		}
		show(input)
		if err == io.EOF {
			return
		}
	}
}

// show prints every encoding that applies to the input text.
func show(input string) {
	var fbuf [numfmt.MinFloatBufLen]byte
	var ibuf [numfmt.MinIntBufLen]byte

	matched := false
	if v, err := strconv.ParseInt(input, 10, 64); err == nil {
		matched = true
		n := numfmt.PutInt64(ibuf[:], v)
		report("i64", ibuf[:], n)
		if v >= -1<<31 && v < 1<<31 {
			n = numfmt.PutInt32(ibuf[:], int32(v))
			report("i32", ibuf[:], n)
		}
	}
	if v, err := strconv.ParseUint(input, 10, 64); err == nil {
		matched = true
		n := numfmt.PutUint64(ibuf[:], v)
		report("u64", ibuf[:], n)
		if v < 1<<32 {
			n = numfmt.PutUint32(ibuf[:], uint32(v))
			report("u32", ibuf[:], n)
		}
	}
	if v, err := strconv.ParseFloat(input, 64); err == nil {
		matched = true
		n := numfmt.PutFloat64(fbuf[:], v)
		report("f64", fbuf[:], n)
		if v32, err := strconv.ParseFloat(input, 32); err == nil {
			n = numfmt.PutFloat32(fbuf[:], float32(v32))
			report("f32", fbuf[:], n)
		}
	}
	if !matched {
		fmt.Fprintf(os.Stderr, "not a number: %q\n", input)
	}
}

func report(kind string, buf []byte, n int) {
	if n == 0 {
		fmt.Printf("%s: format failed\n", kind)
		return
	}
	fmt.Printf("%s: %s (%d bytes)\n", kind, buf[:n], n)
}
