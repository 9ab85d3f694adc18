// Package driver runs the batch read/compute/print loop over text streams.
package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/guttosm/deal-service/internal/solver"
	"github.com/rs/zerolog/log"
)

var (
	// ErrMissingCount is returned when the input has no test case count.
	ErrMissingCount = errors.New("missing test case count")
	// ErrMissingQuantity is returned when the input ends before all cases are read.
	ErrMissingQuantity = errors.New("missing quantity")
)

// Run reads a test case count t followed by t whitespace-separated quantities
// from r and writes the cost of each quantity to w, one per line, in input
// order. Results computed before an input error are still written.
func Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	out := bufio.NewWriter(w)

	err := run(scanner, out)
	if flushErr := out.Flush(); flushErr != nil && err == nil {
		err = fmt.Errorf("flush output: %w", flushErr)
	}
	return err
}

func run(scanner *bufio.Scanner, out *bufio.Writer) error {
	t, err := nextInt(scanner)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ErrMissingCount
		}
		return fmt.Errorf("read test case count: %w", err)
	}

	log.Debug().Int64("cases", t).Msg("Processing test cases")

	buf := make([]byte, 0, 24)
	for i := int64(0); i < t; i++ {
		n, err := nextInt(scanner)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("case %d of %d: %w", i+1, t, ErrMissingQuantity)
			}
			return fmt.Errorf("case %d of %d: %w", i+1, t, err)
		}

		buf = strconv.AppendInt(buf[:0], solver.Cost(n), 10)
		buf = append(buf, '\n')
		if _, err := out.Write(buf); err != nil {
			return fmt.Errorf("write result for case %d: %w", i+1, err)
		}
	}
	return nil
}

// nextInt returns the next token parsed as an int64, or io.EOF when the input
// is exhausted.
func nextInt(scanner *bufio.Scanner) (int64, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	v, err := strconv.ParseInt(scanner.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", scanner.Text(), err)
	}
	return v, nil
}
