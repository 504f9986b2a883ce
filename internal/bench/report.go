package bench

import (
	"fmt"
	"io"

	"github.com/tphakala/go-maj-hash/internal/format"
)

// Column layout: name, size, ns/call, calls/sec, MiB/s.
const (
	rowFormat    = "%-16s %8s %8s %13s %10s\n"
	resultFormat = "%-16s %8s %8.2f %13s %10.3f\n"
)

// WriteHeader writes a blank line, the column titles and a rule.
func WriteHeader(w io.Writer) error {
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, rowFormat, "benchmark", "size(W)", "time(ns)", "word/sec", "MiB/s"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, rowFormat,
		"----------------", "--------", "--------", "-------------", "----------")
	return err
}

// FormatResult renders the result row without a trailing newline.
func FormatResult(r *Result) string {
	s := fmt.Sprintf(resultFormat,
		r.Name,
		format.Unit(int64(r.Samples)),
		r.NsPerCall(),
		format.Comma(int64(r.CallsPerSec())),
		r.MiBPerSec())
	return s[:len(s)-1]
}

// WriteResult writes one result row.
func WriteResult(w io.Writer, r *Result) error {
	_, err := fmt.Fprintln(w, FormatResult(r))
	return err
}

// WriteFooter writes the blank line closing the table.
func WriteFooter(w io.Writer) error {
	_, err := fmt.Fprintln(w)
	return err
}

// WriteSums writes the accumulated outputs as r={x,y}.
func WriteSums(w io.Writer, r *Result) error {
	_, err := fmt.Fprintf(w, "r={%f,%f}\n", r.SumX, r.SumY)
	return err
}

// WriteReport writes the complete benchmark report for r.
func WriteReport(w io.Writer, r *Result) error {
	for _, step := range []func() error{
		func() error { return WriteHeader(w) },
		func() error { return WriteResult(w, r) },
		func() error { return WriteFooter(w) },
		func() error { return WriteSums(w, r) },
	} {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
