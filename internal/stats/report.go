package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/tphakala/go-maj-hash/internal/format"
)

// headerColumns are the column titles after the table name.
var headerColumns = []string{
	"count", "mean(x)", "mean(y)",
	"variance(x)", "variance(y)",
	"std-dev(x)", "std-dev(y)",
}

// FormatHeader renders the column header line for a table named name.
func FormatHeader(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-*s", labelWidth, name)
	for _, col := range headerColumns {
		fmt.Fprintf(&b, "%*s", columnWidth, col)
	}
	return b.String()
}

// FormatRow renders one result row.
func FormatRow(r *Row) string {
	mx, my := r.Acc.Mean()
	vx, vy := r.Acc.Variance()
	sx, sy := r.Acc.StdDev()
	return fmt.Sprintf("%-*s%*s%*.5f%*.5f%*.5f%*.5f%*.5f%*.5f",
		labelWidth, r.Label,
		columnWidth, format.Comma(int64(r.Acc.Count())),
		columnWidth, mx, columnWidth, my,
		columnWidth, vx, columnWidth, vy,
		columnWidth, sx, columnWidth, sy)
}

// WriteTables writes each table surrounded by blank lines. style, when
// non-nil, decorates header lines (for example with terminal colors).
func WriteTables(w io.Writer, tables []Table, style func(string) string) error {
	for i := range tables {
		if err := WriteTable(w, &tables[i], style); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable writes a single table.
func WriteTable(w io.Writer, t *Table, style func(string) string) error {
	header := FormatHeader(t.Name())
	if style != nil {
		header = style(header)
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", header); err != nil {
		return err
	}
	for i := range t.Rows {
		if _, err := fmt.Fprintln(w, FormatRow(&t.Rows[i])); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
