package stats

import (
	"context"
	"fmt"

	majhash "github.com/tphakala/go-maj-hash"
)

// Row is one sweep result.
type Row struct {
	Label string
	Acc   Accumulator
}

// Table holds the rows of one round count.
type Table struct {
	Rounds int
	Rows   []Row
}

// Name returns the table header label.
func (t *Table) Name() string {
	return fmt.Sprintf("hash (rounds=%d)", t.Rounds)
}

// RunSuite runs every built-in sweep twice per round count: once over
// Count samples and once over Range samples, both divided by Range.
func RunSuite(ctx context.Context, cfg Config) ([]Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tables := make([]Table, 0, len(cfg.Rounds))
	for _, rounds := range cfg.Rounds {
		table, err := RunTable(ctx, cfg, rounds)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, nil
}

// RunTable runs the six sweeps of a single round count.
func RunTable(ctx context.Context, cfg Config, rounds int) (Table, error) {
	h, err := majhash.New(rounds)
	if err != nil {
		return Table{}, err
	}

	table := Table{Rounds: rounds, Rows: make([]Row, 0, len(Sweeps)*2)}
	for _, sweep := range Sweeps {
		for _, count := range []uint64{cfg.Count, cfg.Range} {
			acc, err := Run(ctx, h, count, cfg.Range, sweep, cfg.Workers)
			if err != nil {
				return Table{}, fmt.Errorf("rounds=%d sweep=%s: %w", rounds, sweep.Name, err)
			}
			table.Rows = append(table.Rows, Row{
				Label: LabelFor(sweep, count, cfg.Range),
				Acc:   acc,
			})
		}
	}
	return table, nil
}
