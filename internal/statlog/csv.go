// Package statlog records population statistics as rounds go by: a CSV log
// for spreadsheets and a SQLite history for later queries.
package statlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"galapagos/internal/biotope"
)

// CSV writes one row per notification. The column set is fixed by the kinds
// passed at construction.
type CSV struct {
	w      *csv.Writer
	closer io.Closer
	kinds  []string
	header bool
	err    error
}

// NewCSV writes rows for kinds to w.
func NewCSV(w io.Writer, kinds []string) *CSV {
	return &CSV{w: csv.NewWriter(w), kinds: kinds}
}

// CreateCSV creates (or truncates) the file at path.
func CreateCSV(path string, kinds []string) (*CSV, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create csv log: %w", err)
	}
	c := NewCSV(f, kinds)
	c.closer = f
	return c, nil
}

// Header returns the column names.
func (c *CSV) Header() []string {
	cols := []string{"round", "interactions", "population"}
	for _, k := range c.kinds {
		cols = append(cols, k, k+"_born", k+"_died_age", k+"_died_vitality")
	}
	return cols
}

// Write appends the row for stats, writing the header first if needed.
func (c *CSV) Write(stats biotope.RoundStats) error {
	if c.err != nil {
		return c.err
	}
	if !c.header {
		if err := c.w.Write(c.Header()); err != nil {
			c.err = err
			return err
		}
		c.header = true
	}
	row := []string{
		strconv.Itoa(stats.Round),
		strconv.Itoa(stats.Interactions),
		strconv.Itoa(stats.Population()),
	}
	for _, k := range c.kinds {
		ks := stats.Kinds[k]
		row = append(row,
			strconv.Itoa(ks.Population),
			strconv.Itoa(ks.Born),
			strconv.Itoa(ks.DiedOfAge),
			strconv.Itoa(ks.DiedOfVitality),
		)
	}
	if err := c.w.Write(row); err != nil {
		c.err = err
		return err
	}
	c.w.Flush()
	c.err = c.w.Error()
	return c.err
}

// Observer adapts the log to the biotope. Write errors are kept and reported
// by Err and Close.
func (c *CSV) Observer() biotope.Observer {
	return func(v *biotope.View) { _ = c.Write(v.Stats()) }
}

// Err returns the first write error.
func (c *CSV) Err() error { return c.err }

// Close flushes and closes the underlying file, if CreateCSV opened it. It
// reports the first write error as well.
func (c *CSV) Close() error {
	c.w.Flush()
	err := c.w.Error()
	if c.closer != nil {
		if cerr := c.closer.Close(); err == nil {
			err = cerr
		}
		c.closer = nil
	}
	if c.err != nil {
		return c.err
	}
	return err
}
