package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/unwind/internal/content"
	"github.com/ayoisaiah/unwind/internal/timeutil"
)

// Table is a boxed table whose first row is the header.
type Table struct {
	rows [][]string
}

// NewTable starts a table with the given column names. Names are upper
// cased.
func NewTable(columns ...string) *Table {
	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = strings.ToUpper(c)
	}

	return &Table{rows: [][]string{header}}
}

// Row appends a body row.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Len reports the number of body rows.
func (t *Table) Len() int {
	return len(t.rows) - 1
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) error {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(t.rows).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, str)

	return err
}

// Print renders the table and reports failures on stderr.
func (t *Table) Print(w io.Writer) {
	if err := t.Render(w); err != nil {
		pterm.Error.Printfln("Failed to output table: %s", err.Error())
	}
}

// CatalogTable lists activities with their position, key, title, category,
// duration and animation.
func CatalogTable(acts []content.Activity) *Table {
	t := NewTable("#", "key", "title", "category", "duration", "animation")

	for i, a := range acts {
		t.Row(
			fmt.Sprintf("%d", i+1),
			a.Key,
			a.Title,
			Category(a.Category),
			timeutil.Clock(a.Seconds()),
			string(a.Animation),
		)
	}

	return t
}

// CategoryTable lists session counts for every category, including those
// with none.
func CategoryTable(counts map[content.Category]int) *Table {
	t := NewTable("category", "sessions")

	for _, c := range content.Categories {
		t.Row(Category(c), fmt.Sprintf("%d", counts[c]))
	}

	return t
}
