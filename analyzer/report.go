package analyzer

import (
	"fmt"
	"io"
	"sort"
)

// Entry is one distinct sequence and its occurrence count.
type Entry struct {
	Sequence string `json:"sequence"`
	Count    int    `json:"count"`

	// first is the window index of the sequence's first appearance, used
	// for deterministic tie ordering.
	first int
}

// Report is the result of one analysis run. Entries are sorted ascending by
// count after AnalyzeTokens returns; the sum of all counts equals
// WindowCount.
type Report struct {
	Entries     []Entry `json:"sequences"`
	TokenCount  int     `json:"tokens"`
	WindowCount int     `json:"windows"`
}

// Sort orders entries by ascending count. Ties keep first-appearance order
// so repeated runs over the same input print identically.
func (r *Report) Sort() {
	sort.Slice(r.Entries, func(i, j int) bool {
		if r.Entries[i].Count != r.Entries[j].Count {
			return r.Entries[i].Count < r.Entries[j].Count
		}
		return r.Entries[i].first < r.Entries[j].first
	})
}

// Top returns the k highest-count entries, still in ascending order.
// k <= 0 or k >= len(Entries) returns all entries.
func (r *Report) Top(k int) []Entry {
	if k <= 0 || k >= len(r.Entries) {
		return r.Entries
	}
	return r.Entries[len(r.Entries)-k:]
}

// WriteText renders the whole report in the classic line format.
func (r *Report) WriteText(w io.Writer) error {
	return WriteEntries(w, r.Entries)
}

// WriteEntries writes one "<sequence>: <count>" line per entry.
func WriteEntries(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s: %d\n", e.Sequence, e.Count); err != nil {
			return err
		}
	}
	return nil
}
