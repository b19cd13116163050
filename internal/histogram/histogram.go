// Package histogram aggregates completed game lengths into a
// turn-count histogram and handles its on-disk state: a compact
// MessagePack binary for restart/merge and a CSV table for humans.
package histogram

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
)

// Histogram counts how many simulated games finished at each turn
// count. Not safe for concurrent use; parallel drivers keep one per
// worker and Merge at the end.
type Histogram struct {
	counts map[int]uint64
}

// New returns an empty histogram.
func New() *Histogram {
	return &Histogram{counts: make(map[int]uint64)}
}

// Observe records one completed game that took the given number of
// turns.
func (h *Histogram) Observe(turns int) {
	h.counts[turns]++
}

// Merge adds every count from other into h.
func (h *Histogram) Merge(other *Histogram) {
	for turns, count := range other.counts {
		h.counts[turns] += count
	}
}

// Count returns the number of recorded games with the given length.
func (h *Histogram) Count(turns int) uint64 {
	return h.counts[turns]
}

// TotalGames returns the total number of recorded games.
func (h *Histogram) TotalGames() uint64 {
	var total uint64
	for _, count := range h.counts {
		total += count
	}
	return total
}

// Lengths returns every recorded game length in ascending order.
func (h *Histogram) Lengths() []int {
	lengths := make([]int, 0, len(h.counts))
	for turns := range h.counts {
		lengths = append(lengths, turns)
	}
	sort.Ints(lengths)
	return lengths
}

// MarshalBinary encodes the histogram as MessagePack.
func (h *Histogram) MarshalBinary() ([]byte, error) {
	return msgpack.Marshal(h.counts)
}

// UnmarshalBinary decodes a MessagePack-encoded histogram.
func (h *Histogram) UnmarshalBinary(data []byte) error {
	counts := make(map[int]uint64)
	if err := msgpack.Unmarshal(data, &counts); err != nil {
		return fmt.Errorf("decoding histogram state: %w", err)
	}
	h.counts = counts
	return nil
}

// Load reads a persisted histogram from path. A missing or unreadable
// file yields an empty histogram so a fresh run can start from nothing.
func Load(path string) *Histogram {
	data, err := os.ReadFile(path)
	if err != nil {
		return New()
	}
	h := New()
	if err := h.UnmarshalBinary(data); err != nil {
		return New()
	}
	return h
}

// Save writes the histogram's binary state to path.
func (h *Histogram) Save(path string) error {
	data, err := h.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encoding histogram state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing histogram state: %w", err)
	}
	return nil
}

// WriteCSV writes the histogram as "length, count" rows sorted by
// length.
func (h *Histogram) WriteCSV(w io.Writer) error {
	if _, err := fmt.Fprint(w, "length, count\n"); err != nil {
		return err
	}
	for _, turns := range h.Lengths() {
		if _, err := fmt.Fprintf(w, "%d, %d\n", turns, h.counts[turns]); err != nil {
			return err
		}
	}
	return nil
}

// SaveCSV writes the CSV form of the histogram to path.
func (h *Histogram) SaveCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	defer f.Close()
	if err := h.WriteCSV(f); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
