package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/warsim/internal/histogram"
)

// ShowCmd renders the persisted histogram as a bucketed table with a
// bar per bucket, plus the distribution statistics.
type ShowCmd struct {
	State   string `default:"state.msgp" help:"Path to the histogram state file"`
	Buckets int    `default:"20" help:"Number of buckets to render"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)
	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))
	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

func (cmd *ShowCmd) Run() error {
	h := histogram.Load(cmd.State)
	if h.TotalGames() == 0 {
		return fmt.Errorf("no recorded games in %s", cmd.State)
	}

	fmt.Println(headerStyle.Render("Game length distribution"))
	fmt.Println(renderBuckets(h, cmd.Buckets))
	printSummary(h)
	return nil
}

// renderBuckets groups game lengths into equal-width buckets spanning
// the observed range and renders one row per bucket.
func renderBuckets(h *histogram.Histogram, buckets int) string {
	if buckets < 1 {
		buckets = 1
	}
	min, max := h.Min(), h.Max()
	width := (max - min + buckets) / buckets
	if width < 1 {
		width = 1
	}

	counts := make([]uint64, buckets)
	var peak uint64
	for _, turns := range h.Lengths() {
		b := (turns - min) / width
		if b >= buckets {
			b = buckets - 1
		}
		counts[b] += h.Count(turns)
		if counts[b] > peak {
			peak = counts[b]
		}
	}

	const barWidth = 40
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("TURNS", "GAMES", "")
	for b, count := range counts {
		lo := min + b*width
		hi := lo + width - 1
		bar := ""
		if peak > 0 {
			bar = strings.Repeat("█", int(count*barWidth/peak))
		}
		t = t.Row(
			fmt.Sprintf("%d-%d", lo, hi),
			fmt.Sprintf("%d", count),
			barStyle.Render(bar),
		)
	}
	return t.Render()
}
