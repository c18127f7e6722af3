// Package output provides terminal output utilities for wpg.
//
// This package includes:
//   - Table rendering for words, buckets, puzzles and dictionary stats
//   - Progress bars and spinners for long-running operations
//
// Tables use plain column alignment. Color is applied with lipgloss only
// when stdout is a terminal and NO_COLOR is unset.
package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/wpg/internal/bucket"
	"github.com/blackwell-systems/wpg/internal/generator"
	"github.com/blackwell-systems/wpg/internal/store"
	"github.com/blackwell-systems/wpg/internal/words"
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true)
	styleActive = lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD7C7"))
	styleUsed   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F"))
	styleMuted  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7A89"))
)

// IsColorEnabled returns true if styled output should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize renders text with style if color is enabled,
// otherwise returns the plain text.
func colorize(style lipgloss.Style, text string) string {
	if IsColorEnabled() {
		return style.Render(text)
	}
	return text
}

// RenderWordTable renders dictionary words in the order given.
func RenderWordTable(list []words.Word) string {
	if len(list) == 0 {
		return "No words found.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-20s %-8s %-8s %-15s\n", "Word", "Letters", "Status", "Added"))
	sb.WriteString(strings.Repeat("─", 54))
	sb.WriteString("\n")

	for _, w := range list {
		status := colorize(styleActive, "visible")
		if w.Hidden {
			status = colorize(styleMuted, "hidden ")
		}
		sb.WriteString(fmt.Sprintf("%-20s %-8d %s  %-15s\n",
			truncate(w.Literal, 20),
			words.Length(w.Literal),
			status,
			formatRelativeTime(w.AddedAt)))
	}

	return sb.String()
}

// RenderBucketTable renders buckets with their rank. Does not sort;
// expects buckets to be pre-ranked by the caller.
func RenderBucketTable(buckets []*bucket.Bucket) string {
	if len(buckets) == 0 {
		return "No buckets found.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-5s %-12s %-8s %-7s %-7s %s\n",
		"Rank", "Letters", "Anagram", "Words", "Score", "Status"))
	sb.WriteString(strings.Repeat("─", 52))
	sb.WriteString("\n")

	for i, b := range buckets {
		status := colorize(styleActive, "active")
		if !b.Active() {
			status = colorize(styleUsed, "used")
		}
		sb.WriteString(fmt.Sprintf("%-5d %-12s %-8d %-7d %-7d %s\n",
			i+1,
			truncate(b.Key(), 12),
			len(b.Words()),
			b.SubWordCount(),
			b.SortScore(),
			status))
	}

	return sb.String()
}

// RenderPuzzle renders a single puzzle with its words grouped by length.
func RenderPuzzle(p *generator.Puzzle) string {
	var sb strings.Builder

	sb.WriteString(colorize(styleTitle, strings.ToUpper(p.Letters)))
	sb.WriteString(fmt.Sprintf("  (score %d, %d words)\n", p.Score, len(p.Words)))

	writeGroups(&sb, p.Words)

	if len(p.Bonus) > 0 {
		sb.WriteString(colorize(styleMuted, "  bonus: "+strings.Join(p.Bonus, ", ")))
		sb.WriteString("\n")
	}
	if p.Path != "" {
		sb.WriteString(fmt.Sprintf("  → %s\n", p.Path))
	}

	return sb.String()
}

// writeGroups writes one line per word length. list must already be
// ordered by length.
func writeGroups(sb *strings.Builder, list []string) {
	for i := 0; i < len(list); {
		n := words.Length(list[i])
		j := i
		for j < len(list) && words.Length(list[j]) == n {
			j++
		}
		sb.WriteString(fmt.Sprintf("  %d: %s\n", n, strings.Join(list[i:j], ", ")))
		i = j
	}
}

// RenderInspection renders the bucket details for a single word.
func RenderInspection(in *generator.Inspection) string {
	var sb strings.Builder

	status := colorize(styleActive, "active")
	if !in.Active {
		status = colorize(styleUsed, "used")
	}

	sb.WriteString(colorize(styleTitle, in.Word))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %-12s %s\n", "Letters:", in.Key))
	sb.WriteString(fmt.Sprintf("  %-12s %s\n", "Anagrams:", strings.Join(in.Anagrams, ", ")))
	sb.WriteString(fmt.Sprintf("  %-12s %d\n", "Words:", in.SubWordCount))
	sb.WriteString(fmt.Sprintf("  %-12s %d\n", "Score:", in.SortScore))
	sb.WriteString(fmt.Sprintf("  %-12s %s\n", "Status:", status))
	sb.WriteString("\n")
	writeGroups(&sb, in.Reachable)

	return sb.String()
}

// RenderInfo renders dictionary totals and the word length histogram.
func RenderInfo(total, usedKeys int, hist []store.LengthCount) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Words:     %d\n", total))
	sb.WriteString(fmt.Sprintf("Used keys: %d\n", usedKeys))

	if len(hist) == 0 {
		return sb.String()
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%-8s %-8s %s\n", "Letters", "Words", "Hidden"))
	sb.WriteString(strings.Repeat("─", 24))
	sb.WriteString("\n")
	for _, lc := range hist {
		sb.WriteString(fmt.Sprintf("%-8d %-8d %d\n", lc.Length, lc.Words, lc.Hidden))
	}

	return sb.String()
}

// RenderPuzzleHistory renders previously generated puzzles.
func RenderPuzzleHistory(records []*store.PuzzleRecord) string {
	if len(records) == 0 {
		return "No puzzles generated yet.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-10s %-12s %-7s %-7s %-15s\n",
		"ID", "Letters", "Words", "Score", "Created"))
	sb.WriteString(strings.Repeat("─", 55))
	sb.WriteString("\n")

	for _, r := range records {
		sb.WriteString(fmt.Sprintf("%-10s %-12s %-7d %-7d %-15s\n",
			truncate(r.ID, 8),
			truncate(r.Letters, 12),
			r.WordCount,
			r.Score,
			formatRelativeTime(r.CreatedAt)))
	}

	return sb.String()
}

// RenderUsedKeys renders the keys that already produced puzzles.
func RenderUsedKeys(keys []store.UsedKey) string {
	if len(keys) == 0 {
		return "No used keys.\n"
	}

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("%-12s %s\n", k.Key, colorize(styleMuted, formatRelativeTime(k.UsedAt))))
	}
	return sb.String()
}

// formatRelativeTime converts a timestamp to relative time (e.g., "2 days ago").
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "hour")
	case diff < 30*24*time.Hour:
		return plural(int(diff.Hours()/24), "day")
	case diff < 365*24*time.Hour:
		return plural(int(diff.Hours()/24/30), "month")
	default:
		return plural(int(diff.Hours()/24/365), "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// truncate truncates a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
