package main

import (
	"slices"
	"strconv"
	"strings"
)

// parseSelection turns "1,3-5" or "all" into sorted, unique 1-based indices
// no greater than count. Reversed ranges are swapped; malformed and
// out-of-range items are dropped.
func parseSelection(text string, count int) []int {
	text = strings.ToLower(strings.TrimSpace(text))
	switch text {
	case "all", "a", "*":
		out := make([]int, count)
		for i := range out {
			out[i] = i + 1
		}
		return out
	}

	seen := make(map[int]bool)
	for part := range strings.SplitSeq(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, ok := parseItem(part)
		if !ok {
			continue
		}
		for i := max(lo, 1); i <= min(hi, count); i++ {
			seen[i] = true
		}
	}

	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// parseItem parses "n" or "a-b".
func parseItem(part string) (int, int, bool) {
	a, b, isRange := strings.Cut(part, "-")
	lo, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, false
	}
	if !isRange {
		return lo, lo, true
	}
	hi, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, false
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}
