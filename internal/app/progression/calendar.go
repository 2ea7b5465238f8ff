package progression

import (
	"sort"
	"time"

	"github.com/ideaforge/forge/internal/domain"
)

// Calendar aggregators: pure functions that bucket a work history by day,
// week, month, hour-of-day range, and weekday/weekend. All of them read a
// record's wall clock in the location carried by its timestamp, and none
// of them assume the history is sorted.

const dayKeyFormat = "2006-01-02"

// dayKey returns the calendar-day key for a timestamp.
func dayKey(t time.Time) string {
	return t.Format(dayKeyFormat)
}

// localDate normalizes a timestamp to its own calendar date at midnight
// UTC, so that adjacent days always differ by exactly 24 hours regardless
// of the source location or DST.
func localDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// activeDays returns the distinct calendar days present in the history,
// sorted ascending.
func activeDays(history []domain.CompletedWork) []time.Time {
	seen := make(map[string]time.Time, len(history))
	for _, w := range history {
		d := localDate(w.CompletedAt)
		seen[dayKey(w.CompletedAt)] = d
	}
	days := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// LongestActiveRun returns the longest run of consecutive active calendar
// days, but only while the streak is still alive: if the most recent
// active day is neither today nor yesterday relative to now, the streak is
// broken and the result is 0 no matter how long the historical run was.
// The currency check runs before the run scan, never after.
func LongestActiveRun(history []domain.CompletedWork, now time.Time) int {
	days := activeDays(history)
	if len(days) == 0 {
		return 0
	}

	// Currency check: a stale streak counts for nothing.
	last := days[len(days)-1]
	today := localDate(now)
	yesterday := today.AddDate(0, 0, -1)
	if !last.Equal(today) && !last.Equal(yesterday) {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// weekIndex maps a timestamp to a monotonically increasing ISO-week index:
// the day number of that week's Monday divided by seven. Consecutive weeks
// differ by exactly one.
func weekIndex(t time.Time) int {
	d := localDate(t)
	offset := (int(d.Weekday()) + 6) % 7 // Monday = 0
	monday := d.AddDate(0, 0, -offset)
	return int(monday.Unix() / 86400 / 7)
}

// monthIndex maps a timestamp to a monotonically increasing month index.
func monthIndex(t time.Time) int {
	y, m, _ := t.Date()
	return y*12 + int(m) - 1
}

// countByPeriod buckets the history by a period index function.
func countByPeriod(history []domain.CompletedWork, index func(time.Time) int) map[int]int {
	counts := make(map[int]int)
	for _, w := range history {
		counts[index(w.CompletedAt)]++
	}
	return counts
}

// CountByWeek buckets completions by ISO week.
func CountByWeek(history []domain.CompletedWork) map[int]int {
	return countByPeriod(history, weekIndex)
}

// CountByMonth buckets completions by calendar month.
func CountByMonth(history []domain.CompletedWork) map[int]int {
	return countByPeriod(history, monthIndex)
}

// trailingWindow returns the per-period counts for the `periods`
// consecutive periods ending at the most recent active period. Periods
// with no completions report 0. Returns nil when the history is empty.
func trailingWindow(counts map[int]int, periods int) []int {
	if len(counts) == 0 || periods <= 0 {
		return nil
	}
	latest := 0
	first := true
	for idx := range counts {
		if first || idx > latest {
			latest = idx
			first = false
		}
	}
	window := make([]int, periods)
	for i := 0; i < periods; i++ {
		window[i] = counts[latest-periods+1+i]
	}
	return window
}

// MaxSameDayWindow returns the maximum number of completions whose
// timestamps fall inside any rolling window of the given width, where the
// window may start at any timestamp within a single calendar day. This is
// deliberately looser than counting per calendar day.
func MaxSameDayWindow(history []domain.CompletedWork, width time.Duration) int {
	byDay := make(map[string][]time.Time)
	for _, w := range history {
		k := dayKey(w.CompletedAt)
		byDay[k] = append(byDay[k], w.CompletedAt)
	}

	best := 0
	for _, times := range byDay {
		sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
		j := 0
		for i := range times {
			if j < i {
				j = i
			}
			for j+1 < len(times) && times[j+1].Sub(times[i]) <= width {
				j++
			}
			if n := j - i + 1; n > best {
				best = n
			}
		}
	}
	return best
}

// InHourRange reports whether a local hour falls inside a named range.
// Night wraps across midnight: hour ≥22 or ≤4.
func InHourRange(hour int, r domain.HourRange) bool {
	switch r {
	case domain.RangeMorning:
		return hour >= 5 && hour <= 11
	case domain.RangeAfternoon:
		return hour >= 12 && hour <= 17
	case domain.RangeEvening:
		return hour >= 18 && hour <= 21
	case domain.RangeNight:
		return hour >= 22 || hour <= 4
	}
	return false
}

// CountInHourRange counts completions whose local hour falls in the range.
func CountInHourRange(history []domain.CompletedWork, r domain.HourRange) int {
	n := 0
	for _, w := range history {
		if InHourRange(w.CompletedAt.Hour(), r) {
			n++
		}
	}
	return n
}

// CountByWeekendness counts completions on weekend days (Saturday or
// Sunday) when weekend is true, weekdays otherwise.
func CountByWeekendness(history []domain.CompletedWork, weekend bool) int {
	n := 0
	for _, w := range history {
		wd := w.CompletedAt.Weekday()
		isWeekend := wd == time.Saturday || wd == time.Sunday
		if isWeekend == weekend {
			n++
		}
	}
	return n
}

// TierCounts returns per-tier completion counts and the total.
func TierCounts(history []domain.CompletedWork) (map[domain.Tier]int, int) {
	counts := make(map[domain.Tier]int, len(domain.AllTiers))
	for _, w := range history {
		counts[w.Tier]++
	}
	return counts, len(history)
}
