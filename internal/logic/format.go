package logic

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/puzzleboard/stats-api/internal/models"
)

// FormatTime renders seconds as "Ns" under a minute, "m:ss" under an hour,
// and "h:mm:ss" beyond that.
func FormatTime(seconds int) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
	default:
		return fmt.Sprintf("%d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
	}
}

// FormatMetricValue renders a single metric value for display.
func FormatMetricValue(value int, metric models.Metric) string {
	switch metric {
	case models.MetricTime:
		return FormatTime(value)
	case models.MetricGuesses:
		return fmt.Sprintf("%d guesses", value)
	case models.MetricBacktracks:
		return fmt.Sprintf("%d backtracks", value)
	}
	return fmt.Sprintf("%d", value)
}

// FormatMetric renders an entry's score under the game's capability flags,
// preferring time, then guesses, then backtracks. Entries carrying none of
// the game's metrics render as "N/A".
func FormatMetric(m models.Metrics, game models.Game) string {
	switch {
	case game.HasTime && m.Time != nil:
		if game.HasBacktracks && m.Backtracks != nil {
			return fmt.Sprintf("%s (%d backtracks)", FormatTime(*m.Time), *m.Backtracks)
		}
		return FormatTime(*m.Time)
	case game.HasGuesses && m.Guesses != nil:
		return fmt.Sprintf("%d guesses", *m.Guesses)
	case game.HasBacktracks && m.Backtracks != nil:
		return fmt.Sprintf("%d backtracks", *m.Backtracks)
	}
	return "N/A"
}

// DisplayName shortens a full display name to its first word.
func DisplayName(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return "Unknown"
	}
	return fields[0]
}

// Initials derives up to three uppercase initials from a display name.
func Initials(fullName string) string {
	var b strings.Builder
	for _, field := range strings.Fields(fullName) {
		if b.Len() >= 3 {
			break
		}
		for _, r := range field {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}
