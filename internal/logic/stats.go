// Package logic implements the aggregation core: full-dataset statistics,
// filtered leaderboards, and profile/comparison derivations. Everything here
// is a pure function of a dataset snapshot plus an explicit filter state;
// there is no carried state and no incremental update anywhere.
package logic

import (
	"context"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/puzzleboard/stats-api/internal/models"
)

const (
	// defaultRecentLimit is the recent-activity cap when the caller does
	// not supply one.
	defaultRecentLimit = 15

	isoDate = "2006-01-02"
)

var (
	recomputesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "puzzlestats_recomputes_total",
		Help: "Total number of full snapshot recomputations",
	})

	recomputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "puzzlestats_recompute_duration_seconds",
		Help:    "Duration of full snapshot recomputations",
		Buckets: prometheus.DefBuckets,
	})
)

type statsService struct {
	logger          *zap.SugaredLogger
	leaderboardSize int
	recentLimit     int
}

// StatsOptions tunes the derived collection caps. Zero values fall back to
// the defaults the dashboard has always used.
type StatsOptions struct {
	LeaderboardSize int
	RecentLimit     int
}

func NewStatsService(logger *zap.Logger, opts StatsOptions) StatsService {
	if opts.LeaderboardSize <= 0 {
		opts.LeaderboardSize = defaultLeaderboardSize
	}
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = defaultRecentLimit
	}
	return &statsService{
		logger:          logger.Sugar(),
		leaderboardSize: opts.LeaderboardSize,
		recentLimit:     opts.RecentLimit,
	}
}

// Recompute builds a complete snapshot from the dataset. The four products
// are independent of each other, so they are filled concurrently; each one
// is still computed synchronously and to completion.
func (s *statsService) Recompute(ctx context.Context, ds *models.Dataset, now time.Time) (*models.Snapshot, error) {
	start := time.Now()
	snap := &models.Snapshot{Dataset: ds}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		snap.GameStats = s.ComputeGameStats(ds.Entries, ds.Games)
		return nil
	})
	g.Go(func() error {
		playerStats, err := s.ComputePlayerStats(ds.Entries, ds.Players)
		if err != nil {
			return err
		}
		snap.PlayerStats = playerStats
		return nil
	})
	g.Go(func() error {
		snap.RecentActivity = s.RecentActivity(ds.Entries, s.recentLimit)
		return nil
	})
	g.Go(func() error {
		snap.TimeRanges = s.TimeRangeStats(ds.Entries, now)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	recomputesTotal.Inc()
	recomputeDuration.Observe(time.Since(start).Seconds())
	s.logger.Infow("snapshot recomputed",
		"snapshot_id", ds.SnapshotID,
		"entries", len(ds.Entries),
		"games", len(ds.Games),
		"players", len(ds.Players),
		"duration", time.Since(start),
	)

	return snap, nil
}

// RecentActivity returns the most recent entries, newest first. Entries on
// the same calendar date keep their input order; the dataset carries no
// time-of-day field, so the tie-break within a date is unspecified.
func (s *statsService) RecentActivity(entries []models.Entry, limit int) []models.Entry {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	sorted := make([]models.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return parseDate(sorted[i].Date).After(parseDate(sorted[j].Date))
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// TimeRangeStats partitions the entries by recency relative to now. Daily
// membership is a plain calendar-date string comparison in the dataset's own
// format; no timezone normalization is applied.
func (s *statsService) TimeRangeStats(entries []models.Entry, now time.Time) map[models.TimeRange][]models.Entry {
	today := now.Format(isoDate)

	daily := []models.Entry{}
	for _, e := range entries {
		if e.Date == today {
			daily = append(daily, e)
		}
	}

	return map[models.TimeRange][]models.Entry{
		models.RangeDaily:   daily,
		models.RangeAllTime: entries,
	}
}

// parseDate parses an ISO calendar date. Unparseable dates sort last.
func parseDate(date string) time.Time {
	t, err := time.Parse(isoDate, date)
	if err != nil {
		return time.Time{}
	}
	return t
}
