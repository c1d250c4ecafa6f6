package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/puzzleboard/stats-api/internal/logic"
	"github.com/puzzleboard/stats-api/internal/models"
)

type Config struct {
	Dataset  *models.Dataset
	Snapshot *models.Snapshot
	Logger   *zap.Logger
	// Services
	Stats        logic.StatsService
	Leaderboards logic.LeaderboardService
	Performance  logic.PerformanceService
	// Now is the clock used for daily-range resolution; nil means time.Now.
	Now func() time.Time
}

type Handler struct {
	ds           *models.Dataset
	snap         *models.Snapshot
	logger       *zap.SugaredLogger
	validator    *validator.Validate
	stats        logic.StatsService
	leaderboards logic.LeaderboardService
	performance  logic.PerformanceService
	now          func() time.Time
}

func New(cfg Config) *Handler {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Handler{
		ds:           cfg.Dataset,
		snap:         cfg.Snapshot,
		logger:       cfg.Logger.Sugar(),
		validator:    validator.New(),
		stats:        cfg.Stats,
		leaderboards: cfg.Leaderboards,
		performance:  cfg.Performance,
		now:          now,
	}
}
