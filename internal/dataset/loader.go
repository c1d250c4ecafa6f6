// Package dataset loads, parses, and validates the raw play-record
// collection. Validation happens once here; the aggregation core downstream
// assumes referential integrity for players and tolerates unknown games.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/puzzleboard/stats-api/internal/models"
)

// ErrInvalidEntry reports an entry missing a required field.
var ErrInvalidEntry = errors.New("invalid entry")

// ErrUnknownPlayer reports an entry referencing a player the document never
// declares.
var ErrUnknownPlayer = errors.New("entry references undeclared player")

// document is the on-disk dataset shape: players and games keyed by id,
// entries as a flat list.
type document struct {
	Players map[string]string      `json:"players"`
	Games   map[string]models.Game `json:"games"`
	Entries []models.Entry         `json:"entries"`
}

// Load reads and validates a dataset document from disk. The returned
// dataset gets a fresh snapshot id and is treated as immutable afterwards.
func Load(path string, logger *zap.Logger) (*models.Dataset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var doc document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	ds := FromDocument(doc.Players, doc.Games, doc.Entries)
	if err := Validate(ds); err != nil {
		return nil, err
	}

	sugar := logger.Sugar()
	sugar.Infow("dataset loaded",
		"path", path,
		"snapshot_id", ds.SnapshotID,
		"players", len(ds.Players),
		"games", len(ds.Games),
		"entries", len(ds.Entries),
	)
	if unknown := countUnknownGameEntries(ds); unknown > 0 {
		sugar.Warnw("entries reference undeclared games and will be skipped by game aggregation",
			"count", unknown)
	}

	return ds, nil
}

// FromDocument assembles a dataset value from its parts, filling in game ids
// (the document keys them by id without repeating it) and a snapshot id.
func FromDocument(players map[string]string, games map[string]models.Game, entries []models.Entry) *models.Dataset {
	if players == nil {
		players = map[string]string{}
	}
	if games == nil {
		games = map[string]models.Game{}
	}
	if entries == nil {
		entries = []models.Entry{}
	}

	for id, game := range games {
		game.ID = id
		games[id] = game
	}

	return &models.Dataset{
		SnapshotID: uuid.NewString(),
		Players:    players,
		Games:      games,
		Entries:    entries,
	}
}

// Validate rejects structurally broken input: entries missing a required
// field and entries referencing undeclared players. An empty dataset is
// valid; unknown game references are tolerated here and skipped later by
// aggregation.
func Validate(ds *models.Dataset) error {
	v := validator.New()

	for i, e := range ds.Entries {
		if err := v.Struct(e); err != nil {
			return fmt.Errorf("%w: entry %d: %v", ErrInvalidEntry, i, err)
		}
		if _, ok := ds.Players[e.PlayerID]; !ok {
			return fmt.Errorf("%w: entry %d player %q", ErrUnknownPlayer, i, e.PlayerID)
		}
	}

	return nil
}

func countUnknownGameEntries(ds *models.Dataset) int {
	count := 0
	for _, e := range ds.Entries {
		if _, ok := ds.Games[e.Game]; !ok {
			count++
		}
	}
	return count
}
