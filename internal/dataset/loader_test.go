package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/puzzleboard/stats-api/internal/models"
)

func validEntry() models.Entry {
	return models.Entry{
		PlayerID: "alice",
		Game:     "zip",
		GameNum:  166,
		Date:     "2025-08-30",
		Metrics:  models.Metrics{Time: intPtr(42)},
	}
}

func TestValidate(t *testing.T) {
	players := map[string]string{"alice": "Alice"}
	games := map[string]models.Game{"zip": {HasTime: true}}

	tests := []struct {
		name    string
		mutate  func(*models.Entry)
		wantErr error
	}{
		{"Valid", func(e *models.Entry) {}, nil},
		{"MissingPlayer", func(e *models.Entry) { e.PlayerID = "" }, ErrInvalidEntry},
		{"MissingGame", func(e *models.Entry) { e.Game = "" }, ErrInvalidEntry},
		{"MissingDate", func(e *models.Entry) { e.Date = "" }, ErrInvalidEntry},
		{"UndeclaredPlayer", func(e *models.Entry) { e.PlayerID = "mallory" }, ErrUnknownPlayer},
		{"UndeclaredGameTolerated", func(e *models.Entry) { e.Game = "wordle" }, nil},
		{"NoMetricsTolerated", func(e *models.Entry) { e.Metrics = models.Metrics{} }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := validEntry()
			tt.mutate(&entry)
			ds := FromDocument(players, games, []models.Entry{entry})

			err := Validate(ds)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate: %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate: %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_EmptyDataset(t *testing.T) {
	ds := FromDocument(nil, nil, nil)
	if err := Validate(ds); err != nil {
		t.Errorf("empty dataset should validate, got %v", err)
	}
}

func TestFromDocument(t *testing.T) {
	games := map[string]models.Game{"zip": {HasTime: true}}
	ds := FromDocument(nil, games, nil)

	if ds.SnapshotID == "" {
		t.Error("SnapshotID not assigned")
	}
	if ds.Games["zip"].ID != "zip" {
		t.Errorf("game ID = %q, want key backfilled", ds.Games["zip"].ID)
	}
	if ds.Players == nil || ds.Entries == nil {
		t.Error("nil maps and slices should be replaced with empty ones")
	}
}

func TestFromDocument_FreshSnapshotIDs(t *testing.T) {
	a := FromDocument(nil, nil, nil)
	b := FromDocument(nil, nil, nil)
	if a.SnapshotID == b.SnapshotID {
		t.Error("two loads share a snapshot id")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("ValidDocument", func(t *testing.T) {
		path := write("valid.json", `{
			"players": {"alice": "Alice"},
			"games": {"zip": {"hasTime": true, "hasBacktracks": true}},
			"entries": [
				{"playerId": "alice", "game": "zip", "gameNum": 166, "date": "2025-08-30", "metrics": {"time": 42}}
			]
		}`)

		ds, err := Load(path, zap.NewNop())
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(ds.Entries) != 1 || ds.Entries[0].Metrics.Time == nil || *ds.Entries[0].Metrics.Time != 42 {
			t.Errorf("entries = %+v", ds.Entries)
		}
		if !ds.Games["zip"].HasBacktracks {
			t.Error("game capability flags lost in load")
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "absent.json"), zap.NewNop()); err == nil {
			t.Error("Load succeeded on a missing file")
		}
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		path := write("broken.json", `{"players": `)
		if _, err := Load(path, zap.NewNop()); err == nil {
			t.Error("Load succeeded on malformed JSON")
		}
	})

	t.Run("InvalidEntry", func(t *testing.T) {
		path := write("invalid.json", `{
			"players": {"alice": "Alice"},
			"games": {},
			"entries": [{"playerId": "alice", "game": "", "date": "2025-08-30"}]
		}`)
		_, err := Load(path, zap.NewNop())
		if !errors.Is(err, ErrInvalidEntry) {
			t.Errorf("err = %v, want ErrInvalidEntry", err)
		}
	})

	t.Run("UndeclaredPlayer", func(t *testing.T) {
		path := write("orphan.json", `{
			"players": {},
			"games": {},
			"entries": [{"playerId": "ghost", "game": "zip", "date": "2025-08-30"}]
		}`)
		_, err := Load(path, zap.NewNop())
		if !errors.Is(err, ErrUnknownPlayer) {
			t.Errorf("err = %v, want ErrUnknownPlayer", err)
		}
	})
}
