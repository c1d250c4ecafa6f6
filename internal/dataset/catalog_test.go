package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/puzzleboard/stats-api/internal/models"
)

func TestDateForGameNum(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		name    string
		game    string
		gameNum int
		want    string
	}{
		{"ZipAnchor", "zip", 166, "2025-08-30"},
		{"ZipEarlier", "zip", 160, "2025-08-24"},
		{"ZipLater", "zip", 168, "2025-09-01"},
		{"QueensAnchor", "queens", 487, "2025-08-30"},
		{"MiniSudoku", "minisudoku", 20, "2025-08-31"},
		{"UnknownGameFallsBackToReference", "wordle", 100, "2025-08-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.DateForGameNum(tt.game, tt.gameNum); got != tt.want {
				t.Errorf("DateForGameNum(%q, %d) = %q, want %q", tt.game, tt.gameNum, got, tt.want)
			}
		})
	}
}

func TestCatalogGame(t *testing.T) {
	c := DefaultCatalog()

	if g := c.Game("pinpoint"); !g.HasGuesses || g.HasTime {
		t.Errorf("pinpoint = %+v, want guess-based", g)
	}
	if g := c.Game("wordle"); !g.HasTime || g.ID != "wordle" {
		t.Errorf("unknown game = %+v, want generic timed fallback", g)
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := `referenceDate: "2025-09-01"
games:
  wordle:
    hasGuesses: true
    referenceNum: 1500
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	if c.ReferenceDate != "2025-09-01" {
		t.Errorf("ReferenceDate = %q, want override", c.ReferenceDate)
	}
	if g := c.Games["wordle"]; !g.HasGuesses || g.ID != "wordle" {
		t.Errorf("wordle = %+v, want loaded with id backfilled", g)
	}
	// Built-in games survive a partial override file.
	if _, ok := c.Games["zip"]; !ok {
		t.Error("built-in zip dropped by override load")
	}
}

func TestLoadCatalog_Errors(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadCatalog succeeded on a missing file")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte(":\n  - ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalog(path); err == nil {
		t.Error("LoadCatalog succeeded on malformed YAML")
	}
}

func TestCatalogEnrich(t *testing.T) {
	c := DefaultCatalog()
	ds := &models.Dataset{
		Games: map[string]models.Game{
			"zip":    {ID: "zip"},
			"custom": {ID: "custom", HasGuesses: true},
			"other":  {ID: "other"},
		},
	}

	c.Enrich(ds)

	if !ds.Games["zip"].HasTime || !ds.Games["zip"].HasBacktracks {
		t.Errorf("zip = %+v, want catalog capabilities filled in", ds.Games["zip"])
	}
	// A fully described game keeps its own flags.
	if ds.Games["custom"].HasTime {
		t.Error("custom game overwritten by catalog")
	}
	// Games the catalog does not know stay as declared.
	if ds.Games["other"].HasTime {
		t.Error("unknown game gained capabilities")
	}
}
