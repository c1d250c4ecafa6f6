package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/puzzleboard/stats-api/internal/dataset"
)

var parseOut string

var parseCmd = &cobra.Command{
	Use:   "parse <chat-export.txt>",
	Short: "Convert a chat export into a dataset file",
	Long: `Read a raw chat export of shared puzzle results, extract the plays it
contains, and write them out in the dataset format.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseOut, "out", "", "output path (default stdout)")
}

func runParse(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read chat export: %w", err)
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	p := dataset.NewParser(catalog, zap.NewNop())
	ds := p.ParseText(string(content))
	if len(ds.Entries) == 0 {
		return fmt.Errorf("no puzzle results found in %s", args[0])
	}

	doc := map[string]interface{}{
		"players": ds.Players,
		"games":   ds.Games,
		"entries": ds.Entries,
	}
	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	encoded = append(encoded, '\n')

	if parseOut == "" {
		_, err = os.Stdout.Write(encoded)
		return err
	}
	if err := os.WriteFile(parseOut, encoded, 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %d entries to %s\n", len(ds.Entries), parseOut)
	return nil
}
