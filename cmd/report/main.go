// Command report renders puzzle statistics from a dataset file as terminal
// tables, and converts raw chat exports into the dataset format.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/puzzleboard/stats-api/internal/dataset"
	"github.com/puzzleboard/stats-api/internal/models"
)

var (
	datasetPath string
	catalogPath string
)

var rootCmd = &cobra.Command{
	Use:   "report",
	Short: "Puzzle statistics report tool",
	Long:  "Render leaderboards, player profiles, and recent activity from a puzzle results dataset.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "dataset.json", "path to the dataset file")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "path to a game catalog override file")

	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(parseCmd)
}

func loadCatalog() (dataset.Catalog, error) {
	if catalogPath == "" {
		return dataset.DefaultCatalog(), nil
	}
	return dataset.LoadCatalog(catalogPath)
}

func loadDataset() (*models.Dataset, error) {
	ds, err := dataset.Load(datasetPath, zap.NewNop())
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	catalog.Enrich(ds)

	return ds, nil
}
