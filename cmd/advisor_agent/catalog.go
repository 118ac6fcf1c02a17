package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eduguide/advisor/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the embedded college catalog",
	RunE:  runCatalog,
}

var (
	catalogState string
	catalogType  string
)

func init() {
	catalogCmd.Flags().StringVar(&catalogState, "state", "", "Filter by two-letter state code")
	catalogCmd.Flags().StringVar(&catalogType, "type", "", "Filter by school type")

	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(_ *cobra.Command, _ []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load college catalog: %w", err)
	}

	state := strings.ToUpper(catalogState)
	shown := 0
	for _, c := range cat.All() {
		if state != "" && c.State != state {
			continue
		}
		if catalogType != "" && !strings.EqualFold(string(c.Type), catalogType) {
			continue
		}
		fmt.Printf("%-18s %s — %s, %s (%s)\n", c.ID, c.Name, c.City, c.State, c.Type)
		shown++
	}

	fmt.Printf("\n%d of %d colleges", shown, cat.Len())
	fmt.Printf(" | states: %s", strings.Join(cat.States(), ", "))
	fmt.Println()
	return nil
}
