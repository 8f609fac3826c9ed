package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-zelda/internal/games/zelda/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the levels the title screen offers. With --levels, files in that
directory (YAML or TOML) are listed instead of the built-in set.
Files that fail to load are skipped.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	all, err := levelLoader().LoadAll()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No levels found.")
		return nil
	}

	fmt.Println("Available levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-10s  %-12s  %s\n", "#", "ID", "Name", "Obstacles")
	fmt.Printf("  %-3s  %-10s  %-12s  %s\n", "-", "--", "----", "---------")
	for _, lvl := range all {
		fmt.Printf("  %-3d  %-10s  %-12s  %s\n", lvl.Number, lvl.ID, lvl.Name, obstacleSummary(lvl))
	}
	fmt.Println()
	fmt.Println("Run 'zelda play --level <#>' to play one.")
	return nil
}

func obstacleSummary(lvl levels.Level) string {
	counts := map[levels.ObstacleKind]int{}
	for _, o := range lvl.Obstacles {
		counts[o.Kind]++
	}
	return fmt.Sprintf("%d decor, %d water, %d fire",
		counts[levels.Decor], counts[levels.Water], counts[levels.Fire])
}
