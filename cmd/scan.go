package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/mkerrigan/figgen/core/project"
	"github.com/spf13/cobra"
)

var scanProject string

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Show the detected project context",
	Long:  `Inspect the destination project for Tailwind configuration and reusable components.`,
	RunE:  runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVar(&scanProject, "project", ".", "Project root to inspect")
}

func runScan(cmd *cobra.Command, args []string) error {
	scanner := project.NewScanner(scanProject)

	if scanner.HasTailwind() {
		color.New(color.FgGreen).Println("✓ Tailwind detected")
	} else {
		color.New(color.FgYellow).Println("– No Tailwind configuration found")
	}

	components := scanner.ListComponents()
	if len(components) == 0 {
		fmt.Println("No reusable components found.")
		return nil
	}

	fmt.Printf("Reusable components (%d):\n", len(components))
	for _, c := range components {
		fmt.Printf("  %-24s %s\n", c.Name, c.Path)
	}
	return nil
}
