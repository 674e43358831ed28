package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "figgen",
	Short: "figgen - Figma layouts to Tailwind-styled React components",
	Long:  `figgen converts Figma layout trees into React components styled exclusively with Tailwind utility classes, and writes them into your project without ever overwriting existing files.`,
}

func Execute() error {
	return rootCmd.Execute()
}
