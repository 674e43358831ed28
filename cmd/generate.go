package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mkerrigan/figgen/core/config"
	"github.com/mkerrigan/figgen/core/errors"
	"github.com/mkerrigan/figgen/core/figma"
	"github.com/mkerrigan/figgen/core/pipeline"
	"github.com/mkerrigan/figgen/core/project"
	"github.com/mkerrigan/figgen/core/providers"
	"github.com/mkerrigan/figgen/core/synth"
	"github.com/mkerrigan/figgen/core/writer"
	"github.com/spf13/cobra"
)

var (
	generateProject string
	generateName    string
	generateDiff    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [reference]",
	Short: "Generate a component from a Figma layout",
	Long: `Generate a React component from a Figma file key or URL.

The reference may be a bare file key or a full figma.com file/design URL,
optionally carrying a node-id query parameter to target one element.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateProject, "project", ".", "Destination project root")
	generateCmd.Flags().StringVar(&generateName, "name", "", "Override the generated file name")
	generateCmd.Flags().BoolVar(&generateDiff, "diff", false, "Preview a diff before confirming the write")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	reference := ""
	if len(args) > 0 {
		reference = args[0]
	}
	if reference == "" {
		var err error
		reference, err = readReferenceInteractive()
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(generateProject)
	if err != nil {
		return err
	}

	provider, err := selectProvider(cfg)
	if err != nil {
		return reportFailure(err)
	}

	scanner := project.NewScanner(generateProject)
	client := figma.NewClient(cfg.Figma.Token)
	gen := synth.NewSynthesizer(provider, synth.Options{
		Model:       cfg.Generator.Model,
		Temperature: cfg.Generator.Temperature,
		MaxTokens:   cfg.Generator.MaxTokens,
	})
	fw := writer.New(
		generateProject,
		&writer.StdinConfirmer{In: os.Stdin, Out: os.Stdout},
		writer.NewDiffRenderer(os.Stdout),
	)

	p := pipeline.New(scanner, client, gen, fw, func(stage string) {
		color.New(color.FgCyan).Printf("» %s\n", stage)
	})
	p.NameOverride = generateName
	p.ShowDiff = generateDiff

	result, err := p.Run(context.Background(), reference)
	if err != nil {
		return reportFailure(err)
	}
	if result.Cancelled {
		fmt.Println("Cancelled. Nothing was written.")
		return nil
	}

	color.New(color.FgGreen).Printf("✓ Component written to %s\n", result.Path)
	return nil
}

func readReferenceInteractive() (string, error) {
	fmt.Print("Figma file URL or key: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// selectProvider builds the configured backend. Registration dispatches
// on the provider selector; nothing downstream branches on it.
func selectProvider(cfg *config.Config) (providers.Provider, error) {
	registry := providers.NewRegistry()

	switch strings.ToLower(cfg.Generator.Provider) {
	case string(providers.ProviderTypeAnthropic):
		if cfg.Generator.AnthropicAPIKey == "" {
			return nil, errors.MissingCredential("anthropic")
		}
		if err := registry.RegisterAnthropic(providers.Config{
			APIKey:      cfg.Generator.AnthropicAPIKey,
			Model:       cfg.Generator.Model,
			MaxTokens:   cfg.Generator.MaxTokens,
			Temperature: cfg.Generator.Temperature,
		}); err != nil {
			return nil, err
		}
	case string(providers.ProviderTypeOpenAI):
		if cfg.Generator.OpenAIAPIKey == "" {
			return nil, errors.MissingCredential("openai")
		}
		if err := registry.RegisterOpenAI(providers.Config{
			APIKey:      cfg.Generator.OpenAIAPIKey,
			Model:       cfg.Generator.Model,
			MaxTokens:   cfg.Generator.MaxTokens,
			Temperature: cfg.Generator.Temperature,
		}); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown provider %q (valid: anthropic, openai)", cfg.Generator.Provider)
	}

	return registry.Default()
}

// reportFailure prints the classified error and its remediation, keeping
// cancellations silent.
func reportFailure(err error) error {
	kind, ok := errors.KindOf(err)
	if ok && kind == errors.KindWriteCancelled {
		fmt.Println("Cancelled. Nothing was written.")
		return nil
	}

	color.New(color.FgRed).Fprintf(os.Stderr, "✗ %v\n", err)
	if ok {
		if remedy := errors.Remediation(kind); remedy != "" {
			fmt.Fprintln(os.Stderr, remedy)
		}
	}
	return err
}
