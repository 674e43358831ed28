package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkerrigan/figgen/core/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var authAPIKey string

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage service credentials",
	Long:  `Configure tokens for the Figma API and the generative backends.`,
}

var authSetCmd = &cobra.Command{
	Use:   "set <service>",
	Short: "Set the token for a service",
	Long:  `Set the stored token for a service (figma, anthropic, openai).`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAuthSet,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which services have credentials configured",
	RunE:  runAuthStatus,
}

var authRemoveCmd = &cobra.Command{
	Use:   "remove <service>",
	Short: "Remove the stored token for a service",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuthRemove,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authRemoveCmd)

	authSetCmd.Flags().StringVar(&authAPIKey, "token", "", "Token value (reads from stdin if not provided)")
}

func isValidService(service string) bool {
	switch service {
	case "figma", "anthropic", "openai":
		return true
	default:
		return false
	}
}

func runAuthSet(cmd *cobra.Command, args []string) error {
	service := strings.ToLower(args[0])
	if !isValidService(service) {
		return fmt.Errorf("invalid service: %s (valid: figma, anthropic, openai)", service)
	}

	key := authAPIKey
	if key == "" {
		var err error
		key, err = readTokenInteractive(service)
		if err != nil {
			return err
		}
	}

	creds, err := loadCredentialsFile()
	if err != nil {
		return err
	}
	creds[service] = key
	if err := saveCredentialsFile(creds); err != nil {
		return err
	}

	fmt.Printf("Credentials saved for %s\n", service)
	return nil
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	creds, err := loadCredentialsFile()
	if err != nil {
		return err
	}

	fmt.Println("Service Status:")
	fmt.Println("---------------")
	for _, s := range []string{"figma", "anthropic", "openai"} {
		status := "not configured"
		if creds[s] != "" {
			status = "configured"
		}
		fmt.Printf("  %-12s %s\n", s+":", status)
	}
	return nil
}

func runAuthRemove(cmd *cobra.Command, args []string) error {
	service := strings.ToLower(args[0])
	if !isValidService(service) {
		return fmt.Errorf("invalid service: %s (valid: figma, anthropic, openai)", service)
	}

	creds, err := loadCredentialsFile()
	if err != nil {
		return err
	}
	if _, ok := creds[service]; !ok {
		fmt.Printf("No credentials found for %s\n", service)
		return nil
	}

	delete(creds, service)
	if err := saveCredentialsFile(creds); err != nil {
		return err
	}

	fmt.Printf("Credentials removed for %s\n", service)
	return nil
}

func readTokenInteractive(service string) (string, error) {
	fmt.Printf("Enter token for %s: ", service)
	reader := bufio.NewReader(os.Stdin)
	key, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(key), nil
}

func loadCredentialsFile() (map[string]string, error) {
	path, err := config.CredentialsPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading credentials: %w", err)
	}

	var file struct {
		Credentials map[string]string `yaml:"credentials"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing credentials: %w", err)
	}
	if file.Credentials == nil {
		return make(map[string]string), nil
	}
	return file.Credentials, nil
}

func saveCredentialsFile(creds map[string]string) error {
	dir, err := config.EnsureConfigDir()
	if err != nil {
		return err
	}

	file := struct {
		Credentials map[string]string `yaml:"credentials"`
	}{Credentials: creds}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("marshaling credentials: %w", err)
	}

	path := filepath.Join(dir, "credentials.yaml")
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}
	return nil
}
