package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/folio/internal/content"
)

// hostingChoices maps the deployment question to a base path template.
var hostingChoices = []string{
	"user or custom-domain site (served from /)",
	"project site (served from /<repository>/)",
}

// RunWizard runs an interactive wizard, writes the config to configPath and,
// unless it already exists, a starter content file filled with the answers.
func RunWizard(configPath string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's set up your portfolio.")
	fmt.Println()

	cfg := DefaultConfig()
	sample := content.Sample()

	// 1. Profile basics.
	answers := []struct {
		label  string
		target *string
	}{
		{"Your name", &sample.Profile.Name},
		{"Title", &sample.Profile.Title},
		{"Affiliation", &sample.Profile.Affiliation},
		{"Contact email", &sample.Profile.Email},
		{"External profile URL (blank for none)", &sample.Profile.ProfileURL},
	}
	for _, a := range answers {
		prompt := promptui.Prompt{Label: a.label, Default: *a.target}
		v, err := prompt.Run()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", strings.ToLower(a.label), err)
		}
		*a.target = strings.TrimSpace(v)
	}

	// 2. Hosting.
	hostingPrompt := promptui.Select{
		Label: "Where will the site be hosted",
		Items: hostingChoices,
	}
	hostingIdx, _, err := hostingPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("hosting selection: %w", err)
	}
	if hostingIdx == 1 {
		repoPrompt := promptui.Prompt{
			Label: "Repository name",
			Validate: func(s string) error {
				if strings.TrimSpace(s) == "" || strings.Contains(s, "/") {
					return fmt.Errorf("enter a bare repository name")
				}
				return nil
			},
		}
		repo, err := repoPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("repository name: %w", err)
		}
		cfg.BasePath = "/" + strings.TrimSpace(repo) + "/"
	}

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the export",
		Default: cfg.OutputDir,
	}
	if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra static exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	cfg.Exclude = append(cfg.Exclude, splitAndTrim(excludeStr)...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("\nConfiguration saved to %s\n", configPath)

	if _, err := os.Stat(cfg.ContentFile); err == nil {
		fmt.Printf("Keeping existing content file %s\n", cfg.ContentFile)
		return cfg, nil
	}
	if err := sample.Save(cfg.ContentFile); err != nil {
		return nil, fmt.Errorf("saving starter content: %w", err)
	}
	fmt.Printf("Starter content written to %s; put your photo and CV in %s/\n", cfg.ContentFile, cfg.StaticDir)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
