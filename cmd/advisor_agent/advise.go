package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eduguide/advisor/internal/catalog"
	"github.com/eduguide/advisor/internal/config"
	"github.com/eduguide/advisor/internal/engine"
	"github.com/eduguide/advisor/internal/enrich"
	"github.com/eduguide/advisor/internal/llm"
	"github.com/eduguide/advisor/internal/observability"
	"github.com/eduguide/advisor/internal/profile"
	"github.com/eduguide/advisor/internal/scoring"
)

var adviseCmd = &cobra.Command{
	Use:   "advise [message]",
	Short: "Answer one advising message",
	Long: "Processes one advisee message: extracts profile attributes, classifies the " +
		"intent, ranks the catalog, and prints the reply. With --profile the accumulated " +
		"profile is loaded before the message and the merged result written back.",
	Args: cobra.MinimumNArgs(1),
	RunE: runAdvise,
}

var (
	adviseProfile  string
	adviseName     string
	adviseConfig   string
	adviseResearch bool
	adviseJSON     bool
	adviseVerbose  bool
)

func init() {
	adviseCmd.Flags().StringVar(&adviseProfile, "profile", "", "Path to a profile JSON file; merged updates are written back")
	adviseCmd.Flags().StringVar(&adviseName, "name", "", "Advisee name for personalized greetings")
	adviseCmd.Flags().StringVarP(&adviseConfig, "config", "c", "", "Path to a JSON config file")
	adviseCmd.Flags().BoolVar(&adviseResearch, "research", false, "Fetch live notes about candidate schools")
	adviseCmd.Flags().BoolVar(&adviseJSON, "json", false, "Print the full response as JSON")
	adviseCmd.Flags().BoolVarP(&adviseVerbose, "verbose", "v", false, "Print profile and ranking details")

	rootCmd.AddCommand(adviseCmd)
}

func runAdvise(cmd *cobra.Command, args []string) error {
	message := strings.Join(args, " ")

	cfg, err := loadConfig(adviseConfig)
	if err != nil {
		return err
	}
	if adviseName != "" {
		cfg.UserName = adviseName
	}
	if adviseVerbose {
		cfg.Verbose = true
	}
	if adviseResearch {
		cfg.Research = true
	}

	current, err := loadProfile(adviseProfile)
	if err != nil {
		return err
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load college catalog: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := buildClient(ctx, cfg)
	if err != nil {
		return err
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	advisor := enrich.New(engine.New(cat), client, enrich.Options{
		Research:      cfg.Research,
		ResearchLimit: cfg.ResearchPerReq,
		Verbose:       cfg.Verbose,
	})

	resp := advisor.Advise(ctx, enrich.Request{
		Message:  message,
		Profile:  current,
		UserName: cfg.UserName,
		Mode:     "demo",
	})

	merged := profile.Merge(current, deref(resp.ProfileUpdates))

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintProfile(&merged)
		printer.PrintRanking(scoring.Rank(merged, cat.All(), 0))
		printer.PrintSources(&resp)
	}

	if adviseJSON {
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}
		fmt.Println(string(out))
	} else {
		printResponse(resp)
	}

	if adviseProfile != "" {
		if err := saveProfile(adviseProfile, merged); err != nil {
			return err
		}
	}

	return nil
}

// printResponse renders the response for a terminal session.
func printResponse(resp enrich.Response) {
	fmt.Println(resp.Content)

	if len(resp.Colleges) > 0 {
		fmt.Println()
		for i, c := range resp.Colleges {
			fmt.Printf("%d. %s — %s, %s (%s)\n", i+1, c.Name, c.City, c.State, c.Type)
			fmt.Printf("   In-state tuition: $%d/yr, acceptance rate: %s\n", c.TuitionInState, c.AcceptanceRate)
		}
	}

	if len(resp.Sources) > 0 {
		fmt.Println("\nSources:")
		for _, s := range resp.Sources {
			fmt.Printf("  %s — %s\n", s.Title, s.URL)
		}
	}

	if len(resp.FollowUpQuestions) > 0 {
		fmt.Println("\nYou might ask next:")
		for _, q := range resp.FollowUpQuestions {
			fmt.Printf("  - %s\n", q)
		}
	}
}

// loadConfig reads the config file when given, then overlays the
// environment.
func loadConfig(path string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildClient connects the generative layer when a key is configured.
// No key means the deterministic pipeline runs alone.
func buildClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, nil
	}

	llmCfg := llm.DefaultConfig()
	if cfg.GeminiModel != "" {
		llmCfg = llmCfg.WithModel(llm.TierStandard, cfg.GeminiModel)
	}

	client, err := llm.NewGeminiClient(ctx, llmCfg, cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}

func loadProfile(path string) (profile.Profile, error) {
	var p profile.Profile
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return p, nil
}

func saveProfile(path string, p profile.Profile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile file %s: %w", path, err)
	}
	return nil
}

func deref(p *profile.Profile) profile.Profile {
	if p == nil {
		return profile.Profile{}
	}
	return *p
}
