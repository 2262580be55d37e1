package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spigell/resume-scorer/internal/ai"
	aigemini "github.com/spigell/resume-scorer/internal/ai/gemini"
	"github.com/spigell/resume-scorer/internal/embedding"
	"github.com/spigell/resume-scorer/internal/logger"
	"github.com/spigell/resume-scorer/internal/report"
	"github.com/spigell/resume-scorer/internal/scoring"
	"github.com/spigell/resume-scorer/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var feedbackPrompt = promptui.Select{
	Label: "Generate detailed AI feedback?",
	Items: []string{PromptYes, PromptNo},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Score a resume against a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("resume", "r", "", "path to the resume text file")
	runCmd.Flags().StringP("job-description", "v", "", "path to the job description text file")
	runCmd.Flags().BoolP("auto-aprove", "y", false, "generate AI feedback without asking for confirmation")

	_ = runCmd.MarkFlagRequired("resume")
	_ = runCmd.MarkFlagRequired("job-description")
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the resume-scorer", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	resumeText, err := readInput(cmd, "resume")
	if err != nil {
		logger.Fatal("reading the resume", zap.Error(err))
	}

	jobDescription, err := readInput(cmd, "job-description")
	if err != nil {
		logger.Fatal("reading the job description", zap.Error(err))
	}

	scorer := scoring.NewScorer(prepareEncoder(config, logger), logger)

	score := scorer.Score(ctx, resumeText, jobDescription)
	feedback := scoring.FeedbackFor(score)

	logger.Info("scoring finished",
		zap.Int("score", score),
		zap.String("tier", feedback.Tier),
	)

	rep := &report.Report{
		Score:          score,
		Feedback:       feedback,
		ResumeText:     resumeText,
		JobDescription: jobDescription,
	}

	if config.AI != nil && config.AI.Enabled {
		rep.Analysis = generateAnalysis(ctx, cmd, config.AI, resumeText, jobDescription, logger)
	}

	fmt.Println(rep.Render())
}

func readInput(cmd *cobra.Command, flag string) (string, error) {
	path := strings.TrimSpace(cmd.Flag(flag).Value.String())
	if path == "" {
		return "", fmt.Errorf("%s file is required", flag)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s file: %w", flag, err)
	}

	return string(data), nil
}

// prepareEncoder builds the Gemini sentence encoder. A missing API key is
// not fatal: the scorer degrades to the keyword fallback on its own.
func prepareEncoder(config *Config, log *zap.Logger) scoring.Encoder {
	apiKey, err := resolveGeminiKey(config.Embedding.APIKeyFile)
	if err != nil {
		log.Warn("embedding backend is not configured, keyword fallback will be used",
			zap.Error(err),
			zap.String("hint", "set embedding.api-key-file or the GEMINI_API_KEY_FILE environment variable"),
		)
		return nil
	}

	embLogger := logger.WithProviderFields(log, "gemini", config.Embedding.Model)

	return embedding.NewProvider(apiKey, config.Embedding.Model, embLogger)
}

func generateAnalysis(ctx context.Context, cmd *cobra.Command, cfg *AIConfig, resumeText, jobDescription string, log *zap.Logger) *ai.Analysis {
	if cmd.Flag("auto-aprove").Value.String() == "false" {
		_, action, err := feedbackPrompt.Run()
		if err != nil {
			log.Fatal("exiting", zap.Error(err))
		}
		if action != PromptYes {
			log.Info("skipping AI feedback", zap.String("reason", "got no from prompt"))
			return nil
		}
	}

	analyzer, err := newAnalyzer(ctx, cfg, log)
	if err != nil {
		log.Warn("skipping AI feedback", zap.Error(err))
		return nil
	}

	analysis, err := analyzer.Analyze(ctx, resumeText, jobDescription)
	if err != nil {
		log.Warn("AI feedback generation failed", zap.Error(err))
		return nil
	}

	return analysis
}

func newAnalyzer(ctx context.Context, cfg *AIConfig, log *zap.Logger) (ai.Analyzer, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai feedback is enabled")
	}

	apiKey, err := resolveGeminiKey(cfg.Gemini.APIKeyFile)
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.WithProviderFields(log, "gemini", cfg.Gemini.Model)

	generator, err := aigemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return aigemini.NewAnalyzer(generator, cfg.Gemini.MaxLogLength, genLogger), nil
}

func resolveGeminiKey(file string) (string, error) {
	if strings.TrimSpace(file) == "" {
		file = strings.TrimSpace(viper.GetString("gemini-api-key-file"))
	}

	return secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: file,
		Env:  "GEMINI_API_KEY",
	})
}
