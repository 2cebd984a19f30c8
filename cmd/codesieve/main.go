package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/atotto/clipboard"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"codesieve/internal/config"
	"codesieve/internal/llm"
	"codesieve/internal/pipeline"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Request flags
	promptFile  string
	apiURL      string
	model       string
	temperature float64
	maxTokens   int
	streamMode  bool

	// Output flags
	noCopy        bool
	codeOnly      bool
	cleanOutput   bool
	attemptFix    bool
	outputPath    string
	autoSave      bool
	projectFolder bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "codesieve [prompt]",
	Short: "codesieve - turn LM Studio output into runnable code",
	Long: `codesieve sends a prompt to a local LM Studio server and distills the
response into a directly runnable source file.

It locates code embedded in prose, strips interactive-session noise, reorders
declarations into definition-before-use sequence, consolidates imports,
repairs common duplicate-definition mistakes, and derives filenames and a
dependency manifest from the result.

Without a prompt argument, the prompt is read from prompt.txt (or --file).`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "path to config file")

	rootCmd.Flags().StringVarP(&promptFile, "file", "f", "", "path to prompt file (default: prompt.txt)")
	rootCmd.Flags().StringVarP(&apiURL, "api-url", "u", "", "LM Studio API base URL (default: http://localhost:1234/v1)")
	rootCmd.Flags().StringVarP(&model, "model", "m", "", "model identifier to request")
	rootCmd.Flags().Float64VarP(&temperature, "temperature", "t", -1, "sampling temperature (default: 0.7)")
	rootCmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "maximum tokens to generate (default: 2000)")
	rootCmd.Flags().BoolVarP(&streamMode, "stream", "s", false, "stream the response as it arrives")

	rootCmd.Flags().BoolVarP(&noCopy, "no-copy", "n", false, "do not copy the result to the clipboard")
	rootCmd.Flags().BoolVarP(&codeOnly, "code-only", "c", false, "extract only code blocks from the response")
	rootCmd.Flags().BoolVar(&cleanOutput, "clean", false, "clean extracted code for execution")
	rootCmd.Flags().BoolVar(&attemptFix, "fix", false, "attempt to fix common issues in generated code")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "save extracted code to the given file")
	rootCmd.Flags().BoolVar(&autoSave, "auto-save", false, "save code to a file with an inferred name")
	rootCmd.Flags().BoolVar(&projectFolder, "project-folder", false, "create a project folder with a requirements manifest")
}

func main() {
	// .env is optional; flags and config cover everything it can set.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "codesieve.yaml"
	}
	return filepath.Join(home, ".codesieve", "config.yaml")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg)

	prompt, err := resolvePrompt(args, cfg)
	if err != nil {
		printError("%v", err)
		return err
	}

	printInfo("\nSending prompt:")
	fmt.Printf("%q\n", prompt)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := llm.NewLMStudioClient(llm.Config{
		BaseURL:     cfg.API.BaseURL,
		Model:       cfg.API.Model,
		Temperature: cfg.API.Temperature,
		MaxTokens:   cfg.API.MaxTokens,
		Timeout:     cfg.APITimeout(),
	})

	printInfo("Connecting to %s...", cfg.API.BaseURL)
	start := time.Now()
	completion, err := complete(ctx, client, prompt)
	elapsed := time.Since(start)
	if err != nil {
		printError("Error communicating with model server: %v", err)
		logger.Error("completion failed", zap.Error(err))
		return err
	}

	if !streamMode {
		printHeader("\nModel Response:")
		fmt.Println(completion)
		printDivider()
	}

	result := pipeline.Process(completion, prompt, pipeline.Options{
		ExtractCodeOnly:     codeOnly,
		CleanForExecution:   cleanOutput,
		AttemptFix:          attemptFix,
		AutoName:            autoSave && outputPath == "",
		CreateProjectFolder: projectFolder,
	}, logger)

	if codeOnly && result.Code != completion {
		printInfo("\nExtracted code:")
		fmt.Println(result.Code)
	}
	if attemptFix && result.Code != completion {
		printSuccess("\nFixed common code issues")
	}

	if !noCopy {
		if err := clipboard.WriteAll(result.Code); err != nil {
			logger.Warn("clipboard copy failed", zap.Error(err))
		} else {
			printInfo("\nResponse copied to clipboard")
			if codeOnly {
				printInfo("(Code blocks only)")
			}
			if cleanOutput {
				printInfo("(Cleaned for execution)")
			}
			if attemptFix {
				printInfo("(Fixed common issues)")
			}
		}
	}

	if err := persist(result); err != nil {
		printError("%v", err)
		return err
	}

	printInfo("\nResponse time: %.2f seconds", elapsed.Seconds())
	printInfo("Approximate response tokens: %d", len(strings.Fields(completion)))
	return nil
}

func applyFlagOverrides(cfg *config.Config) {
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	if model != "" {
		cfg.API.Model = model
	}
	if temperature >= 0 {
		cfg.API.Temperature = temperature
	}
	if maxTokens > 0 {
		cfg.API.MaxTokens = maxTokens
	}
}

// resolvePrompt takes the positional prompt when given, otherwise reads it
// from the prompt file.
func resolvePrompt(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}

	path := promptFile
	if path == "" {
		path = cfg.Output.PromptFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("prompt file %q not found", path)
		}
		return "", fmt.Errorf("error reading prompt file: %w", err)
	}
	prompt := strings.TrimSpace(string(data))
	if prompt == "" {
		return "", fmt.Errorf("prompt file %q is empty", path)
	}
	return prompt, nil
}

func complete(ctx context.Context, client llm.Client, prompt string) (string, error) {
	if !streamMode {
		return client.Complete(ctx, prompt)
	}

	printHeader("\nModel Response:")
	completion, err := client.CompleteStream(ctx, prompt, func(delta string) {
		fmt.Print(delta)
	})
	fmt.Println()
	printDivider()
	return completion, err
}
