package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"concierge/config"
	"concierge/internal/api"
	"concierge/internal/assistant"
	"concierge/internal/credentials"
	"concierge/internal/f1"
	"concierge/internal/llm"
	"concierge/internal/stock"
	"concierge/internal/weather"
	"concierge/pkg/models"
)

var (
	cfg        *config.Config
	logger     zerolog.Logger
	forceLocal bool
	forceCloud bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "concierge [question]",
		Short: "Chat assistant for weather, stock quotes and Formula 1 races",
		Long: `Concierge answers free-text questions by routing them to one of three
data sources: current weather (OpenWeatherMap), stock quotes (Alpha
Vantage) and the Formula 1 race calendar (Ergast).

Routing is keyword-heuristic by default; set CHAT_MODE=llm to let a
language model pick the tool instead.

Examples:
  concierge "Paris weather"
  concierge "AAPL stock"
  concierge "when is the next f1 race"
  concierge chat
  concierge serve --port 8080`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}

			level, _ := zerolog.ParseLevel(cfg.LogLevel)
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().
				Timestamp().
				Logger()

			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runAsk(strings.Join(args, " "))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&forceLocal, "local", "l", false, "Force the local Ollama model (llm mode)")
	rootCmd.PersistentFlags().BoolVarP(&forceCloud, "cloud", "c", false, "Force the Claude API (llm mode)")

	rootCmd.AddCommand(askCmd())
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(configCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a single question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(strings.Join(args, " "))
		},
	}
}

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat()
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the chat API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				cfg.ServerPort = port
			}
			return runServer()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default: 8080)")
	return cmd
}

// createResponder wires the adapters into the assistant selected by CHAT_MODE.
func createResponder() api.Responder {
	weatherClient := weather.NewClient(cfg, logger)
	stockClient := stock.NewClient(cfg, logger)
	raceClient := f1.NewClient(cfg, logger)

	if cfg.Mode() != config.ModeLLM && !forceLocal && !forceCloud {
		return assistant.New(weatherClient, stockClient, raceClient, logger)
	}

	router := llm.NewHybridRouter(
		cfg.OllamaURL,
		cfg.OllamaModel,
		cfg.AnthropicAPIKey,
		"",
		cfg.PreferLocal || forceLocal,
	)

	var routed llm.Router = router
	if forceCloud {
		routed = llm.ForceClient(router.GetCloud())
	}

	if router.LocalAvailable() {
		logger.Info().Str("model", cfg.OllamaModel).Msg("local Ollama available")
	}
	if cfg.AnthropicAPIKey != "" {
		logger.Info().Msg("Claude API available")
	}

	return assistant.NewLLM(routed, weatherClient, stockClient, raceClient, logger)
}

func runAsk(question string) error {
	responder := createResponder()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	reply, err := responder.Reply(ctx, []models.ChatMessage{{Role: "user", Content: question}})
	if err != nil {
		return err
	}

	fmt.Println(reply)
	return nil
}

func runChat() error {
	responder := createResponder()
	store := assistant.NewConversationStore()
	convID := uuid.New().String()
	store.Create(convID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nGoodbye!")
		cancel()
		os.Exit(0)
	}()

	fmt.Println("Concierge - weather, stocks and Formula 1")
	fmt.Println("=========================================")
	fmt.Println("Type a city name, a stock symbol, or ask about the next F1 race.")
	fmt.Println()
	fmt.Println("Type 'exit' or 'quit' to end the session, 'clear' to start over.")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("You: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if input == "exit" || input == "quit" {
			fmt.Println("Goodbye!")
			return nil
		}

		if input == "clear" {
			store.Delete(convID)
			convID = uuid.New().String()
			store.Create(convID)
			fmt.Println("Conversation cleared.")
			continue
		}

		store.Append(convID, models.ChatMessage{Role: "user", Content: input})

		reply, err := responder.Reply(ctx, store.Get(convID).Messages)
		if err != nil {
			fmt.Printf("Error: %v\n\n", err)
			continue
		}

		store.Append(convID, models.ChatMessage{Role: "assistant", Content: reply})
		fmt.Printf("Assistant: %s\n\n", reply)
	}
}

func runServer() error {
	responder := createResponder()
	server := api.NewServer(responder, cfg.ServerPort, logger, cfg)

	return server.Start()
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check data provider connectivity",
		Long:  "Issue one request against each configured data provider and report the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck()
		},
	}
}

func runCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Println("Checking data providers...")

	weatherClient := weather.NewClient(cfg, logger)
	if _, err := weatherClient.Current(ctx, "London"); err != nil {
		fmt.Printf("  weather (OpenWeatherMap): FAILED: %v\n", err)
	} else {
		fmt.Println("  weather (OpenWeatherMap): OK")
	}

	stockClient := stock.NewClient(cfg, logger)
	if _, err := stockClient.Quote(ctx, "IBM"); err != nil {
		fmt.Printf("  stock (Alpha Vantage):    FAILED: %v\n", err)
	} else {
		fmt.Println("  stock (Alpha Vantage):    OK")
	}

	raceClient := f1.NewClient(cfg, logger)
	if race, info, err := raceClient.NextRace(ctx, time.Now()); err != nil {
		fmt.Printf("  races (Ergast):           FAILED: %v\n", err)
	} else if info != "" {
		fmt.Printf("  races (Ergast):           OK (%s)\n", info)
	} else {
		fmt.Printf("  races (Ergast):           OK (next: %s on %s)\n", race.RaceName, race.Date)
	}

	return nil
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage credentials stored in OS keychain",
		Long: `Manage API credentials stored securely in your OS keychain.

Credentials are stored in:
  - macOS: Keychain Access
  - Windows: Credential Manager
  - Linux: Secret Service (GNOME Keyring)

Examples:
  concierge config setup          # Interactive setup
  concierge config show           # Show configured credentials
  concierge config clear          # Remove all stored credentials`,
	}

	cmd.AddCommand(configSetupCmd())
	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configClearCmd())

	return cmd
}

func configSetupCmd() *cobra.Command {
	var openWeatherKey, alphaVantageKey, anthropicKey string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Configure API credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if openWeatherKey == "" {
				fmt.Print("OpenWeatherMap API Key (press Enter to skip): ")
				key, _ := readPassword()
				openWeatherKey = strings.TrimSpace(key)
			}

			if alphaVantageKey == "" {
				fmt.Print("Alpha Vantage API Key (press Enter to skip): ")
				key, _ := readPassword()
				alphaVantageKey = strings.TrimSpace(key)
			}

			if anthropicKey == "" {
				fmt.Print("Anthropic API Key (press Enter to skip): ")
				key, _ := readPassword()
				anthropicKey = strings.TrimSpace(key)
			}

			if err := credentials.Setup(openWeatherKey, alphaVantageKey, anthropicKey); err != nil {
				return fmt.Errorf("failed to store credentials: %w", err)
			}

			fmt.Println("\nCredentials stored securely in OS keychain.")
			fmt.Println("You can now run concierge without setting environment variables.")
			return nil
		},
	}

	cmd.Flags().StringVar(&openWeatherKey, "openweather-key", "", "OpenWeatherMap API key")
	cmd.Flags().StringVar(&alphaVantageKey, "alphavantage-key", "", "Alpha Vantage API key")
	cmd.Flags().StringVar(&anthropicKey, "anthropic-key", "", "Anthropic API key")

	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show configured credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			configured := credentials.ListConfigured()

			fmt.Println("Credential Status (stored in OS keychain):")
			fmt.Println("==========================================")

			status := func(ok bool) string {
				if ok {
					return "configured"
				}
				return "not set"
			}

			fmt.Printf("  OpenWeatherMap API Key:  %s\n", status(configured[credentials.KeyOpenWeather]))
			fmt.Printf("  Alpha Vantage API Key:   %s\n", status(configured[credentials.KeyAlphaVantage]))
			fmt.Printf("  Anthropic API Key:       %s\n", status(configured[credentials.KeyAnthropic]))

			fmt.Println("\nNote: Environment variables override keychain values.")
			return nil
		},
	}
}

func configClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print("Are you sure you want to clear all stored credentials? [y/N]: ")
			reader := bufio.NewReader(os.Stdin)
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))

			if response != "y" && response != "yes" {
				fmt.Println("Cancelled.")
				return nil
			}

			if err := credentials.ClearAll(); err != nil {
				fmt.Printf("Warning: some credentials may not have been cleared: %v\n", err)
			}

			fmt.Println("All credentials cleared from keychain.")
			return nil
		},
	}
}

func readPassword() (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		return string(bytes), err
	}
	reader := bufio.NewReader(os.Stdin)
	return reader.ReadString('\n')
}
