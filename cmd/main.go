package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sbilibin2017/gw-currency-chat/internal/currencies"
	"github.com/sbilibin2017/gw-currency-chat/internal/facades"
	"github.com/sbilibin2017/gw-currency-chat/internal/formatter"
	"github.com/sbilibin2017/gw-currency-chat/internal/logger"
	"github.com/sbilibin2017/gw-currency-chat/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-chat/internal/renderers"
	"github.com/sbilibin2017/gw-currency-chat/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the client
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const helpText = `commands:
  /currencies              list popular currencies
  /shortcuts               list predefined queries
  /shortcut <name>         send a predefined query
  /format <amount> <code>  format an amount locally
  /identify <text>         show the currencies found in text
  /help                    show this help
  /quit                    exit
anything else is sent to the assistant`

func main() {
	printBuildInfo()
	configPath := parseFlags()

	apiURL, logLevel, timeoutSecond, transcriptPath, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout, apiURL, logLevel, timeoutSecond, transcriptPath); err != nil {
		log.Fatalf("chat client stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the chat API, logging, timeout and transcript configuration.
func parseConfig(path string) (
	apiURL, logLevel string,
	timeoutSecond int,
	transcriptPath string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	apiURL = getEnv("CHAT_API_URL", "http://localhost:5000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	transcriptPath = getEnv("CHAT_TRANSCRIPT_HTML", "")
	if timeoutSecond, err = strconv.Atoi(getEnv("CHAT_TIMEOUT_SECOND", "30")); err != nil {
		return
	}
	if timeoutSecond <= 0 {
		err = fmt.Errorf("CHAT_TIMEOUT_SECOND must be positive, got %d", timeoutSecond)
	}
	return
}

// run wires the logger, HTTP client and chat service, then reads lines from
// in until EOF, /quit or ctx cancellation. When transcriptPath is set the
// conversation is also written there as HTML on exit.
func run(ctx context.Context,
	in io.Reader, out io.Writer,
	apiURL, logLevel string,
	timeoutSecond int,
	transcriptPath string,
) error {
	if err := logger.Initialize(logLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Log.Sync()
	logger.Log.Infow("logger initialized", "level", logLevel)

	httpClient := &http.Client{
		Transport: middlewares.LoggingMiddleware(logger.Log)(http.DefaultTransport),
	}
	api, err := facades.NewChatAPIFacade(apiURL, httpClient)
	if err != nil {
		return err
	}
	logger.Log.Infow("chat API configured", "endpoint", api.Endpoint())

	var renderer services.Renderer = renderers.NewTerminalRenderer(out)
	if transcriptPath != "" {
		transcript := renderers.NewHTMLRenderer()
		renderer = renderers.NewMultiRenderer(renderer, transcript)
		defer func() {
			if err := os.WriteFile(transcriptPath, []byte(transcript.HTML()+"\n"), 0o644); err != nil {
				logger.Log.Errorw("failed to write transcript", "path", transcriptPath, "error", err)
				return
			}
			logger.Log.Infow("transcript written", "path", transcriptPath)
		}()
	}

	svc := services.NewChatService(api, renderer)
	timeout := time.Duration(timeoutSecond) * time.Second

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	fmt.Fprintln(out, "type /help for commands")
	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("shutdown signal received, stopping chat client")
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			quit, err := handleLine(ctx, out, svc, line, timeout)
			if err != nil {
				fmt.Fprintln(out, "error:", err)
			}
			if quit {
				return nil
			}
		}
	}
}

// handleLine runs a single REPL command or submits the line as a message.
func handleLine(ctx context.Context, out io.Writer, svc *services.ChatService, line string, timeout time.Duration) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "/") {
		reqCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		// failures are already shown by the renderer
		_ = svc.Submit(reqCtx, line)
		return false, nil
	}

	cmd, arg, _ := strings.Cut(line[1:], " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(out, helpText)
	case "currencies":
		for _, c := range currencies.Popular() {
			fmt.Fprintf(out, "%s\t%s\t%s\n", c.Code, c.Symbol, c.Name)
		}
	case "shortcuts":
		for _, name := range services.Shortcuts() {
			q, _ := services.ShortcutQuery(name)
			fmt.Fprintf(out, "%s\t%s\n", name, q)
		}
	case "shortcut":
		reqCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if err := svc.Shortcut(reqCtx, arg); errors.Is(err, services.ErrUnknownShortcut) {
			return false, fmt.Errorf("%w %q", err, arg)
		}
	case "format":
		amount, code, found := strings.Cut(arg, " ")
		if !found {
			return false, errors.New("usage: /format <amount> <code>")
		}
		fmt.Fprintln(out, formatter.FormatValue(amount, currencies.Normalize(code)))
	case "identify":
		pair := currencies.Identify(arg)
		fmt.Fprintf(out, "base: %s, target: %s\n", orDash(pair.Base), orDash(pair.Target))
	default:
		return false, fmt.Errorf("unknown command /%s, type /help", cmd)
	}
	return false, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
