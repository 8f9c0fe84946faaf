package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-convert/internal/facades"
	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	"github.com/sbilibin2017/gw-currency-convert/internal/models"
	"github.com/sbilibin2017/gw-currency-convert/internal/workflow"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the command
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Demo credentials of the public cookbook. Not for production use.
const (
	demoLoginID = "development@currencycloud.com"
	demoAPIKey  = "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef"
)

func main() {
	printBuildInfo()
	configPath, verifyLogin := parseFlags()

	creds, baseURL, timeout, quote, conversion, logLevel, err := parseConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse config: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, creds, baseURL, timeout, quote, conversion, logLevel, verifyLogin); err != nil {
		workflow.Report(os.Stdout, err)
		stop()
		os.Exit(1)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Fprintf(os.Stderr, "Starting convertfunds version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path and
// whether only the credentials should be checked.
func parseFlags() (string, bool) {
	c := flag.String("c", "config.env", "Path to configuration file")
	v := flag.Bool("verify-login", false, "Only log in and out to check the credentials")
	flag.Parse()
	return *c, *v
}

// parseConfig loads environment variables from a file and returns the
// credentials, transport settings, workflow requests and log level.
func parseConfig(path string) (
	creds models.Credentials,
	baseURL string, timeout time.Duration,
	quote models.QuoteRequest, conversion models.ConversionRequest,
	logLevel string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// API config
	if creds.Environment, err = models.ParseEnvironment(getEnv("CC_ENVIRONMENT", string(models.EnvironmentDemo))); err != nil {
		return
	}
	creds.LoginID = getEnv("CC_LOGIN_ID", demoLoginID)
	creds.APIKey = getEnv("CC_API_KEY", demoAPIKey)
	baseURL = getEnv("CC_BASE_URL", "")

	timeoutSecond, err := strconv.Atoi(getEnv("CC_HTTP_TIMEOUT_SECOND", "30"))
	if err != nil {
		return
	}
	timeout = time.Duration(timeoutSecond) * time.Second

	// Workflow config
	quote.BuyCurrency = getEnv("CC_BUY_CURRENCY", "EUR")
	quote.SellCurrency = getEnv("CC_SELL_CURRENCY", "GBP")
	quote.FixedSide = models.FixedSide(getEnv("CC_FIXED_SIDE", string(models.FixedSideBuy)))
	if quote.Amount, err = decimal.NewFromString(getEnv("CC_AMOUNT", "10000")); err != nil {
		return
	}

	conversion.QuoteRequest = quote
	conversion.Reason = getEnv("CC_REASON", "Top up Euros balance")
	if conversion.TermAgreement, err = strconv.ParseBool(getEnv("CC_TERM_AGREEMENT", "true")); err != nil {
		return
	}

	return
}

// run initializes the logger and the API facade, then executes the workflow,
// printing step results to out.
func run(
	ctx context.Context,
	out io.Writer,
	creds models.Credentials,
	baseURL string, timeout time.Duration,
	quote models.QuoteRequest, conversion models.ConversionRequest,
	logLevel string,
	verifyLogin bool,
) error {
	if err := logger.Initialize(logLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	opts := []facades.Option{facades.WithTimeout(timeout)}
	if baseURL != "" {
		logger.Log.Infow("using base URL override", "base_url", baseURL)
		opts = append(opts, facades.WithBaseURL(baseURL))
	}
	api := facades.NewCurrencyCloudHTTPFacade(opts...)

	runner := workflow.NewRunner(api, api, api, out)
	if verifyLogin {
		return runner.VerifyLogin(ctx, creds)
	}
	return runner.Run(ctx, creds, quote, conversion)
}
