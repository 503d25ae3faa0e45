package main

import (
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"campusfood/internal/notifications"
	"campusfood/internal/payments"
	"campusfood/internal/ratelimiter"
)

var version = "1.0.0"

// outboundTimeout bounds every provider call. A provider that does not answer
// within it surfaces as unavailable, not as a hung request.
const outboundTimeout = 15 * time.Second

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	// Default values
	defaultRequests := 200
	defaultEnabled := false

	// Retrieve request count with error handling
	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	// Retrieve enabled flag with error handling
	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	level := zapcore.InfoLevel

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	logger := zap.New(core)

	return logger.Sugar(), nil
}

func envOrDefault(key, fallback string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return fallback
}

// mustEnv fails startup when a required credential is absent. Missing
// provider credentials are a deploy problem, never a per-request error.
func mustEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		log.Fatalf("missing required environment variable: %s", key)
	}
	return val
}

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	smtpPort, err := strconv.Atoi(envOrDefault("SMTP_PORT", "587"))
	if err != nil {
		log.Fatalf("Invalid value for SMTP_PORT: %v", err)
	}

	cfg := config{
		addr:        envOrDefault("ADDR", ":8080"),
		env:         envOrDefault("ENV", "development"),
		frontendURL: os.Getenv("FRONTEND_URL"),
		otpProvider: envOrDefault("OTP_PROVIDER", notifications.ProviderRelay),
		relay: relayConfig{
			endpoint: envOrDefault("RELAY_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send"),
			origin:   mustEnv("RELAY_ORIGIN"),
		},
		smtp: smtpConfig{
			host: mustEnv("SMTP_HOST"),
			port: smtpPort,
			user: mustEnv("SMTP_USER"),
			pass: mustEnv("SMTP_PASS"),
			from: mustEnv("SMTP_FROM"),
		},
		payment: paymentConfig{
			keyID:     mustEnv("RAZORPAY_KEY_ID"),
			keySecret: mustEnv("RAZORPAY_KEY_SECRET"),
			endpoint:  os.Getenv("RAZORPAY_ENDPOINT"),
		},
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
		},
		rateLimiter: LoadRateLimiterConfig(),
	}

	// Logger
	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Email providers, registered once; the registry is read-only afterwards.
	dispatcher := notifications.NewDispatcher(logger)
	dispatcher.Register(notifications.ProviderRelay,
		notifications.NewRelayAdapter(cfg.relay.endpoint, cfg.relay.origin, outboundTimeout))
	dispatcher.Register(notifications.ProviderDirectMail,
		notifications.NewDirectMailAdapter(cfg.smtp.host, cfg.smtp.port, cfg.smtp.user, cfg.smtp.pass, cfg.smtp.from, outboundTimeout))

	// Payment processor
	razorpay := payments.NewRazorpayAdapter(cfg.payment.keyID, cfg.payment.keySecret, cfg.payment.endpoint, outboundTimeout)
	orders := payments.NewOrderService(razorpay, logger)

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	app := &application{
		config:      cfg,
		logger:      logger,
		dispatcher:  dispatcher,
		orders:      orders,
		rateLimiter: rateLimiter,
	}

	// Metrics collected at /v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
