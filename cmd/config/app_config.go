package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"ecotrack/internal/api/handlers"
	"ecotrack/internal/api/routes"
	"ecotrack/internal/middleware"
	"ecotrack/internal/storage"
	"ecotrack/internal/utils"
	"ecotrack/internal/utils/mailing"
	"ecotrack/pkg/assistant"
	"ecotrack/pkg/co2"
	"ecotrack/pkg/dashboard"
	"ecotrack/pkg/expiry"
	"ecotrack/pkg/gemini"
	"ecotrack/pkg/inventory"
	"ecotrack/pkg/jwt"
	"ecotrack/pkg/notify"
	"ecotrack/pkg/waste"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

type Services struct {
	Inventory inventory.InventoryService
	Waste     waste.WasteService
	Dashboard dashboard.DashboardService
	Assistant assistant.AssistantService
}

// NewServices wires the ledgers on store. Both ledgers share one lock.
func NewServices(store storage.Store, clock utils.Clock, notifier notify.Notifier, geminiService gemini.GeminiService) Services {
	ledgerLock := &sync.Mutex{}
	expiryEstimator := expiry.NewExpiryEstimator()
	co2Estimator := co2.NewCO2Estimator()

	// Repository
	inventoryRepository := inventory.NewInventoryRepository(store)
	wasteRepository := waste.NewWasteRepository(store)

	// Service
	inventoryService := inventory.NewInventoryService(
		inventoryRepository,
		wasteRepository,
		store,
		expiryEstimator,
		co2Estimator,
		notifier,
		clock,
		ledgerLock,
	)
	wasteService := waste.NewWasteService(wasteRepository, co2Estimator, notifier, clock, ledgerLock)
	dashboardService := dashboard.NewDashboardService(inventoryService, co2Estimator, clock)
	assistantService := assistant.NewAssistantService(
		inventoryService,
		geminiService,
		utils.GetConfigDuration("ASSISTANT_TIMEOUT", assistant.DefaultTimeout),
		clock,
	)

	return Services{
		Inventory: inventoryService,
		Waste:     wasteService,
		Dashboard: dashboardService,
		Assistant: assistantService,
	}
}

func NewClock() utils.Clock {
	return utils.SystemClock(utils.LoadLocation(utils.GetConfig("TIMEZONE")))
}

func NewGeminiService() gemini.GeminiService {
	apiKey := utils.GetConfig("GEMINI_API_KEY")
	if apiKey == "" {
		log.Warn("GEMINI_API_KEY is not set, the assistant will answer with its fallback message")
	}
	return gemini.NewGeminiService(
		apiKey,
		utils.GetConfig("GEMINI_MODEL"),
		utils.GetConfig("GEMINI_BASE_URL"),
		nil,
	)
}

// NewNotifier always logs; it also mails expiry digests when SMTP and
// NOTIFY_EMAIL are configured.
func NewNotifier() notify.Notifier {
	notifiers := []notify.Notifier{notify.NewLogNotifier()}

	toEmail := utils.GetConfig("NOTIFY_EMAIL")
	if toEmail != "" {
		mailer, err := mailing.NewMailer(mailing.LoadMailConfig())
		if err != nil {
			log.Warnw("mail notifications disabled", "error", err)
		} else {
			notifiers = append(notifiers, notify.NewMailNotifier(mailer, toEmail, notify.EventExpiryDigest))
		}
	}
	return notify.NewMulti(notifiers...)
}

func NewJWTService() jwt.JWTService {
	secret := utils.GetConfig("JWT_SECRET")
	if secret == "" {
		log.Warn("JWT_SECRET is not set, the API is open")
		return nil
	}
	return jwt.NewJWTService(secret)
}

func NewApp(store storage.Store) (*fiber.App, error) {
	// setting up logging and limiter
	file, err := openLogFile("./logs")
	if err != nil {
		return nil, err
	}

	services := NewServices(store, NewClock(), NewNotifier(), NewGeminiService())
	return NewAppWithServices(services, NewJWTService(), file), nil
}

func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		filepath.Join(dir, "app.log"),
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	return file, nil
}

// NewAppWithServices builds the HTTP app around already wired services and
// writes request logs to logOutput.
func NewAppWithServices(services Services, jwtService jwt.JWTService, logOutput io.Writer) *fiber.App {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfigOrDefault("TIMEZONE", "Local"),
		Output:     logOutput,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        utils.GetConfigInt("RATE_LIMIT_MAX", 10),
		Expiration: 1 * time.Second,
	}))

	// Handler
	inventoryHandler := handlers.NewInventoryHandler(services.Inventory, validator)
	wasteHandler := handlers.NewWasteHandler(services.Waste, validator)
	dashboardHandler := handlers.NewDashboardHandler(services.Dashboard)
	assistantHandler := handlers.NewAssistantHandler(services.Assistant, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		InventoryHandler: inventoryHandler,
		WasteHandler:     wasteHandler,
		DashboardHandler: dashboardHandler,
		AssistantHandler: assistantHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app
}
