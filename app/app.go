package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"beatforge/app/controller"
	"beatforge/app/router"
	"beatforge/db"
	"beatforge/repository"
	"beatforge/service"
)

// Initialize initializes the application
func Initialize(ctx context.Context) error {
	// Initialize database connection and schema
	if err := db.InitDB(ctx); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		return err
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository()
	transactionRepo := repository.NewTransactionRepository()
	collaborationRepo := repository.NewCollaborationRepository()

	// Initialize external-service clients
	paystack, err := service.NewPaystackService(os.Getenv("PAYSTACK_SECRET_KEY"))
	if err != nil {
		return err
	}
	gemini, err := service.NewGeminiService(os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		return err
	}
	uploads, err := service.NewUploadService(os.Getenv("CLOUDINARY_URL"))
	if err != nil {
		return err
	}
	admin, err := service.NewAdminService(os.Getenv("ADMIN_PASSCODE"))
	if err != nil {
		return err
	}

	// Initialize the commerce core
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	downloadDir := os.Getenv("DOWNLOAD_DIR")
	if downloadDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		downloadDir = filepath.Join(home, "Downloads", "beatforge-assets")
	}

	catalog := service.NewCatalogService(productRepo)
	if err := catalog.Load(ctx); err != nil {
		return err
	}

	history, err := service.NewHistoryService(dataDir)
	if err != nil {
		return err
	}

	cart := service.NewCartService()
	checkout := service.NewCheckoutService(cart, history, paystack, transactionRepo)
	downloads := service.NewDownloadService(downloadDir)

	inbox := service.NewInboxService(collaborationRepo)
	if err := inbox.Refresh(ctx); err != nil {
		return err
	}
	// Keep the admin inbox fresh for the process lifetime; the poll stops
	// with the root context on shutdown
	inbox.StartPolling(ctx)

	// Create controllers
	controllers := &router.Controllers{
		Product:  controller.NewProductController(catalog, gemini),
		Cart:     controller.NewCartController(cart, catalog),
		Checkout: controller.NewCheckoutController(checkout, history),
		Download: controller.NewDownloadController(downloads, catalog),
		Collab:   controller.NewCollabController(inbox),
		Admin:    controller.NewAdminController(admin, inbox, transactionRepo),
		Upload:   controller.NewUploadController(uploads),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
