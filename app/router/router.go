package router

import (
	"net/http"
	"strings"

	"beatforge/app/controller"
)

type Controllers struct {
	Product  *controller.ProductController
	Cart     *controller.CartController
	Checkout *controller.CheckoutController
	Download *controller.DownloadController
	Collab   *controller.CollabController
	Admin    *controller.AdminController
	Upload   *controller.UploadController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Storefront catalog
	http.HandleFunc("/products", controllers.Product.List)

	// Cart routes
	http.HandleFunc("/cart", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Cart.Get(w, r)
		} else if r.Method == http.MethodDelete {
			controllers.Cart.Clear(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	http.HandleFunc("/cart/items", controllers.Cart.AddItem)
	http.HandleFunc("/cart/items/", controllers.Cart.RemoveItem)

	// Checkout routes
	http.HandleFunc("/checkout", controllers.Checkout.Initiate)
	http.HandleFunc("/checkout/confirm", controllers.Checkout.Confirm)

	// Purchase history for the current session
	http.HandleFunc("/purchases", controllers.Checkout.Purchases)

	// Asset downloads
	http.HandleFunc("/downloads", controllers.Download.Download)
	http.HandleFunc("/downloads/active", controllers.Download.InFlight)

	// Public collaboration form
	http.HandleFunc("/collaborations", controllers.Collab.Create)
	http.HandleFunc("/collaborations/demo", controllers.Upload.Upload)

	// Admin login
	http.HandleFunc("/admin/login", controllers.Admin.Login)

	// Admin catalog management
	http.HandleFunc("/admin/products", controllers.Admin.Guard(controllers.Product.Create))
	http.HandleFunc("/admin/products/describe", controllers.Admin.Guard(controllers.Product.Describe))
	http.HandleFunc("/admin/products/tags", controllers.Admin.Guard(controllers.Product.SuggestTags))
	http.HandleFunc("/admin/products/", controllers.Admin.Guard(controllers.Product.Delete))

	// Admin uploads
	http.HandleFunc("/admin/upload", controllers.Admin.Guard(controllers.Upload.Upload))

	// Admin collaboration inbox
	http.HandleFunc("/admin/collaborations", controllers.Admin.Guard(controllers.Collab.List))
	http.HandleFunc("/admin/collaborations/", controllers.Admin.Guard(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/status") {
			controllers.Collab.UpdateStatus(w, r)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
	}))

	// Admin dashboard
	http.HandleFunc("/admin/stats", controllers.Admin.Guard(controllers.Admin.Stats))
	http.HandleFunc("/admin/notifications", controllers.Admin.Guard(controllers.Admin.Notifications))
}
