// Package httpapi is the JSON boundary over the core services. It stays
// thin: decode, call the service, map errors to status codes. Customer
// endpoints are public; the order board and revenue views sit behind the
// staff gate.
package httpapi

import (
	"net/http"

	"munchbox-be/internal/menu"
	"munchbox-be/internal/middleware"
	"munchbox-be/internal/order"
	"munchbox-be/internal/payment"
	"munchbox-be/internal/revenue"
	"munchbox-be/internal/staff"
)

type API struct {
	orders  order.Service
	menu    menu.Service
	revenue revenue.Service
	gateway payment.Gateway
	auth    *staff.Authenticator
}

func New(
	orders order.Service,
	menuSvc menu.Service,
	revenueSvc revenue.Service,
	gateway payment.Gateway,
	auth *staff.Authenticator,
) *API {
	return &API{
		orders:  orders,
		menu:    menuSvc,
		revenue: revenueSvc,
		gateway: gateway,
		auth:    auth,
	}
}

// Routes mounts every endpoint on a fresh mux.
func (a *API) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /api/slots", a.handleSlots)
	mux.HandleFunc("GET /api/menu/categories", a.handleMenuCategories)
	mux.HandleFunc("GET /api/menu/items", a.handleMenuItems)
	mux.HandleFunc("POST /api/orders", a.handleCreateOrder)
	mux.HandleFunc("POST /api/payments/intent", a.handleCreateIntent)
	mux.HandleFunc("POST /api/staff/login", a.handleStaffLogin)

	// Staff
	mux.Handle("GET /api/orders", a.staffOnly(a.handleListOrders))
	mux.Handle("PATCH /api/orders/{id}/status", a.staffOnly(a.handleUpdateStatus))
	mux.Handle("GET /api/revenue/today", a.staffOnly(a.handleRevenueToday))
	mux.Handle("GET /api/revenue/history", a.staffOnly(a.handleRevenueHistory))
	mux.Handle("POST /api/revenue/reset", a.staffOnly(a.handleRevenueReset))

	return mux
}

func (a *API) staffOnly(h http.HandlerFunc) http.Handler {
	return middleware.StaffOnly(a.auth, h)
}
