package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"munchbox-be/internal/cart"
	"munchbox-be/internal/logger"
	"munchbox-be/internal/order"
	"munchbox-be/internal/revenue"
	"munchbox-be/internal/staff"
	"munchbox-be/internal/utils"

	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 30
	maxHistoryLimit     = 100
)

// ----------------- Public -----------------

func (a *API) handleSlots(w http.ResponseWriter, r *http.Request) {
	slots := a.orders.AvailableSlots()
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"open":  len(slots) > 0,
		"slots": slots,
	})
}

func (a *API) handleMenuCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.menu.Categories(r.Context())
	if err != nil {
		utils.WriteJSONError(w, "failed to load menu", http.StatusInternalServerError)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryResponse{
			ID:           c.ID,
			Name:         c.Name,
			Slug:         c.Slug,
			DisplayOrder: c.DisplayOrder,
		})
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

func (a *API) handleMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := a.menu.Items(r.Context())
	if err != nil {
		utils.WriteJSONError(w, "failed to load menu", http.StatusInternalServerError)
		return
	}

	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		resp := itemResponse{
			ID:          it.ID,
			CategoryID:  it.CategoryID,
			Name:        it.Name,
			Description: it.Description,
			BasePrice:   utils.PenceToPounds(it.BasePrice),
			HasOptions:  len(it.Options) > 0,
		}
		for _, o := range it.Options {
			resp.Options = append(resp.Options, optionResponse{
				ID:    o.ID,
				Name:  o.Name,
				Price: utils.PenceToPounds(o.Price),
			})
		}
		out = append(out, resp)
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

func (a *API) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	o, err := a.orders.PlaceOrder(r.Context(), req.toSubmission())
	if err != nil {
		var verr *cart.ValidationError
		if errors.As(err, &verr) {
			utils.WriteJSONError(w, verr.Error(), http.StatusBadRequest)
			return
		}
		// Persistence detail stays internal; the cart is untouched client
		// side so an immediate retry is safe.
		logger.FromCtx(r.Context()).Error("order creation failed", zap.Error(err))
		utils.WriteJSONError(w, "failed to create order, please try again", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, toOrderResponse(o))
}

func (a *API) handleCreateIntent(w http.ResponseWriter, r *http.Request) {
	if a.gateway == nil {
		utils.WriteJSONError(w, "payments are not configured", http.StatusNotImplemented)
		return
	}

	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Amount <= 0 {
		utils.WriteJSONError(w, "invalid amount provided", http.StatusBadRequest)
		return
	}

	intent, err := a.gateway.CreateIntent(r.Context(), utils.PoundsToPence(req.Amount), nil)
	if err != nil {
		logger.FromCtx(r.Context()).Error("payment intent failed", zap.Error(err))
		utils.WriteJSONError(w, "failed to start payment", http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"id":            intent.ID,
		"client_secret": intent.ClientSecret,
	})
}

func (a *API) handleStaffLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	token, err := a.auth.Login(req.Password)
	if err != nil {
		if errors.Is(err, staff.ErrBadCredentials) {
			utils.WriteJSONError(w, "wrong password", http.StatusUnauthorized)
			return
		}
		utils.WriteJSONError(w, "login unavailable", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}

// ----------------- Staff -----------------

func (a *API) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := a.orders.ListOrders(r.Context())
	if err != nil {
		utils.WriteJSONError(w, "failed to load orders", http.StatusInternalServerError)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

func (a *API) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || orderID <= 0 {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err = a.orders.UpdateStatus(r.Context(), orderID, order.Status(req.Status))
	switch {
	case err == nil:
		utils.WriteJSON(w, http.StatusOK, map[string]string{"status": req.Status})
	case errors.Is(err, order.ErrInvalidStatus):
		utils.WriteJSONError(w, "unknown order status", http.StatusBadRequest)
	case errors.Is(err, order.ErrInvalidTransition):
		utils.WriteJSONError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, order.ErrOrderNotFound):
		utils.WriteJSONError(w, "order not found", http.StatusNotFound)
	default:
		logger.FromCtx(r.Context()).Error("status update failed", zap.Error(err))
		utils.WriteJSONError(w, "failed to update order", http.StatusInternalServerError)
	}
}

func (a *API) handleRevenueToday(w http.ResponseWriter, r *http.Request) {
	sum := a.revenue.TodayRevenue(r.Context())
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"total_orders":  sum.TotalOrders,
		"total_revenue": utils.PenceToPounds(sum.TotalRevenue),
		"aggregated":    a.revenue.IsAggregateAvailable(r.Context()),
	})
}

func (a *API) handleRevenueHistory(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if (from == "") != (to == "") {
		utils.WriteJSONError(w, "from and to must be supplied together", http.StatusBadRequest)
		return
	}

	var records []revenue.DailyRecord
	if from != "" {
		if !validDate(from) || !validDate(to) {
			utils.WriteJSONError(w, "dates must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		records = a.revenue.Range(r.Context(), from, to)
	} else {
		limit := defaultHistoryLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				utils.WriteJSONError(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = n
		}
		if limit > maxHistoryLimit {
			limit = maxHistoryLimit
		}
		records = a.revenue.History(r.Context(), limit)
	}

	out := make([]historyResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, historyResponse{
			Date:         rec.Date,
			TotalOrders:  rec.TotalOrders,
			TotalRevenue: utils.PenceToPounds(rec.TotalRevenue),
		})
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

func validDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

func (a *API) handleRevenueReset(w http.ResponseWriter, r *http.Request) {
	a.revenue.Reset()
	w.WriteHeader(http.StatusNoContent)
}
