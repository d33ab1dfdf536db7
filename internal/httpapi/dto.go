package httpapi

import (
	"time"

	"munchbox-be/internal/cart"
	"munchbox-be/internal/order"
	"munchbox-be/internal/utils"
)

// Wire amounts are 2-decimal pounds; everything past this file is pence.

type createOrderRequest struct {
	CustomerName        string             `json:"customer_name"`
	CustomerPhone       string             `json:"customer_phone"`
	CollectionDate      string             `json:"collection_date"`
	CollectionTime      string             `json:"collection_time"`
	SpecialInstructions string             `json:"special_instructions"`
	TotalAmount         float64            `json:"total_amount"`
	Items               []orderItemRequest `json:"items"`
}

type orderItemRequest struct {
	MenuItemID     *int64  `json:"menu_item_id"`
	ItemName       string  `json:"item_name"`
	SelectedOption string  `json:"selected_option"`
	UnitPrice      float64 `json:"unit_price"`
	Quantity       int     `json:"quantity"`
}

func (r createOrderRequest) toSubmission() cart.Submission {
	lines := make([]cart.Line, 0, len(r.Items))
	for _, item := range r.Items {
		lines = append(lines, cart.Line{
			MenuItemID: item.MenuItemID,
			Name:       item.ItemName,
			Option:     item.SelectedOption,
			UnitPrice:  utils.PoundsToPence(item.UnitPrice),
			Quantity:   item.Quantity,
		})
	}
	return cart.Submission{
		Customer: cart.Customer{
			Name:         r.CustomerName,
			Phone:        r.CustomerPhone,
			Instructions: r.SpecialInstructions,
		},
		CollectionDate: r.CollectionDate,
		CollectionTime: r.CollectionTime,
		Lines:          lines,
		ClaimedTotal:   utils.PoundsToPence(r.TotalAmount),
	}
}

type orderResponse struct {
	ID                  int64               `json:"id"`
	OrderNumber         string              `json:"order_number"`
	CustomerName        string              `json:"customer_name"`
	CustomerPhone       string              `json:"customer_phone"`
	CollectionDate      string              `json:"collection_date"`
	CollectionTime      string              `json:"collection_time"`
	SpecialInstructions string              `json:"special_instructions,omitempty"`
	TotalAmount         float64             `json:"total_amount"`
	Status              string              `json:"status"`
	CreatedAt           time.Time           `json:"created_at"`
	Items               []orderItemResponse `json:"items"`
}

type orderItemResponse struct {
	ItemName       string  `json:"item_name"`
	SelectedOption string  `json:"selected_option,omitempty"`
	UnitPrice      float64 `json:"unit_price"`
	Quantity       int     `json:"quantity"`
	TotalPrice     float64 `json:"total_price"`
}

func toOrderResponse(o *order.Order) orderResponse {
	resp := orderResponse{
		ID:                  o.ID,
		OrderNumber:         o.OrderNumber,
		CustomerName:        o.CustomerName,
		CustomerPhone:       o.CustomerPhone,
		CollectionDate:      o.CollectionDate,
		CollectionTime:      o.CollectionTime,
		SpecialInstructions: o.SpecialInstructions,
		TotalAmount:         utils.PenceToPounds(o.TotalAmount),
		Status:              string(o.Status),
		CreatedAt:           o.CreatedAt,
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, orderItemResponse{
			ItemName:       item.ItemName,
			SelectedOption: item.SelectedOption,
			UnitPrice:      utils.PenceToPounds(item.UnitPrice),
			Quantity:       item.Quantity,
			TotalPrice:     utils.PenceToPounds(item.TotalPrice),
		})
	}
	return resp
}

type categoryResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	DisplayOrder int    `json:"display_order"`
}

type itemResponse struct {
	ID          int64            `json:"id"`
	CategoryID  int64            `json:"category_id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	BasePrice   float64          `json:"base_price"`
	HasOptions  bool             `json:"has_options"`
	Options     []optionResponse `json:"options,omitempty"`
}

type optionResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type historyResponse struct {
	Date         string  `json:"date"`
	TotalOrders  int     `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}
