package response

import (
	"time"

	"easydrive_booking/internal/domain/entities"
)

type OrderResponse struct {
	ID             string    `json:"id"`
	OrderCode      string    `json:"order_code"`
	CustomerName   string    `json:"customer_name,omitempty"`
	RouteArea      string    `json:"route_area"`
	ServiceType    string    `json:"service_type"`
	VehicleType    string    `json:"vehicle_type"`
	PriceBeforeTax float64   `json:"price_before_tax"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"payment_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		OrderCode:      o.OrderCode,
		CustomerName:   o.CustomerName,
		RouteArea:      o.RouteArea,
		ServiceType:    string(o.ServiceType),
		VehicleType:    string(o.VehicleType),
		PriceBeforeTax: o.PriceBeforeTax,
		Currency:       o.Currency,
		Status:         string(o.Status),
		PaymentStatus:  string(o.PaymentStatus),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type StatusEventResponse struct {
	Status string    `json:"status"`
	Note   string    `json:"note,omitempty"`
	At     time.Time `json:"at"`
}

// TrackResponse is the public tracking view: order summary plus its status
// history, newest first. Customer details stay private.
type TrackResponse struct {
	OrderCode     string                `json:"order_code"`
	RouteArea     string                `json:"route_area"`
	ServiceType   string                `json:"service_type"`
	Status        string                `json:"status"`
	PaymentStatus string                `json:"payment_status"`
	Events        []StatusEventResponse `json:"events"`
}

func FromTimeline(o entities.Order, events []entities.StatusEvent) TrackResponse {
	resp := TrackResponse{
		OrderCode:     o.OrderCode,
		RouteArea:     o.RouteArea,
		ServiceType:   string(o.ServiceType),
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		Events:        make([]StatusEventResponse, 0, len(events)),
	}
	for _, e := range events {
		resp.Events = append(resp.Events, StatusEventResponse{
			Status: string(e.Status),
			Note:   e.Note,
			At:     e.At,
		})
	}
	return resp
}
