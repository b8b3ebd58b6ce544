package models

// OrderStatus is the lifecycle stage shown by the status tracker.
type OrderStatus string

const (
	OrderRequested OrderStatus = "requested"
	OrderConfirmed OrderStatus = "confirmed"
	OrderAssigned  OrderStatus = "assigned"
	OrderCompleted OrderStatus = "completed"
)

// StatusRecord is the tracker view of one booking.
type StatusRecord struct {
	ID       string      `json:"id"`
	Status   OrderStatus `json:"status"`
	Service  string      `json:"service"`
	Variant  string      `json:"variant"`
	Date     string      `json:"date"`
	Time     string      `json:"time"`
	Location string      `json:"location"`
	Expert   string      `json:"expert"`
	Rating   string      `json:"rating"`
	Total    string      `json:"total"`
}
