package models

import "strings"

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "PENDING"
	OrderStatusAccepted       OrderStatus = "ACCEPTED"
	OrderStatusPreparing      OrderStatus = "PREPARING"
	OrderStatusReadyForPickup OrderStatus = "READY_FOR_PICKUP"
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

// PaymentStatus is the normalized form of the backend's payment status.
// The backend reports many synonyms, use NormalizePaymentStatus to map them.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
)

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Address struct {
	Street    string   `json:"street,omitempty"`
	City      string   `json:"city,omitempty"`
	Zip       string   `json:"zipCode,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type Order struct {
	ID              ID          `json:"id"`
	OrderStatus     OrderStatus `json:"orderStatus"`
	PaymentStatus   string      `json:"paymentStatus"`
	RestaurantID    ID          `json:"restaurantId,omitempty"`
	RestaurantName  string      `json:"restaurantName,omitempty"`
	DeliveryAddress *Address    `json:"deliveryAddress,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
	TotalAmount     float64     `json:"totalAmount,omitempty"`
}

// NormalizeOrderStatus upper-cases the raw status. An absent status is PENDING.
func NormalizeOrderStatus(raw string) OrderStatus {
	status := strings.ToUpper(strings.TrimSpace(raw))
	if status == "" {
		return OrderStatusPending
	}

	return OrderStatus(status)
}

func NormalizePaymentStatus(raw string) PaymentStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "SUCCESS", "PAID", "COMPLETED", "CAPTURED", "SUCCEEDED":
		return PaymentCompleted
	case "FAILED":
		return PaymentFailed
	default:
		return PaymentPending
	}
}

func (o Order) Status() OrderStatus {
	return NormalizeOrderStatus(string(o.OrderStatus))
}

func (o Order) Payment() PaymentStatus {
	return NormalizePaymentStatus(o.PaymentStatus)
}

// IsConfirmed reports whether the restaurant has taken the order on.
func (o Order) IsConfirmed() bool {
	switch o.Status() {
	case OrderStatusAccepted, OrderStatusPreparing, OrderStatusReadyForPickup:
		return true
	}

	return false
}

// IsClosed reports whether the order can no longer change.
func (o Order) IsClosed() bool {
	status := o.Status()
	return status == OrderStatusDelivered || status == OrderStatusCancelled
}

// CanRequestAssignment reports whether a delivery assignment may be created for the order:
// the payment has cleared or the restaurant has confirmed it, and it isn't closed yet.
func (o Order) CanRequestAssignment() bool {
	if o.IsClosed() {
		return false
	}

	return o.Payment() == PaymentCompleted || o.IsConfirmed()
}

// IsTrackable reports whether the order may be tracked at all. An unpaid order that
// nobody has moved past PENDING is blocked on payment.
func (o Order) IsTrackable() bool {
	return o.Payment() == PaymentCompleted || o.Status() != OrderStatusPending
}
