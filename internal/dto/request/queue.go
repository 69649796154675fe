package request

type OrderItemRequest struct {
	MenuItemID string  `json:"menuItemId" validate:"omitempty,uuid4"`
	Name       string  `json:"name" validate:"required"`
	Price      float64 `json:"price" validate:"gte=0"`
	Quantity   int     `json:"quantity" validate:"gte=1"`
}

type JoinQueueRequest struct {
	BusinessID    string             `json:"businessId" validate:"required,uuid4"`
	CustomerName  string             `json:"customerName" validate:"required"`
	CustomerPhone string             `json:"customerPhone"`
	CustomerEmail string             `json:"customerEmail" validate:"omitempty,email"`
	OrderItems    []OrderItemRequest `json:"orderItems" validate:"omitempty,dive"`
	IsPriority    bool               `json:"isPriority"`
}

// UpdateEntryRequest carries the only fields staff may merge into an
// entry directly; everything else goes through a dedicated transition.
type UpdateEntryRequest struct {
	CustomerName      *string            `json:"customerName,omitempty"`
	CustomerPhone     *string            `json:"customerPhone,omitempty"`
	CustomerEmail     *string            `json:"customerEmail,omitempty" validate:"omitempty,email"`
	OrderItems        []OrderItemRequest `json:"orderItems,omitempty" validate:"omitempty,dive"`
	EstimatedWaitTime *int               `json:"estimatedWaitTime,omitempty" validate:"omitempty,gte=0"`
}

type ExtendWaitRequest struct {
	Minutes int `json:"minutes" validate:"required,gte=1,lte=120"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=pending paid cancelled"`
	Notes         string `json:"notes"`
}
