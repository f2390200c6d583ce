package resource

type CreateResourceReq struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required,oneof=books lab-equipment stationery electronics other"`
	PricePerDay float64 `json:"price_per_day" validate:"required,gt=0"`
	Image       *string `json:"image,omitempty"`
}
