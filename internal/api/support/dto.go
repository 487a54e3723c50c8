package support

type ReturnRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Email   string `json:"email" validate:"required,email"`
	OrderID string `json:"order_id" validate:"required"`
	Reason  string `json:"reason" validate:"required,max=2000"`
}
