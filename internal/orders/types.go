package orders

// OrderSubmission is the payload posted by the storefront checkout form.
// It lives for one request only.
type OrderSubmission struct {
	Product  Value `json:"product" validate:"required"`
	Size     Value `json:"size"`
	Price    Value `json:"price"`
	Name     Value `json:"name" validate:"required"`
	Phone    Value `json:"phone" validate:"required"`
	Address  Value `json:"address" validate:"required"`
	Quantity Value `json:"quantity"`
	Notes    Value `json:"notes"`
}

// LogFields returns the submission in a shape suitable for a log entry.
func (o OrderSubmission) LogFields() map[string]interface{} {
	return map[string]interface{}{
		"product":  o.Product.String(),
		"size":     o.Size.String(),
		"price":    o.Price.String(),
		"name":     o.Name.String(),
		"phone":    o.Phone.String(),
		"address":  o.Address.String(),
		"quantity": o.Quantity.String(),
		"notes":    o.Notes.String(),
	}
}
