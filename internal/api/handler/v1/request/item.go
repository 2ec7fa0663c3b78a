package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// CreateItemRequest requires all four business fields. Quantity and price are
// pointers so that an absent field can be told apart from a legitimate zero.
type CreateItemRequest struct {
	Name     string   `json:"name"`
	Quantity *int     `json:"quantity"`
	Price    *float64 `json:"price"`
	Category string   `json:"category"`
}

func (req *CreateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Quantity, validation.NotNil, validation.Min(0)),
		// Ozzo threshold rules skip empty values, so a zero price needs
		// Required to be rejected as well.
		validation.Field(&req.Price, validation.NotNil, validation.Required, validation.Min(float64(0)).Exclusive()),
		validation.Field(&req.Category, validation.Required),
	)
}

// UpdateItemRequest accepts any subset of fields; only supplied fields are
// validated and applied.
type UpdateItemRequest struct {
	Name     *string  `json:"name"`
	Quantity *int     `json:"quantity"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
}

func (req *UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty),
		validation.Field(&req.Quantity, validation.Min(0)),
		validation.Field(&req.Price, validation.NilOrNotEmpty, validation.Min(float64(0)).Exclusive()),
		validation.Field(&req.Category, validation.NilOrNotEmpty),
	)
}

type AdjustQuantityRequest struct {
	Delta *int `json:"delta"`
}

func (req *AdjustQuantityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Delta, validation.NotNil),
	)
}
