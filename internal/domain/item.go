package domain

// Item is a single inventory record.
type Item struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// ItemPatch carries a partial update. Nil fields are left unchanged.
type ItemPatch struct {
	Name     *string
	Quantity *int
	Price    *float64
	Category *string
}
