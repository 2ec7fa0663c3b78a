package domain

// CategorySummary is the rollup for one category.
type CategorySummary struct {
	Category      string
	TotalQuantity int
	TotalValue    float64
}

// InvalidItem is an item flagged by the summary report
// because its quantity is zero or negative.
type InvalidItem struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Report is the aggregate view over all stored items.
// Categories keeps first-seen order so the CSV rendering is stable.
type Report struct {
	TotalValue   float64
	Categories   []CategorySummary
	InvalidItems []InvalidItem
}
