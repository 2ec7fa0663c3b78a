package response

import (
	"github.com/stockroom/inventory-api/internal/domain"
)

type CategorySummary struct {
	TotalQuantity int     `json:"total_quantity"`
	TotalValue    float64 `json:"total_value"`
}

type Summary struct {
	TotalValue   float64                    `json:"total_value"`
	Categories   map[string]CategorySummary `json:"categories"`
	InvalidItems []domain.InvalidItem       `json:"invalid_items"`
}

func NewSummary(report domain.Report) Summary {
	categories := make(map[string]CategorySummary, len(report.Categories))
	for _, c := range report.Categories {
		categories[c.Category] = CategorySummary{
			TotalQuantity: c.TotalQuantity,
			TotalValue:    c.TotalValue,
		}
	}

	return Summary{
		TotalValue:   report.TotalValue,
		Categories:   categories,
		InvalidItems: report.InvalidItems,
	}
}
