package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/stockroom/inventory-api/internal/domain"
)

type ReportService struct {
	repo ItemRepository
}

func NewReportService(repo ItemRepository) *ReportService {
	return &ReportService{
		repo: repo,
	}
}

// Summarize walks all items once and accumulates the total stock value,
// a per-category rollup in first-seen order, and the items whose quantity
// is zero or negative.
func (s *ReportService) Summarize(ctx context.Context) (domain.Report, error) {
	items, err := s.repo.FindAll(ctx, "")
	if err != nil {
		return domain.Report{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	report := domain.Report{
		Categories:   []domain.CategorySummary{},
		InvalidItems: []domain.InvalidItem{},
	}
	seen := map[string]int{}

	for _, item := range items {
		value := float64(item.Quantity) * item.Price
		report.TotalValue += value

		idx, ok := seen[item.Category]
		if !ok {
			idx = len(report.Categories)
			seen[item.Category] = idx
			report.Categories = append(report.Categories, domain.CategorySummary{Category: item.Category})
		}
		report.Categories[idx].TotalQuantity += item.Quantity
		report.Categories[idx].TotalValue += value

		if item.Quantity <= 0 {
			report.InvalidItems = append(report.InvalidItems, domain.InvalidItem{
				ID:       item.ID,
				Name:     item.Name,
				Quantity: item.Quantity,
			})
		}
	}

	return report, nil
}

// RenderCSV renders a report as delimited text. The column order is part of
// the contract; downstream consumers parse it positionally.
func (s *ReportService) RenderCSV(report domain.Report) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	records := [][]string{
		{"TOTAL", formatValue(report.TotalValue)},
		{""},
		{"CATEGORY", "QUANTITY", "VALUE"},
	}
	for _, category := range report.Categories {
		records = append(records, []string{
			category.Category,
			strconv.Itoa(category.TotalQuantity),
			formatValue(category.TotalValue),
		})
	}
	records = append(records, []string{""}, []string{"ITEMS WITH ZERO OR NEGATIVE QUANTITY"})
	for _, item := range report.InvalidItems {
		records = append(records, []string{
			strconv.FormatUint(uint64(item.ID), 10),
			item.Name,
			strconv.Itoa(item.Quantity),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return "", fmt.Errorf("w.WriteAll -> %w", err)
	}

	return sb.String(), nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
