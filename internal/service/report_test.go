package service_test

import (
	"context"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/inventory-api/internal/domain"
	"github.com/stockroom/inventory-api/internal/service"
)

func TestReportService_Summarize(t *testing.T) {
	mockRepo := new(MockItemRepository)
	svc := service.NewReportService(mockRepo)

	items := []domain.Item{
		{ID: 1, Name: "Laptop", Quantity: 2, Price: 100, Category: "A"},
		{ID: 2, Name: "Gadget", Quantity: 0, Price: 5, Category: "B"},
	}
	mockRepo.On("FindAll", "").Return(items, nil).Once()

	report, err := svc.Summarize(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, float64(200), report.TotalValue)
	require.Len(t, report.Categories, 2)
	assert.Equal(t, domain.CategorySummary{Category: "A", TotalQuantity: 2, TotalValue: 200}, report.Categories[0])
	assert.Equal(t, domain.CategorySummary{Category: "B", TotalQuantity: 0, TotalValue: 0}, report.Categories[1])
	require.Len(t, report.InvalidItems, 1)
	assert.Equal(t, domain.InvalidItem{ID: 2, Name: "Gadget", Quantity: 0}, report.InvalidItems[0])
	mockRepo.AssertExpectations(t)
}

func TestReportService_Summarize_EmptyStore(t *testing.T) {
	mockRepo := new(MockItemRepository)
	svc := service.NewReportService(mockRepo)

	mockRepo.On("FindAll", "").Return([]domain.Item{}, nil).Once()

	report, err := svc.Summarize(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, report.TotalValue)
	assert.Empty(t, report.Categories)
	assert.Empty(t, report.InvalidItems)
	assert.NotNil(t, report.Categories)
	assert.NotNil(t, report.InvalidItems)
	mockRepo.AssertExpectations(t)
}

func TestReportService_Summarize_CategoriesKeepFirstSeenOrder(t *testing.T) {
	mockRepo := new(MockItemRepository)
	svc := service.NewReportService(mockRepo)

	items := []domain.Item{
		{ID: 1, Name: "One", Quantity: 1, Price: 1, Category: "Z"},
		{ID: 2, Name: "Two", Quantity: 1, Price: 1, Category: "A"},
		{ID: 3, Name: "Three", Quantity: 1, Price: 1, Category: "Z"},
	}
	mockRepo.On("FindAll", "").Return(items, nil).Once()

	report, err := svc.Summarize(context.Background())

	assert.NoError(t, err)
	require.Len(t, report.Categories, 2)
	assert.Equal(t, "Z", report.Categories[0].Category)
	assert.Equal(t, "A", report.Categories[1].Category)
	assert.Equal(t, 2, report.Categories[0].TotalQuantity)
	mockRepo.AssertExpectations(t)
}

func TestReportService_RenderCSV(t *testing.T) {
	svc := service.NewReportService(nil)

	report := domain.Report{
		TotalValue: 200,
		Categories: []domain.CategorySummary{
			{Category: "A", TotalQuantity: 2, TotalValue: 200},
			{Category: "B", TotalQuantity: 0, TotalValue: 0},
		},
		InvalidItems: []domain.InvalidItem{
			{ID: 2, Name: "Gadget", Quantity: 0},
		},
	}

	rendered, err := svc.RenderCSV(report)

	assert.NoError(t, err)
	want := "TOTAL,200.00\n" +
		"\n" +
		"CATEGORY,QUANTITY,VALUE\n" +
		"A,2,200.00\n" +
		"B,0,0.00\n" +
		"\n" +
		"ITEMS WITH ZERO OR NEGATIVE QUANTITY\n" +
		"2,Gadget,0\n"
	assert.Equal(t, want, rendered)
}

// The structured report and its CSV rendering must agree on every value.
func TestReportService_CSVMatchesStructuredReport(t *testing.T) {
	mockRepo := new(MockItemRepository)
	svc := service.NewReportService(mockRepo)

	items := []domain.Item{
		{ID: 1, Name: "Laptop", Quantity: 2, Price: 100, Category: "A"},
		{ID: 2, Name: "Gadget", Quantity: 0, Price: 5, Category: "B"},
		{ID: 3, Name: "Chair", Quantity: -1, Price: 30, Category: "A"},
	}
	mockRepo.On("FindAll", "").Return(items, nil).Once()

	report, err := svc.Summarize(context.Background())
	require.NoError(t, err)

	rendered, err := svc.RenderCSV(report)
	require.NoError(t, err)

	reader := csv.NewReader(strings.NewReader(rendered))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	// encoding/csv drops the blank separator lines, so the layout is:
	// total, category header, category rows, invalid header, invalid rows.
	require.Equal(t, []string{"TOTAL", "200.00"}, records[0])
	require.Equal(t, []string{"CATEGORY", "QUANTITY", "VALUE"}, records[1])

	categoryRows := records[2 : 2+len(report.Categories)]
	for i, row := range categoryRows {
		assert.Equal(t, report.Categories[i].Category, row[0])
		assert.Equal(t, strconv.Itoa(report.Categories[i].TotalQuantity), row[1])

		value, err := strconv.ParseFloat(row[2], 64)
		require.NoError(t, err)
		assert.InDelta(t, report.Categories[i].TotalValue, value, 0.001)
	}

	headerIdx := 2 + len(report.Categories)
	require.Equal(t, []string{"ITEMS WITH ZERO OR NEGATIVE QUANTITY"}, records[headerIdx])

	invalidRows := records[headerIdx+1:]
	require.Len(t, invalidRows, len(report.InvalidItems))
	for i, row := range invalidRows {
		assert.Equal(t, strconv.FormatUint(uint64(report.InvalidItems[i].ID), 10), row[0])
		assert.Equal(t, report.InvalidItems[i].Name, row[1])
		assert.Equal(t, strconv.Itoa(report.InvalidItems[i].Quantity), row[2])
	}

	total, err := strconv.ParseFloat(records[0][1], 64)
	require.NoError(t, err)
	assert.InDelta(t, report.TotalValue, total, 0.001)

	mockRepo.AssertExpectations(t)
}
