package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stockroom/inventory-api/internal/api/handler/v1/response"
	"github.com/stockroom/inventory-api/internal/domain"
)

type ReportService interface {
	Summarize(ctx context.Context) (domain.Report, error)
	RenderCSV(report domain.Report) (string, error)
}

type ReportHandler struct {
	svc ReportService
}

func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{
		svc: svc,
	}
}

// HandleGetSummary godoc
// @Summary      Get the inventory summary report
// @Description  Total stock value, per-category rollups and items with zero or negative quantity.
// @Tags         reports
// @Produce      json
// @Produce      text/csv
// @Param        format  query     string  false  "json or csv"  Enums(json, csv)
// @Success      200     {object}  response.Summary
// @Failure      400     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /reports/summary [get]
func (h *ReportHandler) HandleGetSummary(ctx *gin.Context) {
	format := ctx.DefaultQuery("format", "json")
	if format != "json" && format != "csv" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("format must be json or csv")))
		return
	}

	report, err := h.svc.Summarize(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetSummary -> h.svc.Summarize -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if format == "csv" {
		rendered, err := h.svc.RenderCSV(report)
		if err != nil {
			err = fmt.Errorf("v1.HandleGetSummary -> h.svc.RenderCSV -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
			return
		}

		ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(rendered))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSummary(report))
}
