package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stockroom/inventory-api/internal/api/handler/v1/request"
	"github.com/stockroom/inventory-api/internal/api/handler/v1/response"
	"github.com/stockroom/inventory-api/internal/domain"
	"github.com/stockroom/inventory-api/internal/service"
)

type ItemService interface {
	CreateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	ListItems(ctx context.Context, category string) ([]domain.Item, error)
	UpdateItem(ctx context.Context, id uint, patch domain.ItemPatch) (domain.Item, error)
	AdjustQuantity(ctx context.Context, id uint, delta int) (domain.Item, error)
	DeleteItem(ctx context.Context, id uint) error
}

type ItemHandler struct {
	svc ItemService
}

func NewItemHandler(svc ItemService) *ItemHandler {
	return &ItemHandler{
		svc: svc,
	}
}

// HandleCreateItem godoc
// @Summary      Create a new item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateItemRequest  true  "request body"
// @Success      201      {object}  map[string]uint
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /items [post]
func (h *ItemHandler) HandleCreateItem(ctx *gin.Context) {
	var req request.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateItem(ctx.Request.Context(), domain.Item{
		Name:     req.Name,
		Quantity: *req.Quantity,
		Price:    *req.Price,
		Category: req.Category,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateItem -> h.svc.CreateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": created.ID})
}

// HandleListItems godoc
// @Summary      List items
// @Description  Lists all items, optionally filtered by exact category match.
// @Tags         items
// @Produce      json
// @Param        category  query     string  false  "category filter"
// @Success      200       {array}   domain.Item
// @Failure      500       {object}  response.Err
// @Router       /items [get]
func (h *ItemHandler) HandleListItems(ctx *gin.Context) {
	category := ctx.Query("category")

	items, err := h.svc.ListItems(ctx.Request.Context(), category)
	if err != nil {
		err = fmt.Errorf("v1.HandleListItems -> h.svc.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleUpdateItem godoc
// @Summary      Update an item
// @Description  Applies any subset of item fields; omitted fields are left unchanged.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        itemID   path      int  true  "Item ID"
// @Param        request  body      request.UpdateItemRequest  true  "request body"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /items/{itemID} [put]
func (h *ItemHandler) HandleUpdateItem(ctx *gin.Context) {
	itemID, err := parseItemID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateItemRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	_, err = h.svc.UpdateItem(ctx.Request.Context(), itemID, domain.ItemPatch{
		Name:     req.Name,
		Quantity: req.Quantity,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", itemID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateItem -> h.svc.UpdateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// HandleAdjustQuantity godoc
// @Summary      Adjust an item's quantity
// @Description  Applies a relative quantity change. Fails if the result would be negative.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        itemID   path      int  true  "Item ID"
// @Param        request  body      request.AdjustQuantityRequest  true  "request body"
// @Success      200      {object}  map[string]int
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /items/{itemID}/quantity [put]
func (h *ItemHandler) HandleAdjustQuantity(ctx *gin.Context) {
	itemID, err := parseItemID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.AdjustQuantityRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	adjusted, err := h.svc.AdjustQuantity(ctx.Request.Context(), itemID, *req.Delta)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", itemID))
			return
		}
		if errors.Is(err, service.ErrQuantityBelowZero) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrQuantityBelowZero))
			return
		}

		err = fmt.Errorf("v1.HandleAdjustQuantity -> h.svc.AdjustQuantity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"new_quantity": adjusted.Quantity})
}

// HandleDeleteItem godoc
// @Summary      Delete an item
// @Tags         items
// @Produce      json
// @Param        itemID  path  int  true  "Item ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /items/{itemID} [delete]
func (h *ItemHandler) HandleDeleteItem(ctx *gin.Context) {
	itemID, err := parseItemID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteItem(ctx.Request.Context(), itemID); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", itemID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteItem -> h.svc.DeleteItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func parseItemID(ctx *gin.Context) (uint, error) {
	itemID, err := strconv.ParseUint(ctx.Param("itemID"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid item ID: %w", err)
	}

	return uint(itemID), nil
}
