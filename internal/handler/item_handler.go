package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/geekysharma31/closet-api/internal/model"
	"github.com/geekysharma31/closet-api/internal/service"
	"github.com/labstack/echo/v4"
)

type ItemHandler struct {
	svc service.CatalogService
}

func NewItemHandler(svc service.CatalogService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

type CreateItemRequest struct {
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Description      string   `json:"description"`
	CoverImage       string   `json:"coverImage"`
	AdditionalImages []string `json:"additionalImages"`
}

type ItemResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Description      string   `json:"description"`
	CoverImage       string   `json:"coverImage"`
	AdditionalImages []string `json:"additionalImages"`
	CreatedAt        string   `json:"createdAt"`
}

type CreateItemResponse struct {
	Message string       `json:"message"`
	Item    ItemResponse `json:"item"`
}

func (h *ItemHandler) Create(c echo.Context) error {
	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewMessageResponse("invalid request body"))
	}
	item, err := h.svc.Create(c.Request().Context(), service.CreateItemInput{
		Name:             req.Name,
		Type:             req.Type,
		Description:      req.Description,
		CoverImage:       req.CoverImage,
		AdditionalImages: req.AdditionalImages,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, NewMessageResponse("Missing required fields"))
		}
		c.Logger().Errorf("create item: %v", err)
		return c.JSON(http.StatusInternalServerError, NewMessageResponse("failed to save item"))
	}
	return c.JSON(http.StatusCreated, CreateItemResponse{
		Message: "Item successfully added",
		Item:    toItemResponse(item),
	})
}

func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list items: %v", err)
		return c.JSON(http.StatusInternalServerError, NewMessageResponse("failed to fetch items"))
	}
	resp := make([]ItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toItemResponse(&items[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func toItemResponse(item *model.Item) ItemResponse {
	images := []string(item.AdditionalImages)
	if images == nil {
		images = []string{}
	}
	return ItemResponse{
		ID:               item.ID,
		Name:             item.Name,
		Type:             item.Type,
		Description:      item.Description,
		CoverImage:       item.CoverImage,
		AdditionalImages: images,
		CreatedAt:        item.CreatedAt.Format(time.RFC3339),
	}
}
