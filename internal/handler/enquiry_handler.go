package handler

import (
	"errors"
	"net/http"

	"github.com/geekysharma31/closet-api/internal/service"
	"github.com/labstack/echo/v4"
)

type EnquiryHandler struct {
	svc service.EnquiryService
}

func NewEnquiryHandler(svc service.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{svc: svc}
}

type EnquiryRequest struct {
	Item *service.EnquiryItem `json:"item"`
}

func (h *EnquiryHandler) Send(c echo.Context) error {
	var req EnquiryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewMessageResponse("invalid request body"))
	}
	if err := h.svc.Send(c.Request().Context(), req.Item); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, NewMessageResponse("Item information is missing"))
		case errors.Is(err, service.ErrMailerNotReady):
			return c.JSON(http.StatusInternalServerError, NewMessageResponse("Email service is not ready"))
		default:
			c.Logger().Errorf("send enquiry: %v", err)
			return c.JSON(http.StatusInternalServerError, NewMessageResponse("failed to send enquiry"))
		}
	}
	return c.JSON(http.StatusOK, NewMessageResponse("Enquiry sent successfully!"))
}
