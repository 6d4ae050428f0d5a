package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/railgoteam/railroad-api/internal/dto"
	"github.com/railgoteam/railroad-api/internal/middleware"
	"github.com/railgoteam/railroad-api/internal/service"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo, tokens *service.TokenService) {
	auth := middleware.RequireAuth(tokens)
	bookings := e.Group("/bookings", auth)
	bookings.POST("", h.Create)
	bookings.GET("/:id", h.Get)
	bookings.PUT("/:id", h.Update)
	bookings.DELETE("/:id", h.Delete)
	bookings.PATCH("/:id/validate", h.Validate)
}

func (h *BookingHandler) Create(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.svc.Create(c.Request().Context(), service.CreateBookingParams{
		UserID:  req.UserID,
		TrainID: req.TrainID,
		Date:    req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTrainNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Train not found")
		case errors.Is(err, service.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) Get(c echo.Context) error {
	id, err := parseID(c, "booking")
	if err != nil {
		return err
	}

	booking, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Booking not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToBookingDetailResponse(booking))
}

func (h *BookingHandler) Update(c echo.Context) error {
	id, err := parseID(c, "booking")
	if err != nil {
		return err
	}

	var req dto.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.Update(c.Request().Context(), id, service.UpdateBookingParams{
		TrainID: req.TrainID,
		Date:    req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Booking not found")
		case errors.Is(err, service.ErrTrainNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Train not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.BookingStatusResponse{
		Message: "Booking updated successfully",
		Booking: dto.ToBookingResponse(booking),
	})
}

func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "booking")
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Booking not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Booking deleted successfully"})
}

func (h *BookingHandler) Validate(c echo.Context) error {
	id, err := parseID(c, "booking")
	if err != nil {
		return err
	}

	booking, err := h.svc.Validate(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Booking not found")
		case errors.Is(err, service.ErrTrainNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Train not found")
		case errors.Is(err, service.ErrTrainDeparted):
			return echo.NewHTTPError(http.StatusBadRequest, "Cannot validate booking. Train has already departed.")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.BookingStatusResponse{
		Message: "Booking successfully validated",
		Booking: dto.ToBookingResponse(booking),
	})
}
