package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/railgoteam/railroad-api/internal/dto"
	"github.com/railgoteam/railroad-api/internal/middleware"
	"github.com/railgoteam/railroad-api/internal/service"
)

type TrainHandler struct {
	svc service.TrainService
}

func NewTrainHandler(svc service.TrainService) *TrainHandler {
	return &TrainHandler{svc: svc}
}

func (h *TrainHandler) RegisterRoutes(e *echo.Echo, tokens *service.TokenService) {
	trains := e.Group("/trains")
	trains.GET("", h.List)
	trains.GET("/:id", h.GetByID)

	auth := middleware.RequireAuth(tokens)
	trains.POST("", h.Create, auth, middleware.RequireAdmin)
	trains.PUT("/:id", h.Update, auth, middleware.RequireAdmin)
	trains.DELETE("/:id", h.Delete, auth, middleware.RequireAdmin)
}

func (h *TrainHandler) List(c echo.Context) error {
	limit := service.DefaultTrainLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	trains, err := h.svc.List(c.Request().Context(), c.QueryParam("sort"), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.TrainResponse, len(trains))
	for i := range trains {
		resp[i] = dto.ToTrainResponse(&trains[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *TrainHandler) Create(c echo.Context) error {
	var req dto.CreateTrainRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	train, err := h.svc.Create(c.Request().Context(), service.CreateTrainParams{
		Name:            req.Name,
		StartStationID:  req.StartStation,
		EndStationID:    req.EndStation,
		TimeOfDeparture: req.TimeOfDeparture,
	})
	if err != nil {
		if errors.Is(err, service.ErrStationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Station not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToTrainResponse(train))
}

func (h *TrainHandler) GetByID(c echo.Context) error {
	id, err := parseID(c, "train")
	if err != nil {
		return err
	}

	train, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTrainNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Train not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToTrainResponse(train))
}

func (h *TrainHandler) Update(c echo.Context) error {
	id, err := parseID(c, "train")
	if err != nil {
		return err
	}

	var req dto.UpdateTrainRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	train, err := h.svc.Update(c.Request().Context(), id, service.UpdateTrainParams{
		Name:            req.Name,
		StartStationID:  req.StartStation,
		EndStationID:    req.EndStation,
		TimeOfDeparture: req.TimeOfDeparture,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTrainNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Train not found")
		case errors.Is(err, service.ErrStationNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Station not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToTrainResponse(train))
}

func (h *TrainHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "train")
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrTrainNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Train not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Train deleted successfully"})
}
