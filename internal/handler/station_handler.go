package handler

import (
	"encoding/base64"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/railgoteam/railroad-api/internal/dto"
	"github.com/railgoteam/railroad-api/internal/middleware"
	"github.com/railgoteam/railroad-api/internal/service"
)

type StationHandler struct {
	svc service.StationService
}

func NewStationHandler(svc service.StationService) *StationHandler {
	return &StationHandler{svc: svc}
}

func (h *StationHandler) RegisterRoutes(e *echo.Echo, tokens *service.TokenService) {
	stations := e.Group("/stations")
	stations.GET("", h.List)
	stations.GET("/:id", h.GetByID)

	auth := middleware.RequireAuth(tokens)
	stations.POST("", h.Create, auth, middleware.RequireAdmin)
	stations.PUT("/:id", h.Update, auth, middleware.RequireAdmin)
	stations.DELETE("/:id", h.Delete, auth, middleware.RequireAdmin)
}

// encodeImage reads the uploaded file and returns it base64-encoded.
func encodeImage(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

func (h *StationHandler) Create(c echo.Context) error {
	name := c.FormValue("name")
	openHour := c.FormValue("open_hour")
	closeHour := c.FormValue("close_hour")
	if name == "" || openHour == "" || closeHour == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name, open_hour and close_hour are required")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}
	image, err := encodeImage(file)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read image file")
	}

	station, err := h.svc.Create(c.Request().Context(), service.StationParams{
		Name:      name,
		OpenHour:  openHour,
		CloseHour: closeHour,
		Image:     image,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToStationResponse(station))
}

func (h *StationHandler) List(c echo.Context) error {
	stations, err := h.svc.List(c.Request().Context(), c.QueryParam("sort"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.StationResponse, len(stations))
	for i := range stations {
		resp[i] = dto.ToStationResponse(&stations[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *StationHandler) GetByID(c echo.Context) error {
	id, err := parseID(c, "station")
	if err != nil {
		return err
	}

	station, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Station not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToStationResponse(station))
}

func (h *StationHandler) Update(c echo.Context) error {
	id, err := parseID(c, "station")
	if err != nil {
		return err
	}

	var patch service.UpdateStationParams
	if v := c.FormValue("name"); v != "" {
		patch.Name = &v
	}
	if v := c.FormValue("open_hour"); v != "" {
		patch.OpenHour = &v
	}
	if v := c.FormValue("close_hour"); v != "" {
		patch.CloseHour = &v
	}
	if file, err := c.FormFile("image"); err == nil {
		image, err := encodeImage(file)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "failed to read image file")
		}
		patch.Image = &image
	}

	station, err := h.svc.Update(c.Request().Context(), id, patch)
	if err != nil {
		if errors.Is(err, service.ErrStationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Station not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToStationResponse(station))
}

func (h *StationHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "station")
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrStationNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Station not found")
		case errors.Is(err, service.ErrStationInUse):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Station deleted successfully"})
}
