package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/railgoteam/railroad-api/internal/dto"
	"github.com/railgoteam/railroad-api/internal/middleware"
	"github.com/railgoteam/railroad-api/internal/models"
	"github.com/railgoteam/railroad-api/internal/service"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo, tokens *service.TokenService) {
	users := e.Group("/users")
	users.POST("/register", h.Register)
	users.POST("/login", h.Login)

	auth := middleware.RequireAuth(tokens)
	users.GET("/:id", h.Get, auth)
	users.PUT("/:id", h.Update, auth)
	users.DELETE("/:id", h.Delete, auth)
}

func requesterFromContext(c echo.Context) (service.Requester, error) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return service.Requester{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return service.Requester{UserID: claims.UserID, Role: models.Role(claims.Role)}, nil
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+" id")
	}
	return uint(id), nil
}

func (h *UserHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.svc.Register(c.Request().Context(), service.RegisterParams{
		Email:    req.Email,
		Pseudo:   req.Pseudo,
		Password: req.Password,
		Role:     req.Role,
		Employee: req.Employee,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrPseudoTaken):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to register user")
		}
	}

	return c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *UserHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, _, err := h.svc.Login(c.Request().Context(), req.Pseudo, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to login")
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Logged in successfully",
		Token:   token,
	})
}

func (h *UserHandler) Get(c echo.Context) error {
	id, err := parseID(c, "user")
	if err != nil {
		return err
	}
	requester, err := requesterFromContext(c)
	if err != nil {
		return err
	}

	user, err := h.svc.Get(c.Request().Context(), id, requester)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
		case errors.Is(err, service.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseID(c, "user")
	if err != nil {
		return err
	}
	requester, err := requesterFromContext(c)
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.svc.Update(c.Request().Context(), id, requester, service.UpdateUserParams{
		Email:    req.Email,
		Pseudo:   req.Pseudo,
		Password: req.Password,
		Role:     req.Role,
		Employee: req.Employee,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
		case errors.Is(err, service.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrPseudoTaken):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "user")
	if err != nil {
		return err
	}
	requester, err := requesterFromContext(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id, requester); err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
		case errors.Is(err, service.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}
