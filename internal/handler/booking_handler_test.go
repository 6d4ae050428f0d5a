package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railgoteam/railroad-api/internal/dto"
	"github.com/railgoteam/railroad-api/internal/models"
	"github.com/railgoteam/railroad-api/internal/service"
)

// --- Mock BookingService ---

type mockBookingService struct {
	createFn   func(ctx context.Context, params service.CreateBookingParams) (*models.Booking, error)
	getFn      func(ctx context.Context, id uint) (*models.Booking, error)
	updateFn   func(ctx context.Context, id uint, patch service.UpdateBookingParams) (*models.Booking, error)
	deleteFn   func(ctx context.Context, id uint) error
	validateFn func(ctx context.Context, id uint) (*models.Booking, error)
}

func (m *mockBookingService) Create(ctx context.Context, params service.CreateBookingParams) (*models.Booking, error) {
	return m.createFn(ctx, params)
}
func (m *mockBookingService) Get(ctx context.Context, id uint) (*models.Booking, error) {
	return m.getFn(ctx, id)
}
func (m *mockBookingService) Update(ctx context.Context, id uint, patch service.UpdateBookingParams) (*models.Booking, error) {
	return m.updateFn(ctx, id, patch)
}
func (m *mockBookingService) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}
func (m *mockBookingService) Validate(ctx context.Context, id uint) (*models.Booking, error) {
	return m.validateFn(ctx, id)
}

// --- Tests ---

func TestCreateBooking_Handler_Success(t *testing.T) {
	date := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	svc := &mockBookingService{
		createFn: func(ctx context.Context, params service.CreateBookingParams) (*models.Booking, error) {
			return &models.Booking{
				ID:      7,
				UserID:  params.UserID,
				TrainID: params.TrainID,
				Date:    date,
			}, nil
		},
	}

	e := newTestEcho()
	body := `{"userId":3,"trainId":9}`
	c, rec := jsonContext(e, http.MethodPost, "/bookings", body)

	h := NewBookingHandler(svc)
	err := h.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 7, resp["id"])
	assert.EqualValues(t, 3, resp["user"])
	assert.EqualValues(t, 9, resp["train"])
	assert.Contains(t, resp, "date")
	assert.Equal(t, false, resp["is_validated"])
}

func TestCreateBooking_Handler_MissingUser(t *testing.T) {
	e := newTestEcho()
	body := `{"trainId":9}`
	c, _ := jsonContext(e, http.MethodPost, "/bookings", body)

	h := NewBookingHandler(&mockBookingService{})
	err := h.Create(c)

	require.Error(t, err)
	he := err.(*echo.HTTPError)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateBooking_Handler_TrainNotFound(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, params service.CreateBookingParams) (*models.Booking, error) {
			return nil, service.ErrTrainNotFound
		},
	}

	e := newTestEcho()
	body := `{"userId":3,"trainId":9}`
	c, _ := jsonContext(e, http.MethodPost, "/bookings", body)

	h := NewBookingHandler(svc)
	err := h.Create(c)

	require.Error(t, err)
	he := err.(*echo.HTTPError)
	assert.Equal(t, http.StatusNotFound, he.Code)
	assert.Equal(t, "Train not found", he.Message)
}

func TestGetBooking_Handler_Detail(t *testing.T) {
	svc := &mockBookingService{
		getFn: func(ctx context.Context, id uint) (*models.Booking, error) {
			return &models.Booking{
				ID:      id,
				UserID:  3,
				TrainID: 9,
				Date:    time.Now(),
				User:    &models.User{ID: 3, Email: "a@x.com", Pseudo: "a"},
				Train:   &models.Train{ID: 9, Name: "TGV-01"},
			}, nil
		},
	}

	e := newTestEcho()
	c, rec := jsonContext(e, http.MethodGet, "/bookings/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	h := NewBookingHandler(svc)
	err := h.Get(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	user, ok := resp["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a", user["pseudo"])
	train, ok := resp["train"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "TGV-01", train["name"])
}

func TestGetBooking_Handler_NotFound(t *testing.T) {
	svc := &mockBookingService{
		getFn: func(ctx context.Context, id uint) (*models.Booking, error) {
			return nil, service.ErrBookingNotFound
		},
	}

	e := newTestEcho()
	c, _ := jsonContext(e, http.MethodGet, "/bookings/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	h := NewBookingHandler(svc)
	err := h.Get(c)

	require.Error(t, err)
	he := err.(*echo.HTTPError)
	assert.Equal(t, http.StatusNotFound, he.Code)
	assert.Equal(t, "Booking not found", he.Message)
}

func TestUpdateBooking_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		updateFn: func(ctx context.Context, id uint, patch service.UpdateBookingParams) (*models.Booking, error) {
			return &models.Booking{ID: id, UserID: 3, TrainID: *patch.TrainID, Date: time.Now()}, nil
		},
	}

	e := newTestEcho()
	c, rec := jsonContext(e, http.MethodPut, "/bookings/7", `{"trainId":12}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	h := NewBookingHandler(svc)
	err := h.Update(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BookingStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Booking updated successfully", resp.Message)
	assert.Equal(t, uint(12), resp.Booking.Train)
}

func TestDeleteBooking_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		deleteFn: func(ctx context.Context, id uint) error { return nil },
	}

	e := newTestEcho()
	c, rec := jsonContext(e, http.MethodDelete, "/bookings/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	h := NewBookingHandler(svc)
	err := h.Delete(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Booking deleted successfully", resp.Message)
}

func TestValidateBooking_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		validateFn: func(ctx context.Context, id uint) (*models.Booking, error) {
			return &models.Booking{ID: id, UserID: 3, TrainID: 9, Date: time.Now(), IsValidated: true}, nil
		},
	}

	e := newTestEcho()
	c, rec := jsonContext(e, http.MethodPatch, "/bookings/7/validate", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	h := NewBookingHandler(svc)
	err := h.Validate(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BookingStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Booking successfully validated", resp.Message)
	assert.True(t, resp.Booking.IsValidated)
}

func TestValidateBooking_Handler_TrainDeparted(t *testing.T) {
	svc := &mockBookingService{
		validateFn: func(ctx context.Context, id uint) (*models.Booking, error) {
			return nil, service.ErrTrainDeparted
		},
	}

	e := newTestEcho()
	c, _ := jsonContext(e, http.MethodPatch, "/bookings/7/validate", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	h := NewBookingHandler(svc)
	err := h.Validate(c)

	require.Error(t, err)
	he := err.(*echo.HTTPError)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Equal(t, "Cannot validate booking. Train has already departed.", he.Message)
}
