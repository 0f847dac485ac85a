package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alehson-uz/alehson/database/models"
	"github.com/alehson-uz/alehson/dtos"
	"github.com/alehson-uz/alehson/services"
	"github.com/alehson-uz/alehson/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type applicationRepositoryStub struct {
	shared.ApplicationRepository

	app models.Application
	err error
}

func (s *applicationRepositoryStub) ReadBySlug(slug string) (models.Application, error) {
	return s.app, s.err
}

type applicationServiceStub struct {
	shared.ApplicationService

	setStatusErr error
}

func (s *applicationServiceStub) SetStatus(application *models.Application, req dtos.ApplicationSetStatusRequest) error {
	return s.setStatusErr
}

func (s *applicationServiceStub) Create(ctx context.Context, req dtos.ApplicationCreateRequest, attachments shared.Attachments) (models.Application, error) {
	return models.Application{}, services.ErrInvalidRegion
}

func newJSONContext(method, body string) echo.Context {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	e := echo.New()
	return e.NewContext(req, httptest.NewRecorder())
}

func TestApplicationCreate(t *testing.T) {
	t.Run("should fail on a garbage body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("fantasy"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		e := echo.New()
		ctx := e.NewContext(req, httptest.NewRecorder())

		h := NewApplicationController(nil, nil)

		err := h.Create(ctx)
		if err == nil {
			t.Fail()
		}
	})

	t.Run("should fail if required fields are missing", func(t *testing.T) {
		ctx := newJSONContext(http.MethodPost, `{"fullName": "John Doe"}`)

		h := NewApplicationController(nil, nil)

		err := h.Create(ctx)
		httpErr := &echo.HTTPError{}
		if !errors.As(err, &httpErr) || httpErr.Code != 400 {
			t.Fail()
		}
	})

	t.Run("should map an unknown region to a 400", func(t *testing.T) {
		ctx := newJSONContext(http.MethodPost, `{
			"fullName": "John Doe",
			"phoneNumber": "+998901234567",
			"birthDate": "1990-04-02",
			"passportNumber": "AB1234567",
			"region": "Atlantis",
			"description": "needs help",
			"categoryId": "`+uuid.NewString()+`",
			"subcategoryId": "`+uuid.NewString()+`"
		}`)

		h := NewApplicationController(nil, &applicationServiceStub{})

		err := h.Create(ctx)
		httpErr := &echo.HTTPError{}
		if !errors.As(err, &httpErr) || httpErr.Code != 400 {
			t.Fail()
		}
	})
}

func TestApplicationRead(t *testing.T) {
	t.Run("should return a 404 for an unknown slug", func(t *testing.T) {
		ctx := newJSONContext(http.MethodGet, "")
		ctx.SetParamNames("slug")
		ctx.SetParamValues("does-not-exist")

		h := NewApplicationController(&applicationRepositoryStub{err: gorm.ErrRecordNotFound}, nil)

		err := h.Read(ctx)
		httpErr := &echo.HTTPError{}
		if !errors.As(err, &httpErr) || httpErr.Code != 404 {
			t.Fail()
		}
	})

	t.Run("should fail without a slug param", func(t *testing.T) {
		ctx := newJSONContext(http.MethodGet, "")

		h := NewApplicationController(nil, nil)

		err := h.Read(ctx)
		if err == nil {
			t.Fail()
		}
	})
}

func TestApplicationSetStatus(t *testing.T) {
	newStatusContext := func(body string) echo.Context {
		ctx := newJSONContext(http.MethodPatch, body)
		ctx.SetParamNames("slug")
		ctx.SetParamValues("john-doe")
		return ctx
	}

	t.Run("should reject an unknown status value", func(t *testing.T) {
		ctx := newStatusContext(`{"status": "maybe"}`)

		h := NewApplicationController(&applicationRepositoryStub{}, &applicationServiceStub{})

		err := h.SetStatus(ctx)
		httpErr := &echo.HTTPError{}
		if !errors.As(err, &httpErr) || httpErr.Code != 400 {
			t.Fail()
		}
	})

	t.Run("should map a missing denied reason to a 400", func(t *testing.T) {
		ctx := newStatusContext(`{"status": "denied"}`)

		h := NewApplicationController(&applicationRepositoryStub{}, &applicationServiceStub{setStatusErr: services.ErrDeniedReasonNeeded})

		err := h.SetStatus(ctx)
		httpErr := &echo.HTTPError{}
		if !errors.As(err, &httpErr) || httpErr.Code != 400 {
			t.Fail()
		}
	})

	t.Run("should respond with the new status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status": "accepted"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		e := echo.New()
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("slug")
		ctx.SetParamValues("john-doe")

		h := NewApplicationController(&applicationRepositoryStub{}, &applicationServiceStub{})

		if err := h.SetStatus(ctx); err != nil {
			t.Fail()
		}
		if rec.Code != 200 {
			t.Fail()
		}
	})
}
