package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alehson-uz/alehson/database/models"
	"github.com/alehson-uz/alehson/shared"
	"github.com/alehson-uz/alehson/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type imageRepositoryStub struct {
	shared.ApplicationImageRepository

	all     []models.ApplicationImage
	byApp   []models.ApplicationImage
	readErr error
	deleted []uuid.UUID
}

func (s *imageRepositoryStub) All() ([]models.ApplicationImage, error) {
	return s.all, nil
}

func (s *imageRepositoryStub) ListByApplication(applicationID uuid.UUID) ([]models.ApplicationImage, error) {
	return s.byApp, nil
}

func (s *imageRepositoryStub) Read(id uuid.UUID) (models.ApplicationImage, error) {
	if s.readErr != nil {
		return models.ApplicationImage{}, s.readErr
	}
	return models.ApplicationImage{Model: models.Model{ID: id}}, nil
}

func (s *imageRepositoryStub) Delete(tx shared.DB, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func TestApplicationImageList(t *testing.T) {
	t.Run("should list all images without a filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		e := echo.New()
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		repo := &imageRepositoryStub{all: []models.ApplicationImage{
			{Model: models.Model{ID: uuid.New()}, ImageURL: utils.Ptr("https://img.example/a.jpg")},
		}}
		h := NewApplicationImageController(repo)

		assert.NoError(t, h.List(ctx))
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("should narrow the listing to one application", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?application="+uuid.NewString(), nil)
		e := echo.New()
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		repo := &imageRepositoryStub{byApp: []models.ApplicationImage{
			{Model: models.Model{ID: uuid.New()}},
		}}
		h := NewApplicationImageController(repo)

		assert.NoError(t, h.List(ctx))
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("should reject a malformed application filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?application=fantasy", nil)
		e := echo.New()
		ctx := e.NewContext(req, httptest.NewRecorder())

		h := NewApplicationImageController(&imageRepositoryStub{})

		err := h.List(ctx)
		httpErr := &echo.HTTPError{}
		if !errors.As(err, &httpErr) || httpErr.Code != 400 {
			t.Fail()
		}
	})
}

func TestApplicationImageRead(t *testing.T) {
	t.Run("should return a 404 for an unknown id", func(t *testing.T) {
		ctx := newJSONContext(http.MethodGet, "")
		ctx.SetParamNames("id")
		ctx.SetParamValues(uuid.NewString())

		h := NewApplicationImageController(&imageRepositoryStub{readErr: gorm.ErrRecordNotFound})

		err := h.Read(ctx)
		httpErr := &echo.HTTPError{}
		if !errors.As(err, &httpErr) || httpErr.Code != 404 {
			t.Fail()
		}
	})
}

func TestApplicationImageDelete(t *testing.T) {
	t.Run("should delete an existing image", func(t *testing.T) {
		id := uuid.New()
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		e := echo.New()
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("id")
		ctx.SetParamValues(id.String())

		repo := &imageRepositoryStub{}
		h := NewApplicationImageController(repo)

		assert.NoError(t, h.Delete(ctx))
		assert.Equal(t, 204, rec.Code)
		assert.Equal(t, []uuid.UUID{id}, repo.deleted)
	})

	t.Run("should not delete what does not exist", func(t *testing.T) {
		ctx := newJSONContext(http.MethodDelete, "")
		ctx.SetParamNames("id")
		ctx.SetParamValues(uuid.NewString())

		repo := &imageRepositoryStub{readErr: gorm.ErrRecordNotFound}
		h := NewApplicationImageController(repo)

		err := h.Delete(ctx)
		httpErr := &echo.HTTPError{}
		if !errors.As(err, &httpErr) || httpErr.Code != 404 {
			t.Fail()
		}
		assert.Empty(t, repo.deleted)
	})
}
