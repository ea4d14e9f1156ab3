package soapnote

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mediscribe/mediscribe/internal/platform/auth"
	"github.com/mediscribe/mediscribe/internal/platform/fhir"
	"github.com/mediscribe/mediscribe/internal/platform/safety"
	"github.com/mediscribe/mediscribe/pkg/pagination"
)

// maxDocumentBytes bounds raw model output accepted for validation.
const maxDocumentBytes = 1 << 20

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	role := auth.RequireRole("physician", "nurse")

	api.POST("/notes", h.Ingest)
	api.GET("/notes/:id", h.Get)
	api.GET("/patients/:patient_id/notes", h.ListByPatient)
	api.POST("/notes/:id/review", h.Review, role)
	api.POST("/notes/:id/sign", h.Sign, role)
}

// Ingest accepts raw model output, validates it, and persists the accepted
// note. The body is the model's JSON document verbatim; patient and language
// arrive as query parameters so the untrusted payload is never merged with
// trusted fields.
func (h *Handler) Ingest(c echo.Context) error {
	patientID, err := uuid.Parse(c.QueryParam("patient_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
	}
	lang, err := safety.ParseLanguage(c.QueryParam("language"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, maxDocumentBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable request body")
	}

	note, err := h.svc.Ingest(c.Request().Context(), patientID, raw, lang)
	if err != nil {
		status, outcome := fhir.ErrorResponse(err)
		return c.JSON(status, outcome)
	}
	return c.JSON(http.StatusCreated, note)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	note, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "note not found")
	}
	return c.JSON(http.StatusOK, note)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	pid, err := uuid.Parse(c.Param("patient_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListByPatient(c.Request().Context(), pid, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Review(c echo.Context) error {
	return h.transition(c, h.svc.Review)
}

func (h *Handler) Sign(c echo.Context) error {
	return h.transition(c, h.svc.Sign)
}

func (h *Handler) transition(c echo.Context, fn func(ctx context.Context, id uuid.UUID, actorID, actorName string) (*SOAPNote, error)) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	claims := auth.FromContext(c.Request().Context())
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	note, err := fn(c.Request().Context(), id, claims.Subject, claims.Name)
	if err != nil {
		var te *TransitionError
		if errors.As(err, &te) {
			return echo.NewHTTPError(http.StatusConflict, te.Error())
		}
		return echo.NewHTTPError(http.StatusNotFound, "note not found")
	}
	return c.JSON(http.StatusOK, note)
}
