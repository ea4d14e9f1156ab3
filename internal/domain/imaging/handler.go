package imaging

import (
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

const maxDocumentBytes = 1 << 20

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/imaging-findings", h.Ingest)
	api.GET("/imaging-findings/:id", h.Get)
	api.GET("/patients/:patient_id/imaging-findings", h.ListByPatient)
	api.POST("/imaging-findings/:id/review", h.Review, auth.RequireRole("physician", "nurse"))
}

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

	finding, err := h.svc.Ingest(c.Request().Context(), patientID, raw, lang)
	if err != nil {
		status, outcome := fhir.ErrorResponse(err)
		return c.JSON(status, outcome)
	}
	return c.JSON(http.StatusCreated, finding)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	finding, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "imaging finding not found")
	}
	return c.JSON(http.StatusOK, finding)
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
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	claims := auth.FromContext(c.Request().Context())
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	finding, err := h.svc.Review(c.Request().Context(), id, claims.Subject, claims.Name)
	if err != nil {
		if errors.Is(err, ErrAlreadyReviewed) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusNotFound, "imaging finding not found")
	}
	return c.JSON(http.StatusOK, finding)
}
