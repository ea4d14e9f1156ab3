package export

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mediscribe/mediscribe/internal/platform/auth"
	"github.com/mediscribe/mediscribe/internal/platform/fhir"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	role := auth.RequireRole("physician", "nurse")

	api.GET("/notes/:id/$export", h.exportFunc(h.svc.ExportNote), role)
	api.GET("/imaging-findings/:id/$export", h.exportFunc(h.svc.ExportImaging), role)
	api.GET("/lab-results/:id/$export", h.exportFunc(h.svc.ExportLabResult), role)
	api.GET("/patients/:patient_id/$summary", h.exportParam("patient_id", h.svc.ExportPatientSummary), role)
}

func (h *Handler) exportFunc(fn func(ctx context.Context, id uuid.UUID) ([]byte, error)) echo.HandlerFunc {
	return h.exportParam("id", fn)
}

func (h *Handler) exportParam(param string, fn func(ctx context.Context, id uuid.UUID) ([]byte, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param(param))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
		}
		data, err := fn(c.Request().Context(), id)
		if err != nil {
			return h.writeError(c, err)
		}
		return c.Blob(http.StatusOK, ContentTypeFHIRJSON, data)
	}
}

// writeError maps export failures to OperationOutcome responses. A blocked
// export is reported as a hard stop, never a warning.
func (h *Handler) writeError(c echo.Context, err error) error {
	var blocked *BlockedError
	if errors.As(err, &blocked) {
		return c.JSON(http.StatusConflict, fhir.BlockedOutcome(blocked.Error()))
	}
	var encoding *EncodingError
	if errors.As(err, &encoding) {
		return c.JSON(http.StatusInternalServerError, fhir.ErrorOutcome(encoding.Error()))
	}
	return c.JSON(http.StatusNotFound, fhir.ErrorOutcome("record not found"))
}
