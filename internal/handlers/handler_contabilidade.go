package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/contabil_engine/internal/apperrors"
	"github.com/SscSPs/contabil_engine/internal/core/domain"
	portssvc "github.com/SscSPs/contabil_engine/internal/core/ports/services"
	"github.com/SscSPs/contabil_engine/internal/dto"
	"github.com/SscSPs/contabil_engine/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// contabilidadeHandler handles the action-dispatch endpoint of the posting
// engine. Action names are the Portuguese identifiers the upstream ERP sends.
type contabilidadeHandler struct {
	services *portssvc.ServiceContainer
}

// newContabilidadeHandler creates a new contabilidadeHandler.
func newContabilidadeHandler(services *portssvc.ServiceContainer) *contabilidadeHandler {
	return &contabilidadeHandler{services: services}
}

// actionRequest is the dispatch envelope: a named action plus its raw payload.
type actionRequest struct {
	Action  string          `json:"action" binding:"required"`
	Payload json.RawMessage `json:"payload"`
}

// registerContabilidadeRoutes registers the dispatch endpoint on the group.
func registerContabilidadeRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newContabilidadeHandler(services)
	rg.POST("/contabilidade", h.dispatch)
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrTypeMismatch):
		logger.Warn("Request rejected", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrRuleNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		respondError(c, http.StatusNotFound, err.Error())
	default:
		logger.Error("Action failed", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// bindPayload unmarshals the raw payload into out and runs the binding
// validator, so payload fields get the same validation as body-bound DTOs.
func bindPayload(payload json.RawMessage, out any) error {
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(out)
}

// bindingErrorMessage turns validator errors into a readable field summary.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msg := "invalid payload fields:"
	for i, fe := range verrs {
		if i > 0 {
			msg += ","
		}
		msg += " " + fe.Field() + " (" + fe.Tag() + ")"
	}
	return msg
}

// dispatch godoc
// @Summary Dispatch an accounting action
// @Description Executes one of the named accounting actions with its payload
// @Tags contabilidade
// @Accept  json
// @Produce  json
// @Param   request body actionRequest true "Action and payload"
// @Success 200 {object} map[string]any "Envelope with success and data"
// @Failure 400 {object} map[string]any "Invalid request, payload or unknown action"
// @Failure 404 {object} map[string]any "Entry or rule not found"
// @Failure 500 {object} map[string]any "Internal error"
// @Router /contabilidade [post]
func (h *contabilidadeHandler) dispatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind dispatch envelope", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	logger = logger.With(slog.String("action", req.Action))

	switch req.Action {
	case "consultar_regra":
		h.resolveRule(c, logger, req.Payload)
	case "criar_conta_a_pagar":
		h.createPayable(c, logger, req.Payload)
	case "contabilizar_conta_a_pagar":
		h.postEntry(c, logger, req.Payload)
	case "criar_e_contabilizar_conta_a_pagar":
		h.createAndPost(c, logger, req.Payload)
	default:
		logger.Warn("Unknown action requested")
		respondError(c, http.StatusBadRequest, "Unknown action: "+req.Action)
	}
}

func (h *contabilidadeHandler) resolveRule(c *gin.Context, logger *slog.Logger, payload json.RawMessage) {
	var req dto.ResolveRuleRequest
	if err := bindPayload(payload, &req); err != nil {
		logger.Warn("Invalid resolve rule payload", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid payload: "+bindingErrorMessage(err))
		return
	}

	origin := domain.Origin(req.Origin)
	if req.Origin == "" {
		origin = domain.OriginPayable
	}

	rule, err := h.services.RuleResolver.Resolve(c.Request.Context(), req.TenantID, origin, req.CategoryID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	respondOK(c, dto.ToRuleResponse(rule))
}

func (h *contabilidadeHandler) createPayable(c *gin.Context, logger *slog.Logger, payload json.RawMessage) {
	var req dto.CreatePayableRequest
	if err := bindPayload(payload, &req); err != nil {
		logger.Warn("Invalid create payable payload", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid payload: "+bindingErrorMessage(err))
		return
	}

	entry, err := h.services.FinancialEntry.CreatePayable(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	respondOK(c, dto.ToFinancialEntryResponse(entry))
}

func (h *contabilidadeHandler) postEntry(c *gin.Context, logger *slog.Logger, payload json.RawMessage) {
	var req dto.PostEntryRequest
	if err := bindPayload(payload, &req); err != nil {
		logger.Warn("Invalid post entry payload", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid payload: "+bindingErrorMessage(err))
		return
	}

	result, err := h.services.LedgerPoster.Post(c.Request.Context(), req.FinancialEntryID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	respondOK(c, dto.PostingResponse{
		LedgerEntry:    dto.ToLedgerEntryResponse(&result.Entry),
		AlreadyExisted: result.AlreadyExisted,
	})
}

func (h *contabilidadeHandler) createAndPost(c *gin.Context, logger *slog.Logger, payload json.RawMessage) {
	var req dto.CreatePayableRequest
	if err := bindPayload(payload, &req); err != nil {
		logger.Warn("Invalid create and post payload", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid payload: "+bindingErrorMessage(err))
		return
	}

	result, err := h.services.Coordinator.CreateAndPost(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	respondOK(c, dto.CreateAndPostResponse{
		FinancialEntry: dto.ToFinancialEntryResponse(&result.FinancialEntry),
		LedgerEntry:    dto.ToLedgerEntryResponse(&result.LedgerEntry),
	})
}
