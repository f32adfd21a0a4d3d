package httpapi

import (
	"fmt"
	"net/http"
	"net/url"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/draftboard/internal/platform/logging"
	"github.com/riskibarqy/draftboard/internal/usecase"
)

type Handler struct {
	boardService *usecase.BoardService
	logger       *logging.Logger
	validator    *validator.Validate
}

func NewHandler(boardService *usecase.BoardService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		boardService: boardService,
		logger:       logger,
		validator:    validator.New(),
	}
}

type boardDTO struct {
	Columns   []string   `json:"columns"`
	Rows      [][]string `json:"rows"`
	Remaining int        `json:"remaining"`
	UndoDepth int        `json:"undoDepth"`
}

type removalRequest struct {
	Text string `json:"text" validate:"required"`
}

type removalResultDTO struct {
	RemovedCount int      `json:"removedCount"`
	Names        []string `json:"names,omitempty"`
	Message      string   `json:"message"`
}

type undoResultDTO struct {
	Restored bool   `json:"restored"`
	Message  string `json:"message"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBoard")
	defer span.End()

	view := h.boardService.View(ctx)
	writeSuccess(ctx, w, http.StatusOK, boardDTO{
		Columns:   view.Columns,
		Rows:      view.Rows,
		Remaining: view.Remaining,
		UndoDepth: view.UndoDepth,
	})
}

func (h *Handler) RemovePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemovePlayers")
	defer span.End()

	var req removalRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validator.StructCtx(ctx, req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: text is required", usecase.ErrInvalidInput))
		return
	}

	result, err := h.boardService.RemoveByText(ctx, req.Text)
	if err != nil {
		h.logger.ErrorContext(ctx, "remove players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, removalResultDTO{
		RemovedCount: result.Removed,
		Names:        result.Names,
		Message:      result.Message,
	})
}

func (h *Handler) UndoRemoval(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UndoRemoval")
	defer span.End()

	result := h.boardService.Undo(ctx)
	writeSuccess(ctx, w, http.StatusOK, undoResultDTO{
		Restored: result.Restored,
		Message:  result.Message,
	})
}

// SubmitRemovalForm backs the board page's paste box. It redirects back to
// the page with the outcome message so a refresh never replays the removal.
func (h *Handler) SubmitRemovalForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitRemovalForm")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: parse form: %v", usecase.ErrInvalidInput, err))
		return
	}

	result, err := h.boardService.RemoveByText(ctx, r.PostFormValue("players"))
	if err != nil {
		h.logger.ErrorContext(ctx, "remove players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	http.Redirect(w, r, "/?msg="+url.QueryEscape(result.Message), http.StatusSeeOther)
}

// SubmitUndoForm backs the board page's undo button.
func (h *Handler) SubmitUndoForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitUndoForm")
	defer span.End()

	result := h.boardService.Undo(ctx)
	http.Redirect(w, r, "/?msg="+url.QueryEscape(result.Message), http.StatusSeeOther)
}
