package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerBoardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.BoardPage)
	mux.HandleFunc("POST /board/removals", handler.SubmitRemovalForm)
	mux.HandleFunc("POST /board/undo", handler.SubmitUndoForm)

	mux.HandleFunc("GET /v1/board", handler.GetBoard)
	mux.HandleFunc("POST /v1/board/removals", handler.RemovePlayers)
	mux.HandleFunc("POST /v1/board/undo", handler.UndoRemoval)
}
