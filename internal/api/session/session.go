package session

import (
	"net/http"

	"spinwin_backend/internal/api"
	"spinwin_backend/internal/converter"
	"spinwin_backend/internal/service"
	"spinwin_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.WheelService
}

type Handler struct {
	serv service.WheelService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	sess, err := h.serv.OpenSession(r.Context())
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToOpenResponse(*sess))
}

func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.CloseSession(r.Context()); err != nil {
		api.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
