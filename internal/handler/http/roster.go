package http

import (
	"net/http"

	"github.com/hrtools-br/ausencias-backend-go/internal/domain/roster"
	"github.com/hrtools-br/ausencias-backend-go/internal/handler/http/response"
)

type RosterHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
}

type RosterHandlerImpl struct {
	rosterService roster.Service
}

func NewRosterHandler(rosterService roster.Service) RosterHandler {
	return &RosterHandlerImpl{rosterService: rosterService}
}

// ListEmployees returns the roster names for the selection input. An empty
// list means the roster is unavailable and the client should offer free-text
// name entry instead.
func (h *RosterHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.rosterService.Names(r.Context()))
}
