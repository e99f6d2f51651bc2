package handlers

import (
	"net/http"

	"github.com/ghuser/itemhub/pkg/httpx"
	appsvcs "github.com/ghuser/itemhub/services/item/application/services"
)

// ItemInfoResponse carries the combined item summary.
type ItemInfoResponse struct {
	Info string `json:"info"`
}

// GetItemInfoHandler handles GET /items/info?id=&keyword= requests: a
// concurrent item lookup and related-item search joined into one summary
// line. The summary is always 200; degradation shows up in its text.
type GetItemInfoHandler struct {
	svc *appsvcs.Services
}

// NewGetItemInfoHandler returns a GetItemInfoHandler backed by the given services.
func NewGetItemInfoHandler(svc *appsvcs.Services) *GetItemInfoHandler {
	return &GetItemInfoHandler{svc: svc}
}

// Execute produces the combined item summary.
func (h *GetItemInfoHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDQuery(w, r, "id")
	if !ok {
		return
	}
	keyword := r.URL.Query().Get("keyword")

	info, err := h.svc.AsyncItems.CombinedInfo(r.Context(), id, keyword).Await(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "request aborted"})
		return
	}

	httpx.JSON(w, http.StatusOK, ItemInfoResponse{Info: info})
}
