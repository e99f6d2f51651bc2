package handlers

import (
	"net/http"

	"github.com/ghuser/itemhub/pkg/httpx"
	appsvcs "github.com/ghuser/itemhub/services/item/application/services"
)

// SearchItemsAsyncHandler handles GET /items/search?keyword= requests. The
// scan runs on the bounded pool; faults and deadline expiry yield an empty
// result set with status 200.
type SearchItemsAsyncHandler struct {
	svc *appsvcs.Services
}

// NewSearchItemsAsyncHandler returns a SearchItemsAsyncHandler backed by the given services.
func NewSearchItemsAsyncHandler(svc *appsvcs.Services) *SearchItemsAsyncHandler {
	return &SearchItemsAsyncHandler{svc: svc}
}

// Execute searches items through the async pipeline.
func (h *SearchItemsAsyncHandler) Execute(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")

	items, err := h.svc.AsyncItems.SearchAsync(r.Context(), keyword).Await(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "request aborted"})
		return
	}

	httpx.JSON(w, http.StatusOK, ListItemsResponse{
		Items: newItemResponses(items),
		Total: len(items),
	})
}
