package handlers

import (
	"net/http"

	"github.com/ghuser/itemhub/pkg/httpx"
	appsvcs "github.com/ghuser/itemhub/services/item/application/services"
)

// GetItemAsyncHandler handles GET /items/by-id?id= requests. The lookup runs
// on the bounded pool; a nil result — absent item, store fault, or deadline
// expiry — maps to 404.
type GetItemAsyncHandler struct {
	svc *appsvcs.Services
}

// NewGetItemAsyncHandler returns a GetItemAsyncHandler backed by the given services.
func NewGetItemAsyncHandler(svc *appsvcs.Services) *GetItemAsyncHandler {
	return &GetItemAsyncHandler{svc: svc}
}

// Execute retrieves an item through the async pipeline.
func (h *GetItemAsyncHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDQuery(w, r, "id")
	if !ok {
		return
	}

	item, err := h.svc.AsyncItems.GetByIDAsync(r.Context(), id).Await(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "request aborted"})
		return
	}
	if item == nil {
		httpx.JSON(w, http.StatusNotFound, ErrorResponse{Error: "item not found"})
		return
	}

	httpx.JSON(w, http.StatusOK, newItemResponse(item))
}
