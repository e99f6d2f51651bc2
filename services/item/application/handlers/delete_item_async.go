package handlers

import (
	"net/http"

	"github.com/ghuser/itemhub/pkg/httpx"
	appsvcs "github.com/ghuser/itemhub/services/item/application/services"
)

// DeleteItemAsyncHandler handles DELETE /items/delete?id= requests. Deletion
// runs on the bounded pool; false — absent item, store fault, or deadline
// expiry — maps to 404, true to 204.
type DeleteItemAsyncHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemAsyncHandler returns a DeleteItemAsyncHandler backed by the given services.
func NewDeleteItemAsyncHandler(svc *appsvcs.Services) *DeleteItemAsyncHandler {
	return &DeleteItemAsyncHandler{svc: svc}
}

// Execute deletes an item through the async pipeline.
func (h *DeleteItemAsyncHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDQuery(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.svc.AsyncItems.DeleteAsync(r.Context(), id).Await(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "request aborted"})
		return
	}
	if !deleted {
		httpx.JSON(w, http.StatusNotFound, ErrorResponse{Error: "item not found"})
		return
	}

	httpx.NoContent(w)
}
