package handlers

import (
	"net/http"

	"github.com/ghuser/itemhub/pkg/httpx"
	pkgvalidator "github.com/ghuser/itemhub/pkg/validator"
	appsvcs "github.com/ghuser/itemhub/services/item/application/services"
)

// PostItemAsyncHandler handles POST /items/create requests. Creation runs on
// the bounded pool; a nil result — duplicate name, invalid input, store
// fault, or deadline expiry — maps to 404 per the async contract, with the
// diagnostic log entry carrying the actual cause.
type PostItemAsyncHandler struct {
	svc *appsvcs.Services
}

// NewPostItemAsyncHandler returns a PostItemAsyncHandler backed by the given services.
func NewPostItemAsyncHandler(svc *appsvcs.Services) *PostItemAsyncHandler {
	return &PostItemAsyncHandler{svc: svc}
}

// Execute creates an item through the async pipeline.
func (h *PostItemAsyncHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.AsyncItems.CreateAsync(r.Context(), req.Name, req.Category).Await(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "request aborted"})
		return
	}
	if item == nil {
		httpx.JSON(w, http.StatusNotFound, ErrorResponse{Error: "item not created"})
		return
	}

	httpx.JSON(w, http.StatusCreated, newItemResponse(item))
}
