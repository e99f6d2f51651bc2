package handlers

import (
	"net/http"

	"github.com/ghuser/itemhub/pkg/httpx"
	pkgvalidator "github.com/ghuser/itemhub/pkg/validator"
	appsvcs "github.com/ghuser/itemhub/services/item/application/services"
)

// UpdateItemRequest is the request body for PUT /items/update.
type UpdateItemRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Category string `json:"category" validate:"required,min=1,max=255"`
}

// PutItemAsyncHandler handles PUT /items/update?id= requests. The update runs
// on the bounded pool; a nil result — absent item, store fault, or deadline
// expiry — maps to 404.
type PutItemAsyncHandler struct {
	svc *appsvcs.Services
}

// NewPutItemAsyncHandler returns a PutItemAsyncHandler backed by the given services.
func NewPutItemAsyncHandler(svc *appsvcs.Services) *PutItemAsyncHandler {
	return &PutItemAsyncHandler{svc: svc}
}

// Execute updates an item through the async pipeline.
func (h *PutItemAsyncHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDQuery(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.AsyncItems.UpdateAsync(r.Context(), id, req.Name, req.Category).Await(r.Context())
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
