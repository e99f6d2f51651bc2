package handlers

import (
	"net/http"

	"github.com/ghuser/itemhub/pkg/errhttp"
	"github.com/ghuser/itemhub/pkg/httpx"
	pkgvalidator "github.com/ghuser/itemhub/pkg/validator"
	appsvcs "github.com/ghuser/itemhub/services/item/application/services"
)

// CreateItemRequest is the request body for POST /items and POST /items/create.
type CreateItemRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Category string `json:"category" validate:"required,min=1,max=255"`
}

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item.
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Items.Create(r.Context(), req.Name, req.Category)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, newItemResponse(item))
}
