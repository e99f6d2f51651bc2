package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/itemhub/pkg/errhttp"
	"github.com/ghuser/itemhub/pkg/httpx"
	appsvcs "github.com/ghuser/itemhub/services/item/application/services"
	"github.com/ghuser/itemhub/services/item/domain/repositories"
)

const defaultListLimit = 50

// ListItemsHandler handles GET /items requests with optional category filter
// and pagination.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute lists items, filtered by ?category= and paginated with
// ?limit= and ?offset=.
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := repositories.QueryOpts{Limit: defaultListLimit}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		opts.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "offset must be a non-negative integer"})
			return
		}
		opts.Offset = n
	}

	items, total, err := h.svc.Items.List(r.Context(), q.Get("category"), opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ListItemsResponse{
		Items: newItemResponses(items),
		Total: total,
	})
}
