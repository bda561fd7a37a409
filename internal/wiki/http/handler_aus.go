package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/auswiki/auswiki/internal/wiki/service"
	"github.com/auswiki/auswiki/pkg/httpx"
	"github.com/auswiki/auswiki/pkg/slogx"
)

// AUHandler serves the AU record endpoints.
type AUHandler struct {
	AUs *service.AUService
}

func (h *AUHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.AUs.ListAUs(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("list aus failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, codeInternal, "something went wrong")
		return
	}

	// Always an array, never null.
	out := make([]auListItem, 0, len(list))
	for _, au := range list {
		out = append(out, toAUListItem(au))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *AUHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		// Route misconfiguration; the authn middleware should have run.
		writeError(w, http.StatusInternalServerError, codeInternal, "something went wrong")
		return
	}

	var req createAURequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	au, err := h.AUs.CreateAU(r.Context(), ident.ID, service.CreateAUParams{
		Name:   req.Name,
		Author: req.Author,
		Desc:   req.Desc,
		Link:   req.Link,
	})
	switch {
	case err == nil:
	case errors.Is(err, service.ErrMissingAUFields):
		writeError(w, http.StatusBadRequest, codeBadRequest, "name, author and desc are required")
		return
	default:
		slogx.FromContext(r.Context()).Error("create au failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, codeInternal, "something went wrong")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toAUResponse(au))
}

func (h *AUHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ident, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusInternalServerError, codeInternal, "something went wrong")
		return
	}

	err := h.AUs.DeleteAU(r.Context(), ident.ID, r.PathValue("id"))
	switch {
	case err == nil:
	case errors.Is(err, service.ErrAUNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "record not found")
		return
	case errors.Is(err, service.ErrNotOwner):
		writeError(w, http.StatusForbidden, codeForbidden, "only the creator can delete this record")
		return
	default:
		slogx.FromContext(r.Context()).Error("delete au failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, codeInternal, "something went wrong")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
