package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/auswiki/auswiki/internal/wiki/domain"
	"github.com/auswiki/auswiki/pkg/httpx"
)

// Error codes returned in the "error" field of failure responses.
const (
	codeBadRequest    = "bad_request"
	codeInvalidCreds  = "invalid_credentials"
	codeUsernameTaken = "username_taken"
	codeForbidden     = "forbidden"
	codeNotFound      = "not_found"
	codeInternal      = "internal_error"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	ExpiresIn int64  `json:"expires_in"`
}

type createAURequest struct {
	Name   string `json:"name"`
	Author string `json:"author"`
	Desc   string `json:"desc"`
	Link   string `json:"link,omitempty"`
}

type auResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Author    string    `json:"author"`
	Desc      string    `json:"desc"`
	Link      string    `json:"link,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type auListItem struct {
	auResponse
	CreatedByUsername string `json:"created_by_username"`
}

func toAUResponse(au domain.AU) auResponse {
	return auResponse{
		ID:        au.ID,
		Name:      au.Name,
		Author:    au.Author,
		Desc:      au.Desc,
		Link:      au.Link,
		CreatedBy: au.CreatedBy,
		CreatedAt: au.CreatedAt,
	}
}

func toAUListItem(au domain.AUWithCreator) auListItem {
	return auListItem{
		auResponse:        toAUResponse(au.AU),
		CreatedByUsername: au.CreatorUsername,
	}
}

// maxBodyBytes bounds request bodies so a client can't feed us an
// arbitrarily large JSON document.
const maxBodyBytes = 1 << 20

// decodeJSON decodes the request body into dst, rejecting unknown fields
// and trailing garbage.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return errors.New("request body is not valid JSON")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	httpx.WriteJSON(w, status, errorResponse{Error: code, Message: message})
}
