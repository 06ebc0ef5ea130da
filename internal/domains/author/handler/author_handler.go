package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookmanager/internal/domains/author/model"
	"bookmanager/internal/domains/author/service"
	"bookmanager/internal/shared/response"
)

type AuthorHandler struct {
	service service.ServiceInterface
	now     func() time.Time
}

// NewAuthorHandler takes the clock birth dates are checked against
func NewAuthorHandler(svc service.ServiceInterface, now func() time.Time) *AuthorHandler {
	if now == nil {
		now = time.Now
	}
	return &AuthorHandler{
		service: svc,
		now:     now,
	}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /authors/list
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.AuthorListResponse{Authors: authors})
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	draft, err := req.ToDraft(h.now())
	if err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.service.Add(c.Request.Context(), draft)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	var req model.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	author, err := req.ToAuthor(h.now())
	if err != nil {
		response.Error(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), author)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}
