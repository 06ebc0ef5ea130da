package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookmanager/internal/domains/book/model"
	"bookmanager/internal/domains/book/service"
	"bookmanager/internal/shared/response"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// LIST BY AUTHOR: GET /authors/:author_id/books
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) ListByAuthor(c *gin.Context) {
	authorID := c.Param("author_id")

	books, err := h.service.RetrieveByAuthorID(c.Request.Context(), authorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.BookListResponse{Books: books})
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /books
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	draft, err := req.ToDraft()
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
// UPDATE: PUT /books
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Update(c *gin.Context) {
	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	book, err := req.ToBook()
	if err != nil {
		response.Error(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), book)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}
