package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kubev2v/whereql/internal/store"
	"github.com/kubev2v/whereql/pkg/docquery"
)

type TranslateRequest struct {
	Where string `json:"where" binding:"required"`
}

type TranslateResponse struct {
	Where   string              `json:"where"`
	Queries [][]docquery.Filter `json:"queries"`
}

type QueryRequest struct {
	Where string `json:"where"`
	Limit uint64 `json:"limit" binding:"max=10000"`
}

type findParams struct {
	Where string `form:"where"`
	Limit uint64 `form:"limit" binding:"max=10000"`
}

// Translate returns the filter sets a WHERE expression translates to
// (POST /translate)
func (h *Handler) Translate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	qs, err := h.querySrv.Translate(req.Where)
	if err != nil {
		writeError(c, err, "failed to translate where clause")
		return
	}

	c.JSON(http.StatusOK, TranslateResponse{Where: req.Where, Queries: docquery.FilterSets(qs)})
}

// QueryCollection runs a WHERE expression against a collection
// (POST /collections/{name}/query)
func (h *Handler) QueryCollection(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.find(c, req.Where, req.Limit)
}

// FindDocuments lists the documents of a collection, optionally filtered
// (GET /collections/{name}/documents?where=...&limit=...)
func (h *Handler) FindDocuments(c *gin.Context) {
	var params findParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.find(c, params.Where, params.Limit)
}

func (h *Handler) find(c *gin.Context, expr string, limit uint64) {
	result, err := h.querySrv.Find(c.Request.Context(), c.Param("name"), expr, store.WithLimit(limit))
	if err != nil {
		writeError(c, err, "failed to query collection")
		return
	}

	c.JSON(http.StatusOK, result)
}

// LoadDocuments stores a JSON object or array of objects in a collection
// (POST /collections/{name}/documents)
func (h *Handler) LoadDocuments(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	n, err := h.documentSrv.Load(c.Request.Context(), c.Param("name"), body)
	if err != nil {
		writeError(c, err, "failed to load documents")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"collection": c.Param("name"), "loaded": n})
}

// GetDocument returns one document
// (GET /collections/{name}/documents/{id})
func (h *Handler) GetDocument(c *gin.Context) {
	doc, err := h.documentSrv.Get(c.Request.Context(), c.Param("name"), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed to get document")
		return
	}

	c.Data(http.StatusOK, "application/json", doc.Data)
}

// DeleteDocument removes one document
// (DELETE /collections/{name}/documents/{id})
func (h *Handler) DeleteDocument(c *gin.Context) {
	if err := h.documentSrv.Delete(c.Request.Context(), c.Param("name"), c.Param("id")); err != nil {
		writeError(c, err, "failed to delete document")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCollections lists the non-empty collections
// (GET /collections)
func (h *Handler) GetCollections(c *gin.Context) {
	names, err := h.documentSrv.Collections(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed to list collections")
		return
	}

	c.JSON(http.StatusOK, gin.H{"collections": names})
}
