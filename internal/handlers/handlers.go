package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kubev2v/whereql/internal/models"
	"github.com/kubev2v/whereql/internal/store"
	"github.com/kubev2v/whereql/pkg/docquery"
	srvErrors "github.com/kubev2v/whereql/pkg/errors"
	"github.com/kubev2v/whereql/pkg/where"
)

// QueryService translates and runs WHERE expressions.
type QueryService interface {
	Translate(expr string) (docquery.QuerySet, error)
	Find(ctx context.Context, collection, expr string, opts ...store.FindOption) (*models.QueryResult, error)
}

// DocumentService stores and reads documents by id.
type DocumentService interface {
	Load(ctx context.Context, collection string, body []byte) (int, error)
	Get(ctx context.Context, collection, id string) (*models.Document, error)
	Delete(ctx context.Context, collection, id string) error
	Collections(ctx context.Context) ([]string, error)
}

type Handler struct {
	querySrv    QueryService
	documentSrv DocumentService
}

func New(querySrv QueryService, documentSrv DocumentService) *Handler {
	return &Handler{querySrv: querySrv, documentSrv: documentSrv}
}

// RegisterHandlers adds the document API routes to router.
func RegisterHandlers(router gin.IRoutes, h *Handler) {
	router.POST("/translate", h.Translate)
	router.GET("/collections", h.GetCollections)
	router.POST("/collections/:name/query", h.QueryCollection)
	router.GET("/collections/:name/documents", h.FindDocuments)
	router.POST("/collections/:name/documents", h.LoadDocuments)
	router.GET("/collections/:name/documents/:id", h.GetDocument)
	router.DELETE("/collections/:name/documents/:id", h.DeleteDocument)
}

// writeError maps service errors to status codes. Unexpected errors are
// logged and replaced by msg.
func writeError(c *gin.Context, err error, msg string) {
	switch {
	case where.IsParseError(err),
		srvErrors.IsTranslationError(err),
		srvErrors.IsInvalidFieldError(err),
		srvErrors.IsInvalidDocumentError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case srvErrors.IsResourceNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		zap.S().Named("handlers").Errorw(msg, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
