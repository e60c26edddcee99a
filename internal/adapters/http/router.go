package httpadapter

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"svw.info/cube/web"
)

// requestLogger logs method, path, status, bytes and duration per request.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Int("bytes", c.Writer.Size()),
			zap.Duration("dur", time.Since(start).Round(time.Millisecond)),
		)
	}
}

// NewRouter wires the API, the upload page and static assets.
func NewRouter(h *Handler, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))
	r.MaxMultipartMemory = 6 * maxUpload

	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", web.StaticFS())
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.tmpl", gin.H{"Fields": web.UploadFields()})
	})

	h.Register(r.Group("/api"))
	return r
}
