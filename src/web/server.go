// Package web serves the prediction form and forwards submissions to the
// remote model through the form controller.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/bbernhard/winequality-playground/src/commons"
	"github.com/bbernhard/winequality-playground/src/controller"
	"github.com/bbernhard/winequality-playground/src/viewstate"
	"github.com/gin-gonic/gin"
)

//go:embed templates
var templatesFS embed.FS

type Server struct {
	backend    controller.Backend
	store      viewstate.Store
	reporter   commons.ErrorReporter
	sessionTTL time.Duration
}

func NewServer(backend controller.Backend, store viewstate.Store, reporter commons.ErrorReporter, sessionTTL time.Duration) *Server {
	if reporter == nil {
		reporter = commons.NopReporter
	}
	return &Server{backend: backend, store: store, reporter: reporter, sessionTTL: sessionTTL}
}

func cors(c *gin.Context) {
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Requested-With, X-PINGOTHER, X-File-Name, Cache-Control")
	c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")
	c.Next()
}

func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.tmpl")))

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	page := router.Group("/", sessions(int(s.sessionTTL/time.Second)))
	page.GET("/", s.index)
	page.POST("/predict", s.predictForm)
	page.GET("/history/rows", s.historyRows)

	api := router.Group("/v1", cors, sessions(int(s.sessionTTL/time.Second)))
	api.OPTIONS("/predict", func(c *gin.Context) {
		c.JSON(http.StatusOK, struct{}{})
	})
	api.POST("/predict", s.predictAPI)
	api.GET("/history", s.historyAPI)

	return router
}
