package web

import (
	"net/http"
	"strconv"

	"github.com/bbernhard/winequality-playground/src/controller"
	datastructures "github.com/bbernhard/winequality-playground/src/datastructures"
	"github.com/bbernhard/winequality-playground/src/render"
	"github.com/bbernhard/winequality-playground/src/viewstate"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type fieldInput struct {
	ID    string
	Label string
	Value string
}

type indexData struct {
	Fields        []fieldInput
	Page          viewstate.Page
	HistoryHeader [render.HistoryColumns]string
	FillAllFields string
}

func newIndexData(page viewstate.Page) indexData {
	fields := make([]fieldInput, 0, len(datastructures.Fields))
	for _, f := range datastructures.Fields {
		fields = append(fields, fieldInput{ID: string(f), Label: f.Label(), Value: page.Values[f]})
	}
	return indexData{
		Fields:        fields,
		Page:          page,
		HistoryHeader: render.HistoryHeader,
		FillAllFields: controller.MsgFillAllFields,
	}
}

// view loads the session's page. A broken store degrades to an empty page.
func (s *Server) view(c *gin.Context, input func(string) string) *pageView {
	session := sessionID(c)
	page, err := s.store.Load(c.Request.Context(), session)
	if err != nil {
		log.Error("[Session] Couldn't load page: ", err.Error())
		s.reporter.Report(err, map[string]string{"op": "load-page"})
	}
	return &pageView{
		ctx:     c.Request.Context(),
		store:   s.store,
		session: session,
		page:    page,
		input:   input,
	}
}

func (s *Server) persist(v *pageView) {
	s.checkSaved(v.save())
}

func (s *Server) checkSaved(err error) {
	if err != nil {
		log.Error("[Session] Couldn't store page: ", err.Error())
		s.reporter.Report(err, map[string]string{"op": "save-page"})
	}
}

func (s *Server) index(c *gin.Context) {
	v := s.view(c, nil)
	c.HTML(http.StatusOK, "index.tmpl", newIndexData(v.page))
}

func (s *Server) submit(c *gin.Context, input func(string) string) (*pageView, *datastructures.PredictionResult, error) {
	v := s.view(c, input)
	v.page.Alert = ""

	res, err := controller.New(v, s.backend, s.reporter).Submit(c.Request.Context())
	s.persist(v)
	return v, res, err
}

func (s *Server) predictForm(c *gin.Context) {
	v, _, _ := s.submit(c, c.PostForm)
	c.HTML(http.StatusOK, "index.tmpl", newIndexData(v.page))
}

// predictAPI accepts the measurements either as a JSON object or as form
// fields.
func (s *Server) predictAPI(c *gin.Context) {
	input := c.PostForm
	if c.ContentType() == gin.MIMEJSON {
		body := map[string]interface{}{}
		if err := c.ShouldBindJSON(&body); err != nil {
			log.Debug("[Predict] Couldn't parse request body: ", err.Error())
			c.JSON(http.StatusBadRequest, gin.H{"error": "Couldn't parse request body"})
			return
		}
		input = func(key string) string { return jsonValue(body[key]) }
	}

	v, _, err := s.submit(c, input)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": v.page.Alert})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": v.page.Result, "history": v.page.History})
}

// jsonValue turns a decoded JSON scalar back into the text an input would
// hold. Numbers are accepted so API clients don't need to quote them.
func jsonValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

func errorStatus(err error) int {
	switch e := err.(type) {
	case *controller.ValidationError:
		return http.StatusBadRequest
	case *controller.ServerError:
		if e.StatusCode >= 400 && e.StatusCode < 500 {
			return e.StatusCode
		}
	}
	return http.StatusBadGateway
}

func (s *Server) refreshHistory(c *gin.Context) *pageView {
	v := s.view(c, nil)
	if err := controller.New(v, s.backend, s.reporter).RefreshHistory(c.Request.Context()); err == nil {
		s.checkSaved(v.saveHistory())
	}
	return v
}

// historyRows renders the modal body. On failure the previously shown rows
// are rendered again.
func (s *Server) historyRows(c *gin.Context) {
	v := s.refreshHistory(c)
	c.HTML(http.StatusOK, "history_rows.tmpl", v.page.History)
}

func (s *Server) historyAPI(c *gin.Context) {
	v := s.refreshHistory(c)
	if v.page.History == nil {
		c.JSON(http.StatusOK, render.HistoryTable{Rows: []render.HistoryRow{}})
		return
	}
	c.JSON(http.StatusOK, v.page.History)
}
