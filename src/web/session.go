package web

import (
	"context"

	datastructures "github.com/bbernhard/winequality-playground/src/datastructures"
	"github.com/bbernhard/winequality-playground/src/render"
	"github.com/bbernhard/winequality-playground/src/viewstate"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	sessionCookie = "playground_session"
	sessionKey    = "session"
)

// sessions makes sure every request carries a session id cookie.
func sessions(maxAge int) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			u, err := uuid.NewV4()
			if err != nil {
				log.Error("[Session] Couldn't create session id: ", err.Error())
				c.AbortWithStatusJSON(500, gin.H{"error": "Couldn't create session - please try again later"})
				return
			}
			id = u.String()
		}
		c.SetCookie(sessionCookie, id, maxAge, "/", "", false, true)
		c.Set(sessionKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

// pageView binds the controller to one session's page. Field values come
// from the current request; everything the controller shows ends up in page.
type pageView struct {
	ctx     context.Context
	store   viewstate.Store
	session string
	page    viewstate.Page
	input   func(string) string
}

func (v *pageView) FieldValue(f datastructures.Field) string {
	if v.input == nil {
		return v.page.Values[f]
	}
	val := v.input(string(f))
	if v.page.Values == nil {
		v.page.Values = make(map[datastructures.Field]string, len(datastructures.Fields))
	}
	v.page.Values[f] = val
	return val
}

func (v *pageView) Alert(msg string) {
	v.page.Alert = msg
}

// SetBusy is written through right away so a reload during a slow
// prediction shows the loading button.
func (v *pageView) SetBusy(busy bool) {
	v.page.Busy = busy
	if err := v.save(); err != nil {
		log.Error("[Session] Couldn't store busy state: ", err.Error())
	}
}

func (v *pageView) ShowResult(panel render.ResultPanel) {
	v.page.Result = &panel
}

func (v *pageView) ShowHistory(table render.HistoryTable) {
	v.page.History = &table
}

// save stores the page. The alert is shown once with the response that
// raised it and is never stored.
func (v *pageView) save() error {
	page := v.page
	page.Alert = ""
	return v.store.Save(v.ctx, v.session, page)
}

// saveHistory stores only the history table on top of the latest stored
// page, so a slow history load can't roll back a submission that finished
// in the meantime.
func (v *pageView) saveHistory() error {
	page, err := v.store.Load(v.ctx, v.session)
	if err != nil {
		return err
	}
	page.History = v.page.History
	return v.store.Save(v.ctx, v.session, page)
}
