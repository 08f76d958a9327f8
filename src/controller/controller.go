// Package controller implements the form workflow: collect the measurements,
// validate them, ask the backend for a prediction, render the result and
// refresh the history.
package controller

import (
	"context"
	"net/http"

	"github.com/bbernhard/winequality-playground/src/client"
	"github.com/bbernhard/winequality-playground/src/commons"
	datastructures "github.com/bbernhard/winequality-playground/src/datastructures"
	"github.com/bbernhard/winequality-playground/src/render"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// View is what the controller needs from the page.
type View interface {
	// FieldValue returns the raw content of the input for f.
	FieldValue(f datastructures.Field) string
	// Alert shows a blocking message to the user.
	Alert(msg string)
	// SetBusy toggles the submit control between idle and loading.
	SetBusy(busy bool)
	ShowResult(panel render.ResultPanel)
	ShowHistory(table render.HistoryTable)
}

// Backend is the remote prediction service.
type Backend interface {
	Predict(ctx context.Context, m datastructures.MeasurementSet) (datastructures.PredictResponse, error)
	History(ctx context.Context) ([]datastructures.HistoryRecord, error)
}

type Controller struct {
	view     View
	backend  Backend
	reporter commons.ErrorReporter
}

func New(view View, backend Backend, reporter commons.ErrorReporter) *Controller {
	if reporter == nil {
		reporter = commons.NopReporter
	}
	return &Controller{view: view, backend: backend, reporter: reporter}
}

// Submit runs one prediction attempt. Every failure is terminal for the
// attempt and has already been shown to the user when Submit returns. The
// returned error is a *ValidationError, *ServerError or *TransportError.
func (c *Controller) Submit(ctx context.Context) (*datastructures.PredictionResult, error) {
	m := datastructures.CollectMeasurements(c.view.FieldValue)
	if f, empty := m.FirstEmpty(); empty {
		c.view.Alert(MsgFillAllFields)
		return nil, &ValidationError{Field: f}
	}

	c.view.SetBusy(true)
	defer c.view.SetBusy(false)

	res, err := c.predict(ctx, m)
	if err != nil {
		switch e := err.(type) {
		case *ServerError:
			log.Debug("[Predict] Backend rejected request: ", e.Error())
			c.view.Alert(e.Message)
		default:
			log.Error("[Predict] Couldn't call backend: ", err.Error())
			c.reporter.Report(err, map[string]string{"op": "predict"})
			c.view.Alert(MsgTransportFailed)
		}
		return nil, err
	}

	c.view.ShowResult(render.NewResultPanel(res))
	c.RefreshHistory(ctx)
	return &res, nil
}

func (c *Controller) predict(ctx context.Context, m datastructures.MeasurementSet) (datastructures.PredictionResult, error) {
	var res datastructures.PredictionResult

	resp, err := c.backend.Predict(ctx, m)
	if err != nil {
		statusErr, ok := errors.Cause(err).(*client.StatusError)
		if !ok {
			return res, &TransportError{Op: "predict", Err: err}
		}
		return res, &ServerError{StatusCode: statusErr.StatusCode, Message: serverMessage(resp)}
	}
	if !resp.Success {
		return res, &ServerError{StatusCode: http.StatusOK, Message: serverMessage(resp)}
	}
	if resp.PredictedQuality == nil || resp.QualityLabel == nil {
		return res, &TransportError{Op: "predict", Err: errors.New("malformed response: predicted_quality and quality_label are required")}
	}

	res.PredictedQuality = *resp.PredictedQuality
	res.QualityLabel = *resp.QualityLabel
	return res, nil
}

func serverMessage(resp datastructures.PredictResponse) string {
	if resp.Error != "" {
		return resp.Error
	}
	return MsgPredictFailed
}

// RefreshHistory reloads the history table. Failures are logged and reported
// but never shown; the view keeps whatever it displayed before.
func (c *Controller) RefreshHistory(ctx context.Context) error {
	records, err := c.backend.History(ctx)
	if err != nil {
		log.Error("[History] Failed to load history: ", err.Error())
		c.reporter.Report(err, map[string]string{"op": "history"})
		return &TransportError{Op: "history", Err: err}
	}
	c.view.ShowHistory(render.NewHistoryTable(records))
	return nil
}
