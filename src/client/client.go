// Package client talks to the remote wine quality prediction service.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	datastructures "github.com/bbernhard/winequality-playground/src/datastructures"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const (
	PredictPath = "/predict"
	HistoryPath = "/history"
)

// StatusError is returned when the backend answered with a non-2xx status.
// Body holds the raw response so callers can look for an error message.
type StatusError struct {
	Path       string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Path, e.StatusCode)
}

type Client struct {
	http *resty.Client
}

// New creates a client for the backend at baseURL. A zero timeout means calls
// wait until the backend answers or the context is cancelled.
func New(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetHostURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &Client{http: c}
}

// Predict posts the measurements and decodes the backend's answer. A
// *StatusError is returned together with the decoded body when the status is
// not 2xx, so the server supplied message is not lost.
func (c *Client) Predict(ctx context.Context, m datastructures.MeasurementSet) (datastructures.PredictResponse, error) {
	var res datastructures.PredictResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(m).
		Post(PredictPath)
	if err != nil {
		return res, errors.Wrap(err, "post "+PredictPath)
	}

	if err := json.Unmarshal(resp.Body(), &res); err != nil {
		if resp.IsError() {
			return res, &StatusError{Path: PredictPath, StatusCode: resp.StatusCode(), Body: resp.Body()}
		}
		return res, errors.Wrap(err, "decode "+PredictPath+" response")
	}
	if resp.IsError() {
		return res, &StatusError{Path: PredictPath, StatusCode: resp.StatusCode(), Body: resp.Body()}
	}
	return res, nil
}

// History fetches the backend's prediction history in server order.
func (c *Client) History(ctx context.Context) ([]datastructures.HistoryRecord, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(HistoryPath)
	if err != nil {
		return nil, errors.Wrap(err, "get "+HistoryPath)
	}
	if resp.IsError() {
		return nil, &StatusError{Path: HistoryPath, StatusCode: resp.StatusCode(), Body: resp.Body()}
	}

	records := []datastructures.HistoryRecord{}
	if err := json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, errors.Wrap(err, "decode "+HistoryPath+" response")
	}
	return records, nil
}
