package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	datastructures "github.com/bbernhard/winequality-playground/src/datastructures"
	"github.com/pkg/errors"
)

func measurements() datastructures.MeasurementSet {
	return datastructures.CollectMeasurements(func(f datastructures.Field) string { return "1.5" })
}

func TestPredictSendsJSONBody(t *testing.T) {
	var got map[string]string
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		equals(t, r.Method, http.MethodPost)
		equals(t, r.URL.Path, PredictPath)
		contentType = r.Header.Get("Content-Type")
		ok(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"predicted_quality":7.46,"quality_label":"High"}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL, 0).Predict(context.Background(), measurements())
	ok(t, err)
	equals(t, contentType, "application/json")
	equals(t, len(got), 11)
	equals(t, got["citric_acid"], "1.5")
	equals(t, res.Success, true)
	equals(t, *res.PredictedQuality, 7.46)
	equals(t, *res.QualityLabel, "High")
}

func TestPredictNonSuccessStatusKeepsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":"Invalid numeric value for ph: abc"}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL, 0).Predict(context.Background(), measurements())
	statusErr, isStatus := errors.Cause(err).(*StatusError)
	equals(t, isStatus, true)
	equals(t, statusErr.StatusCode, http.StatusBadRequest)
	equals(t, res.Success, false)
	equals(t, res.Error, "Invalid numeric value for ph: abc")
}

func TestPredictGarbageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>oops</html>`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, 0).Predict(context.Background(), measurements())
	notEquals(t, err, nil)
	_, isStatus := errors.Cause(err).(*StatusError)
	equals(t, isStatus, false)
}

func TestPredictUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, 0).Predict(context.Background(), measurements())
	notEquals(t, err, nil)
}

func TestHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		equals(t, r.Method, http.MethodGet)
		equals(t, r.URL.Path, HistoryPath)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"created_at":"2024-01-01 09:00","predicted_quality":5.5,"quality_label":"Low","alcohol":9.4,"ph":3.51,"fixed_acidity":7.4,"volatile_acidity":0.7,"sulphates":0.56}]`))
	}))
	defer srv.Close()

	records, err := New(srv.URL, 0).History(context.Background())
	ok(t, err)
	equals(t, len(records), 1)
	equals(t, records[0].CreatedAt, "2024-01-01 09:00")
	equals(t, *records[0].VolatileAcidity, 0.7)
}

func TestHistoryErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	records, err := New(srv.URL, 0).History(context.Background())
	equals(t, len(records), 0)
	_, isStatus := errors.Cause(err).(*StatusError)
	equals(t, isStatus, true)
}
