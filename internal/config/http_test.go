package config_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abhinav-rai/pathcraft/internal/apperr"
	"github.com/abhinav-rai/pathcraft/internal/config"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) config.Envelope {
	t.Helper()
	var env config.Envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("response is not a valid envelope: %v", err)
	}
	return env
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	config.JSON(rec, http.StatusOK, map[string]string{"slug": "intro"})

	if rec.Code != http.StatusOK {
		t.Errorf("want 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("want application/json, got %q", ct)
	}

	env := decodeEnvelope(t, rec)
	if env.StatusCode != http.StatusOK || env.Message != "success" {
		t.Errorf("unexpected envelope: %+v", env)
	}
	if env.Data == nil {
		t.Error("data must be present")
	}
}

func TestError(t *testing.T) {
	t.Run("TypedError", func(t *testing.T) {
		rec := httptest.NewRecorder()
		config.Error(rec, apperr.NotFound("learning path not found"))

		if rec.Code != http.StatusNotFound {
			t.Errorf("want 404, got %d", rec.Code)
		}
		env := decodeEnvelope(t, rec)
		if env.StatusCode != http.StatusNotFound || env.Message != "learning path not found" {
			t.Errorf("unexpected envelope: %+v", env)
		}
		if env.Data != nil {
			t.Error("error responses carry no data")
		}
	})

	t.Run("GenerationError", func(t *testing.T) {
		rec := httptest.NewRecorder()
		config.Error(rec, apperr.Generation("generation timed out", nil))

		if rec.Code != http.StatusBadGateway {
			t.Errorf("want 502, got %d", rec.Code)
		}
	})

	t.Run("UnknownError", func(t *testing.T) {
		rec := httptest.NewRecorder()
		config.Error(rec, errors.New("pq: connection reset"))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("want 500, got %d", rec.Code)
		}
		env := decodeEnvelope(t, rec)
		if env.Message != "internal server error" {
			t.Errorf("internal detail must not leak, got %q", env.Message)
		}
	})
}
