package ui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(Config{Port: "0"})
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}
	return app
}

func get(t *testing.T, app *App, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, req)
	return w
}

func TestIndexListsAllCalculators(t *testing.T) {
	w := get(t, newTestApp(t), "/")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, name := range []string{
		"Fall Protection", "Heat Stress", "Incident Rate",
		"Noise Exposure", "PPE Selection", "Training Needs",
	} {
		if !strings.Contains(body, name) {
			t.Errorf("index missing calculator %q", name)
		}
	}
}

func TestDemoReportRendersAllScenarios(t *testing.T) {
	w := get(t, newTestApp(t), "/demo")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Fall protection", "Heat stress", "Incident rates", "Noise exposure", "PPE selection", "Training program"} {
		if !strings.Contains(body, want) {
			t.Errorf("demo report missing section %q", want)
		}
	}
}

func TestScenarioPageForKnownSlug(t *testing.T) {
	w := get(t, newTestApp(t), "/demo/noise")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Noise exposure") {
		t.Error("scenario page should render the noise report")
	}
}

func TestScenarioPageUnknownSlugReturns404(t *testing.T) {
	w := get(t, newTestApp(t), "/demo/unknown")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
