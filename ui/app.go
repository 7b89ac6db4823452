// Package ui serves a small demo site over chi: an index of the six
// calculators and the canonical scenarios rendered as HTML reports.
package ui

import (
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"safetycalc/adapters/report"
	"safetycalc/internal/testkit"
	"safetycalc/ports"
)

// App represents the demo UI application
type App struct {
	router   *chi.Mux
	testkit  *testkit.TestKit
	renderer *report.Renderer
	shell    *template.Template
	port     string
}

// Config holds UI application configuration
type Config struct {
	Port string
}

type calculatorLink struct {
	Slug        string
	Name        string
	Description string
}

var calculators = []calculatorLink{
	{"fall-protection", "Fall Protection", "Clearance, impact force and system compliance for fall arrest setups"},
	{"heat-stress", "Heat Stress", "WBGT exposure, work-rest scheduling and hydration planning"},
	{"incident-rate", "Incident Rate", "TRIR, DART and LTIFR against industry benchmarks"},
	{"noise", "Noise Exposure", "OSHA dose, TWA and hearing protection adequacy"},
	{"ppe", "PPE Selection", "Hazard-driven equipment selection with compliance and cost"},
	{"training", "Training Needs", "Program sizing, cost, effectiveness and ROI"},
}

const shellHTML = `<!DOCTYPE html>
<html>
<head>
<title>Safety Calculators</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 960px; margin: 2rem auto; padding: 0 1rem; color: #1a202c; }
table { border-collapse: collapse; margin: 1rem 0; }
td, th { border: 1px solid #cbd5e0; padding: 0.4rem 0.8rem; text-align: left; }
a { color: #2b6cb0; }
.card { border: 1px solid #e2e8f0; border-radius: 8px; padding: 1rem; margin: 0.8rem 0; }
</style>
</head>
<body>
<p><a href="/">← All calculators</a></p>
{{.Body}}
</body>
</html>`

// NewApp creates the demo UI application
func NewApp(config Config) (*App, error) {
	shell, err := template.New("shell").Parse(shellHTML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page shell: %w", err)
	}

	app := &App{
		router:   chi.NewRouter(),
		testkit:  testkit.NewTestKit(),
		renderer: report.NewRenderer(),
		shell:    shell,
		port:     config.Port,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/demo", a.handleDemoReport)
	a.router.Get("/demo/{slug}", a.handleScenario)
}

// Start runs the UI server on the configured port
func (a *App) Start() error {
	addr := ":" + a.port
	log.Printf("[UI] Demo server listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the chi mux for testing
func (a *App) Router() *chi.Mux {
	return a.router
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	body := "<h1>Workplace Safety Calculators</h1>\n<p>Six assessment engines with pre-run demo scenarios. " +
		"<a href=\"/demo\">View the combined demo report</a>.</p>\n"
	for _, c := range calculators {
		body += fmt.Sprintf("<div class=\"card\"><h3><a href=\"/demo/%s\">%s</a></h3><p>%s</p></div>\n",
			c.Slug, c.Name, c.Description)
	}
	a.renderShell(w, body)
}

// handleDemoReport runs every canonical scenario and renders all results
func (a *App) handleDemoReport(w http.ResponseWriter, r *http.Request) {
	recs, err := a.testkit.RunAll()
	if err != nil {
		log.Printf("[UI] ❌ Demo scenarios failed: %v", err)
		http.Error(w, "Demo scenarios failed", http.StatusInternalServerError)
		return
	}
	a.renderShell(w, string(a.renderer.HTML(recs)))
}

// handleScenario renders the single pre-run scenario for one calculator
func (a *App) handleScenario(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	rec, err := a.runScenario(slug)
	if err != nil {
		http.Error(w, "Unknown calculator: "+slug, http.StatusNotFound)
		return
	}
	a.renderShell(w, string(a.renderer.HTML([]ports.ResultRecord{rec})))
}

func (a *App) runScenario(slug string) (ports.ResultRecord, error) {
	recs, err := a.testkit.RunAll()
	if err != nil {
		return ports.ResultRecord{}, err
	}
	engineBySlug := map[string]string{
		"fall-protection": "fall-protection",
		"heat-stress":     "heat-stress",
		"incident-rate":   "incident-rate",
		"noise":           "noise-exposure",
		"ppe":             "ppe-selection",
		"training":        "safety-training",
	}
	want, ok := engineBySlug[slug]
	if !ok {
		return ports.ResultRecord{}, fmt.Errorf("no scenario for %q", slug)
	}
	for _, rec := range recs {
		if rec.Engine == want {
			return rec, nil
		}
	}
	return ports.ResultRecord{}, fmt.Errorf("no scenario for %q", slug)
}

func (a *App) renderShell(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct{ Body template.HTML }{Body: template.HTML(body)}
	if err := a.shell.Execute(w, data); err != nil {
		log.Printf("[UI] ❌ Failed to render page: %v", err)
	}
}
