// Batch runner: reads a scenario file, fans the assessments out over a
// bounded worker group and writes the combined workbook and markdown report.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"safetycalc/adapters/excel"
	"safetycalc/adapters/records"
	"safetycalc/adapters/report"
	"safetycalc/internal/config"
	"safetycalc/models"
	"safetycalc/ports"
)

// Scenario is one entry of the batch input file. Params is decoded against
// the request type selected by Type.
type Scenario struct {
	Type   string          `json:"type"`
	Params json.RawMessage `json:"params"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment defaults")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	scenarios, err := loadScenarios(cfg.Batch.ScenarioFile)
	if err != nil {
		log.Fatal("Failed to load scenarios:", err)
	}
	log.Printf("[Batch] Loaded %d scenarios from %s", len(scenarios), cfg.Batch.ScenarioFile)

	engines := ports.NewEngines()

	start := time.Now()
	results, err := runScenarios(context.Background(), &engines, scenarios, cfg.Batch.Workers)
	if err != nil {
		log.Fatal("Batch run failed:", err)
	}
	log.Printf("[Batch] %d assessments completed in %.2fms",
		len(results), float64(time.Since(start).Nanoseconds())/1e6)

	if err := writeOutputs(cfg, results); err != nil {
		log.Fatal("Failed to write outputs:", err)
	}
}

func loadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}
	var scenarios []Scenario
	if err := json.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", path, err)
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %s contains no scenarios", path)
	}
	return scenarios, nil
}

// runScenarios executes every scenario with at most workers in flight.
// Results land at their scenario's index so output order matches input order.
func runScenarios(ctx context.Context, engines *ports.Engines, scenarios []Scenario, workers int) ([]ports.ResultRecord, error) {
	results := make([]ports.ResultRecord, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, sc := range scenarios {
		i, sc := i, sc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := runOne(engines, sc)
			if err != nil {
				return fmt.Errorf("scenario %d (%s): %w", i+1, sc.Type, err)
			}
			results[i] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(engines *ports.Engines, sc Scenario) (ports.ResultRecord, error) {
	switch sc.Type {
	case "fall-protection":
		var req models.FallProtectionRequest
		if err := json.Unmarshal(sc.Params, &req); err != nil {
			return ports.ResultRecord{}, err
		}
		result, err := engines.FallProtection.Calculate(req.ToDomain())
		if err != nil {
			return ports.ResultRecord{}, err
		}
		return records.FromFallProtection(result), nil

	case "heat-stress":
		var req models.HeatStressRequest
		if err := json.Unmarshal(sc.Params, &req); err != nil {
			return ports.ResultRecord{}, err
		}
		result, err := engines.HeatStress.Calculate(req.ToDomain())
		if err != nil {
			return ports.ResultRecord{}, err
		}
		return records.FromHeatStress(result), nil

	case "incident-rate":
		var req models.IncidentRateRequest
		if err := json.Unmarshal(sc.Params, &req); err != nil {
			return ports.ResultRecord{}, err
		}
		result, err := engines.IncidentRate.Calculate(req.ToDomain())
		if err != nil {
			return ports.ResultRecord{}, err
		}
		return records.FromIncidentRate(result), nil

	case "noise":
		var req models.NoiseRequest
		if err := json.Unmarshal(sc.Params, &req); err != nil {
			return ports.ResultRecord{}, err
		}
		result, err := engines.Noise.Calculate(req.ToDomain())
		if err != nil {
			return ports.ResultRecord{}, err
		}
		return records.FromNoise(result), nil

	case "ppe":
		var req models.PPERequest
		if err := json.Unmarshal(sc.Params, &req); err != nil {
			return ports.ResultRecord{}, err
		}
		result, err := engines.PPE.Calculate(req.ToDomain())
		if err != nil {
			return ports.ResultRecord{}, err
		}
		return records.FromPPE(result), nil

	case "training":
		var req models.TrainingRequest
		if err := json.Unmarshal(sc.Params, &req); err != nil {
			return ports.ResultRecord{}, err
		}
		result, err := engines.Training.Calculate(req.ToDomain())
		if err != nil {
			return ports.ResultRecord{}, err
		}
		return records.FromTraining(result), nil

	default:
		return ports.ResultRecord{}, fmt.Errorf("unknown scenario type %q", sc.Type)
	}
}

func writeOutputs(cfg *config.Config, results []ports.ResultRecord) error {
	if err := os.MkdirAll(cfg.Export.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	excelPath := filepath.Join(cfg.Export.OutputDir, cfg.Export.ExcelFile)
	if err := excel.NewWorkbookWriter().Write(excelPath, results); err != nil {
		return err
	}
	log.Printf("[Batch] Workbook written to %s", excelPath)

	reportPath := filepath.Join(cfg.Export.OutputDir, cfg.Export.ReportFile)
	md := report.NewRenderer().Markdown(results)
	if err := os.WriteFile(reportPath, md, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	log.Printf("[Batch] Report written to %s", reportPath)
	return nil
}
