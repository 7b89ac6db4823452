// Package api exposes the assessment engines over HTTP with gin
package api

import (
	"log"
	"net/http"

	"safetycalc/domain/core"
	"safetycalc/models"
	"safetycalc/ports"

	"github.com/gin-gonic/gin"
)

// Server wires the engine ports into a gin router
type Server struct {
	router  *gin.Engine
	engines *ports.Engines
}

// NewServer creates the API server around an engine bundle
func NewServer(engines *ports.Engines) *Server {
	s := &Server{
		router:  gin.Default(),
		engines: engines,
	}
	s.registerRoutes()
	return s
}

// Router returns the underlying gin engine for serving or testing
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server on addr
func (s *Server) Run(addr string) error {
	log.Printf("[API] Listening on %s", addr)
	return s.router.Run(addr)
}

func (s *Server) registerRoutes() {
	v1 := s.router.Group("/api/v1")
	{
		assess := v1.Group("/assess")
		{
			assess.POST("/fall-protection", s.assessFallProtection)
			assess.POST("/anchor", s.assessAnchor)
			assess.POST("/heat-stress", s.assessHeatStress)
			assess.POST("/hydration", s.assessHydration)
			assess.POST("/incident-rate", s.assessIncidentRate)
			assess.POST("/noise", s.assessNoise)
			assess.POST("/ppe", s.assessPPE)
			assess.POST("/training", s.assessTraining)
			assess.POST("/training-needs", s.assessTrainingNeeds)
		}
	}
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (s *Server) assessFallProtection(c *gin.Context) {
	var req models.FallProtectionRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.engines.FallProtection.Calculate(req.ToDomain())
	respond(c, result, err)
}

func (s *Server) assessAnchor(c *gin.Context) {
	var req models.AnchorStrengthRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.engines.FallProtection.AnchorStrength(req.ToDomain())
	respond(c, result, err)
}

func (s *Server) assessHeatStress(c *gin.Context) {
	var req models.HeatStressRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.engines.HeatStress.Calculate(req.ToDomain())
	respond(c, result, err)
}

func (s *Server) assessHydration(c *gin.Context) {
	var req models.HydrationRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.engines.HeatStress.PersonalHydration(req.ToDomain())
	respond(c, result, err)
}

func (s *Server) assessIncidentRate(c *gin.Context) {
	var req models.IncidentRateRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.engines.IncidentRate.Calculate(req.ToDomain())
	respond(c, result, err)
}

func (s *Server) assessNoise(c *gin.Context) {
	var req models.NoiseRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.engines.Noise.Calculate(req.ToDomain())
	respond(c, result, err)
}

func (s *Server) assessPPE(c *gin.Context) {
	var req models.PPERequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.engines.PPE.Calculate(req.ToDomain())
	respond(c, result, err)
}

func (s *Server) assessTraining(c *gin.Context) {
	var req models.TrainingRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.engines.Training.Calculate(req.ToDomain())
	respond(c, result, err)
}

func (s *Server) assessTrainingNeeds(c *gin.Context) {
	var req models.TrainingNeedsRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.engines.Training.AssessNeeds(req.ToDomain())
	respond(c, result, err)
}

// bindJSON decodes the request body, answering 400 on malformed JSON
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed request body", "detail": err.Error()})
		return false
	}
	return true
}

// respond answers 200 with the result, 422 with the field-level validation
// payload, or 500 for anything else
func respond(c *gin.Context, result interface{}, err error) {
	if err == nil {
		c.JSON(http.StatusOK, result)
		return
	}
	if verr, ok := core.AsValidationError(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      "Validation failed",
			"field":      verr.Field,
			"constraint": verr.Constraint,
			"message":    verr.Message,
		})
		return
	}
	log.Printf("[API] ❌ Assessment failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
}
