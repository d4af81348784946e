package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medrisk/domain/clinical"
	"medrisk/domain/core"
	"medrisk/engine"
	"medrisk/internal"
	"medrisk/matcher"
	"medrisk/models"
	"medrisk/ports"
)

// Server is the JSON API for risk assessments and symptom checks.
type Server struct {
	router  *gin.Engine
	engine  *engine.Engine
	matcher *matcher.Matcher
	kb      *matcher.KnowledgeBase
	repo    ports.AssessmentRepository // nil when persistence is not configured
	logger  *internal.Logger
}

// NewServer wires the API routes. repo may be nil; assessments are then
// computed and returned but not recorded.
func NewServer(eng *engine.Engine, m *matcher.Matcher, kb *matcher.KnowledgeBase, repo ports.AssessmentRepository, logger *internal.Logger) *Server {
	s := &Server{
		router:  gin.Default(),
		engine:  eng,
		matcher: m,
		kb:      kb,
		repo:    repo,
		logger:  logger,
	}

	api := s.router.Group("/api/v1")
	api.POST("/predict/:disease", s.handlePredict)
	api.POST("/predict/:disease/ensemble", s.handleEnsemblePredict)
	api.POST("/symptoms/check", s.handleSymptomCheck)
	api.GET("/models", s.handleModels)
	api.GET("/symptoms", s.handleSymptoms)
	api.GET("/assessments/recent", s.handleRecentAssessments)

	return s
}

// Handler exposes the router for serving and for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run blocks serving the API.
func (s *Server) Run(addr string) error {
	s.logger.Info("api server listening on %s", addr)
	return s.router.Run(addr)
}

// PredictRequest carries one named feature map. Features are keyed by the
// disease's published feature names; the vector order is resolved
// server-side so clients never deal with positional encoding.
type PredictRequest struct {
	Features map[string]float64 `json:"features" binding:"required"`
}

func (s *Server) handlePredict(c *gin.Context) {
	model, req, ok := s.bindPredict(c)
	if !ok {
		return
	}

	vector, err := s.featureVector(model, req.Features)
	if err != nil {
		s.renderError(c, err)
		return
	}

	result, err := model.Predict(vector)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.persist(model.Config().Key.String(), models.KindPrediction, req, result)
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleEnsemblePredict(c *gin.Context) {
	model, req, ok := s.bindPredict(c)
	if !ok {
		return
	}

	vector, err := s.featureVector(model, req.Features)
	if err != nil {
		s.renderError(c, err)
		return
	}

	verdict, err := model.EnsemblePredict(vector)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.persist(model.Config().Key.String(), models.KindEnsemble, req, verdict)
	c.JSON(http.StatusOK, gin.H{
		"disease":  model.Config().Name,
		"ensemble": verdict,
	})
}

// SymptomCheckRequest is one symptom checker query. Age and gender are
// optional demographic modifiers.
type SymptomCheckRequest struct {
	Symptoms []string `json:"symptoms" binding:"required"`
	Age      *int     `json:"age"`
	Gender   *string  `json:"gender"`
}

func (s *Server) handleSymptomCheck(c *gin.Context) {
	var req SymptomCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	query := matcher.Query{Age: req.Age}
	for _, raw := range req.Symptoms {
		id, err := core.ParseSymptomID(raw)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid symptom id: " + err.Error()})
			return
		}
		if _, ok := s.kb.Symptom(id); !ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown symptom: " + raw})
			return
		}
		query.Symptoms = append(query.Symptoms, id)
	}
	if req.Gender != nil {
		switch clinical.Gender(*req.Gender) {
		case clinical.GenderMale, clinical.GenderFemale:
			g := clinical.Gender(*req.Gender)
			query.Gender = &g
		default:
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "gender must be male or female"})
			return
		}
	}

	matches, err := s.matcher.Match(query)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.persist("", models.KindSymptoms, req, matches)
	c.JSON(http.StatusOK, gin.H{
		"matches": matches,
		"count":   len(matches),
	})
}

func (s *Server) handleModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"models": s.engine.Status()})
}

func (s *Server) handleSymptoms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"symptoms": s.kb.Symptoms()})
}

func (s *Server) handleRecentAssessments(c *gin.Context) {
	if s.repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assessment store not configured"})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 200 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "limit must be an integer in [1,200]"})
			return
		}
		limit = parsed
	}

	assessments, err := s.repo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		s.logger.Error("list recent assessments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load assessments"})
		return
	}
	if assessments == nil {
		assessments = []models.Assessment{}
	}
	c.JSON(http.StatusOK, gin.H{"assessments": assessments})
}

// bindPredict resolves the disease model and decodes the request body
// shared by the single and ensemble prediction routes.
func (s *Server) bindPredict(c *gin.Context) (*engine.DiseaseModel, PredictRequest, bool) {
	key, err := core.ParseDiseaseKey(c.Param("disease"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown disease"})
		return nil, PredictRequest{}, false
	}
	model, err := s.engine.Model(key)
	if err != nil {
		s.renderError(c, err)
		return nil, PredictRequest{}, false
	}

	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request body: " + err.Error()})
		return nil, PredictRequest{}, false
	}
	return model, req, true
}

// featureVector maps a named feature set onto the model's fixed order.
// Missing and unrecognized names are both rejected, so typos fail loudly
// instead of silently scoring a zeroed vector.
func (s *Server) featureVector(model *engine.DiseaseModel, named map[string]float64) ([]float64, error) {
	cfg := model.Config()
	vector := make([]float64, len(cfg.FeatureOrder))
	seen := 0
	for i, name := range cfg.FeatureOrder {
		v, ok := named[name]
		if !ok {
			return nil, core.NewMissingFeatureError(cfg.Name, name)
		}
		vector[i] = v
		seen++
	}
	if len(named) != seen {
		return nil, core.NewUnknownFeatureError(cfg.Name)
	}
	return vector, nil
}

// persist records an assessment best-effort. Failures are logged, never
// surfaced: the audit trail must not affect the scored request path.
func (s *Server) persist(disease string, kind models.AssessmentKind, request, result interface{}) {
	if s.repo == nil {
		return
	}

	reqJSON, err := json.Marshal(request)
	if err != nil {
		s.logger.Error("marshal assessment request: %v", err)
		return
	}
	resJSON, err := json.Marshal(result)
	if err != nil {
		s.logger.Error("marshal assessment result: %v", err)
		return
	}

	assessment := &models.Assessment{
		ID:        uuid.New(),
		Disease:   disease,
		Kind:      kind,
		Request:   reqJSON,
		Result:    resJSON,
		CreatedAt: time.Now().UTC(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.repo.Save(ctx, assessment); err != nil {
			s.logger.Error("save assessment: %v", err)
		}
	}()
}

// renderError maps domain errors onto HTTP status codes.
func (s *Server) renderError(c *gin.Context, err error) {
	switch {
	case core.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case core.IsMalformedInputError(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case core.IsNotReadyError(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		s.logger.Error("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
