// Package httpapi exposes the question generator and the candidate store to
// other systems over HTTP.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/mkravets/talentscout/internal/ai"
	"github.com/mkravets/talentscout/internal/candidate"
	"github.com/mkravets/talentscout/internal/store"
)

// Server aggregates the handler dependencies.
type Server struct {
	generator ai.QuestionGenerator
	dataFile  string
	logger    *zap.Logger
	validate  *validator.Validate
}

// New creates the API server. dataFile is where /save_candidate appends
// records.
func New(generator ai.QuestionGenerator, dataFile string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dataFile == "" {
		dataFile = store.DefaultPath
	}

	return &Server{
		generator: generator,
		dataFile:  dataFile,
		logger:    logger,
		validate:  validator.New(),
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(httprate.LimitByIP(60, time.Minute))

	r.Post("/generate_questions", s.handleGenerateQuestions)
	r.Post("/save_candidate", s.handleSaveCandidate)

	return r
}

type generateQuestionsRequest struct {
	TechStack []string `json:"tech_stack"`
}

func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req generateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	stack := candidate.NormalizeStack(req.TechStack)
	if len(stack) == 0 {
		s.writeError(w, http.StatusBadRequest, "Tech stack required.")
		return
	}

	questions := s.generator.GenerateQuestions(r.Context(), stack)

	s.logger.Info("questions generated",
		zap.Int("tech_count", len(stack)),
		zap.Int("question_count", len(questions)),
		zap.Bool("degraded", ai.IsErrorList(questions)),
	)

	s.writeJSON(w, http.StatusOK, map[string]any{"questions": questions})
}

// saveCandidateRequest is the full candidate record accepted by
// /save_candidate. Questions may be empty when the interview did not run.
type saveCandidateRequest struct {
	Name       string   `json:"name" mapstructure:"name" validate:"required"`
	Email      string   `json:"email" mapstructure:"email" validate:"required"`
	Phone      string   `json:"phone" mapstructure:"phone" validate:"required"`
	Experience int      `json:"experience" mapstructure:"experience" validate:"min=0"`
	Position   string   `json:"position" mapstructure:"position" validate:"required"`
	Location   string   `json:"location" mapstructure:"location" validate:"required"`
	TechStack  []string `json:"tech_stack" mapstructure:"tech_stack" validate:"required,min=1"`
	Questions  []string `json:"questions" mapstructure:"questions"`
}

func (s *Server) handleSaveCandidate(w http.ResponseWriter, r *http.Request) {
	var req saveCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !candidate.ValidEmail(req.Email) {
		s.writeError(w, http.StatusBadRequest, "invalid email address")
		return
	}
	if !candidate.ValidPhone(req.Phone) {
		s.writeError(w, http.StatusBadRequest, "invalid phone number")
		return
	}

	req.TechStack = candidate.NormalizeStack(req.TechStack)
	if len(req.TechStack) == 0 {
		s.writeError(w, http.StatusBadRequest, "Tech stack required.")
		return
	}

	record := store.Record{}
	if err := mapstructure.Decode(req, &record); err != nil {
		s.logger.Error("encoding candidate record", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "could not save candidate")
		return
	}

	if err := store.Append(s.dataFile, record); err != nil {
		s.logger.Error("saving candidate record", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "could not save candidate")
		return
	}

	s.logger.Info("candidate record saved", zap.String("path", s.dataFile))
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "success"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encoding response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, map[string]any{"error": detail})
}
