package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stellarlinkco/interview-coach/internal/app"
	"github.com/stellarlinkco/interview-coach/internal/question"
	"github.com/stellarlinkco/interview-coach/internal/scorer"
	"github.com/stellarlinkco/interview-coach/internal/session"
	"github.com/stellarlinkco/interview-coach/internal/store"
	"github.com/stellarlinkco/interview-coach/internal/voice"
)

type scoreRequest struct {
	Answer      string   `json:"answer"`
	Seconds     float64  `json:"seconds"`
	Keywords    []string `json:"keywords,omitempty"`
	IdealAnswer string   `json:"ideal_answer,omitempty"`
}

type scoreResponse struct {
	Knowledge  float64        `json:"knowledge"`
	Confidence float64        `json:"confidence"`
	Verdict    scorer.Verdict `json:"verdict"`
	Missing    []string       `json:"missing,omitempty"`
	Feedback   string         `json:"feedback"`
}

type interviewAnswer struct {
	Text    string  `json:"text"`
	Seconds float64 `json:"seconds"`
}

type interviewRequest struct {
	Subject string            `json:"subject"`
	Level   string            `json:"level"`
	Answers []interviewAnswer `json:"answers"`
}

type bankSummary struct {
	Topic     string `json:"topic"`
	Questions int    `json:"questions"`
}

type sessionSummary struct {
	ID         string  `json:"id"`
	Subject    string  `json:"subject"`
	Level      string  `json:"level"`
	StartedAt  string  `json:"started_at"`
	FinishedAt string  `json:"finished_at"`
	FinalScore float64 `json:"final_score"`
}

type sessionResponse struct {
	sessionSummary
	TotalKnowledge  float64                  `json:"total_knowledge"`
	TotalConfidence float64                  `json:"total_confidence"`
	Reports         []session.QuestionReport `json:"reports"`
	Transcript      []string                 `json:"transcript,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleListBanks(c *gin.Context) {
	if s.bank == nil {
		respondError(c, http.StatusInternalServerError, errors.New("no question bank configured"))
		return
	}

	topics := s.bank.Topics()
	out := make([]bankSummary, 0, len(topics))
	for _, topic := range topics {
		records, _ := s.bank.Topic(topic)
		out = append(out, bankSummary{Topic: topic, Questions: len(records)})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetBank(c *gin.Context) {
	if s.bank == nil {
		respondError(c, http.StatusInternalServerError, errors.New("no question bank configured"))
		return
	}

	topic := strings.TrimSpace(c.Param("topic"))
	records, ok := s.bank.Topic(topic)
	if !ok {
		// Accept free-form subjects like "ML Engineer" as a convenience.
		if key, resolved := question.ResolveTopic(topic); resolved {
			records, ok = s.bank.Topic(key)
			topic = key
		}
	}
	if !ok {
		respondError(c, http.StatusNotFound, fmt.Errorf("bank %q not found", topic))
		return
	}
	c.JSON(http.StatusOK, gin.H{"topic": topic, "questions": records})
}

func (s *Server) handleScore(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if req.Seconds < 0 {
		respondError(c, http.StatusBadRequest, errors.New("seconds must not be negative"))
		return
	}

	analysis := scorer.Analyze(req.Answer, req.Keywords, req.IdealAnswer)
	c.JSON(http.StatusOK, scoreResponse{
		Knowledge:  s.scorer.KnowledgeScore(req.Answer),
		Confidence: s.scorer.ConfidenceScore(req.Answer, req.Seconds),
		Verdict:    analysis.Verdict,
		Missing:    analysis.Missing,
		Feedback:   analysis.Feedback,
	})
}

func (s *Server) handleStartInterview(c *gin.Context) {
	var req interviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if strings.TrimSpace(req.Subject) == "" {
		respondError(c, http.StatusBadRequest, errors.New("missing subject"))
		return
	}
	for i, a := range req.Answers {
		if a.Seconds < 0 {
			respondError(c, http.StatusBadRequest, fmt.Errorf("answer %d: seconds must not be negative", i+1))
			return
		}
	}
	level := strings.TrimSpace(req.Level)
	if level == "" {
		level = "fresher"
	}

	answers := make([]voice.ScriptedAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, voice.ScriptedAnswer{Text: a.Text, Seconds: a.Seconds})
	}
	scripted := voice.NewScripted(answers)

	rec, err := app.RunSession(c.Request.Context(), s.store, s.bank, s.scorer, req.Subject, level, scripted)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	resp := sessionToResponse(rec)
	resp.Transcript = scripted.Transcript()
	c.JSON(http.StatusCreated, resp)
}

func (s *Server) handleListSessions(c *gin.Context) {
	limit, err := parseLimitParam(c.Query("limit"), 50)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	filter := store.ListFilter{
		Subject: strings.TrimSpace(c.Query("subject")),
		Limit:   limit,
	}
	records, err := s.store.ListSessions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	out := make([]sessionSummary, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		out = append(out, sessionToResponse(rec).sessionSummary)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetSession(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondError(c, http.StatusBadRequest, errors.New("missing session id"))
		return
	}

	rec, err := s.store.GetSession(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, fmt.Errorf("session %q not found", id))
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, sessionToResponse(rec))
}

func sessionToResponse(rec *store.SessionRecord) sessionResponse {
	return sessionResponse{
		sessionSummary: sessionSummary{
			ID:         rec.ID,
			Subject:    rec.Subject,
			Level:      rec.Level,
			StartedAt:  rec.StartedAt.UTC().Format(time.RFC3339),
			FinishedAt: rec.FinishedAt.UTC().Format(time.RFC3339),
			FinalScore: rec.FinalScore,
		},
		TotalKnowledge:  rec.TotalKnowledge,
		TotalConfidence: rec.TotalConfidence,
		Reports:         rec.Reports,
	}
}

func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		c.Status(status)
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func parseLimitParam(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid limit %q", raw)
	}
	return n, nil
}
