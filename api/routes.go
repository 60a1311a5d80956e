package api

import (
	"errors"
	"os"
	"strings"
)

func (s *Server) registerRoutes() error {
	if s == nil || s.router == nil {
		return nil
	}

	v1 := s.router.Group("/api/v1")
	apiKey := strings.TrimSpace(os.Getenv("INTERVIEW_API_KEY"))
	if apiKey != "" {
		v1.Use(apiKeyAuthMiddleware(apiKey))
	} else if strings.EqualFold(strings.TrimSpace(os.Getenv("INTERVIEW_DISABLE_AUTH")), "true") {
		// Explicitly allow unauthenticated access.
	} else {
		return errors.New("api: missing auth configuration: set INTERVIEW_API_KEY or set INTERVIEW_DISABLE_AUTH=true")
	}

	v1.GET("/health", s.handleHealth)

	v1.GET("/banks", s.handleListBanks)
	v1.GET("/banks/:topic", s.handleGetBank)

	v1.POST("/score", s.handleScore)
	v1.POST("/interviews", s.handleStartInterview)

	v1.GET("/sessions", s.handleListSessions)
	v1.GET("/sessions/:id", s.handleGetSession)

	return nil
}
