package api

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stellarlinkco/interview-coach/internal/config"
	"github.com/stellarlinkco/interview-coach/internal/question"
	"github.com/stellarlinkco/interview-coach/internal/scorer"
	"github.com/stellarlinkco/interview-coach/internal/store"
)

type Server struct {
	router *gin.Engine
	store  store.Store
	bank   *question.Bank
	scorer *scorer.Scorer
	config *config.Config
}

func NewServer(cfg *config.Config, st store.Store, bank *question.Bank, sc *scorer.Scorer) (*Server, error) {
	if sc == nil {
		sc = scorer.New(scorer.Config{})
	}
	r := gin.New()
	s := &Server{
		router: r,
		store:  st,
		bank:   bank,
		scorer: sc,
		config: cfg,
	}
	s.registerMiddleware()
	if err := s.registerRoutes(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) Run(addr string) error {
	if s == nil || s.router == nil {
		return errors.New("api: nil server")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		addr = ":8080"
	}
	return s.router.Run(addr)
}
