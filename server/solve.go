package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/mazepath"
	"github.com/katalvlaran/mazepath/scenario"
)

// SolveResponse is the body of a successful POST /v1/solve.
type SolveResponse struct {
	RunID string `json:"runId"`
	Found bool   `json:"found"`
	*mazepath.Report
}

func (s *Server) handleSolve(c *gin.Context) {
	var sc scenario.Scenario
	if err := c.ShouldBindJSON(&sc); err != nil {
		abort(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	p, ok := s.problem(c, &sc)
	if !ok {
		return
	}
	if !s.acquire(c) {
		return
	}
	defer s.release()

	runID := uuid.NewString()
	c.Header("X-Run-ID", runID)
	log := s.log.With("run_id", runID, "algorithm", p.Algorithm.String())

	rep, err := mazepath.Run(c.Request.Context(), p.Grid, p.Algorithm, p.Start, p.Goal, p.Options()...)
	if rep != nil {
		s.metrics.observe(p.Algorithm, outcome(rep.Result, err), rep.Stats.Elapsed, rep.Stats.NodesExplored)
	}
	if err != nil {
		log.Warn("search stopped", "error", err)
		abort(c, http.StatusServiceUnavailable, "stopped", err)
		return
	}
	log.Info("search finished",
		"explored", rep.Stats.NodesExplored,
		"path_len", rep.Stats.PathLength,
		"elapsed", rep.Stats.Elapsed)

	c.JSON(http.StatusOK, SolveResponse{RunID: runID, Found: rep.Result.Found(), Report: rep})
}
