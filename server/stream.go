package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/mazepath"
	"github.com/katalvlaran/mazepath/scenario"
	"github.com/katalvlaran/mazepath/search"
)

// SSE event names written by GET /v1/solve/stream.
const (
	EventStep  = "step"
	EventDone  = "done"
	EventError = "error"
)

// handleStream runs a built-in scenario and streams one "step" event per
// expansion, then a "done" event carrying the stats. Query parameters
// algorithm, speed and delay override the scenario. A client disconnect
// cancels the search.
func (s *Server) handleStream(c *gin.Context) {
	name := c.DefaultQuery("scenario", "sample")
	sc, err := scenario.Builtin(name)
	if err != nil {
		abort(c, http.StatusNotFound, "not_found", err)
		return
	}
	if v, ok := c.GetQuery("algorithm"); ok {
		sc.Algorithm = v
	}
	if v, ok := c.GetQuery("speed"); ok {
		sc.Speed, sc.Delay = v, ""
	}
	if v, ok := c.GetQuery("delay"); ok {
		sc.Delay = v
	}
	p, ok := s.problem(c, sc)
	if !ok {
		return
	}
	if !s.acquire(c) {
		return
	}
	defer s.release()

	s.metrics.streaming.Inc()
	defer s.metrics.streaming.Dec()

	runID := uuid.NewString()
	log := s.log.With("run_id", runID, "algorithm", p.Algorithm.String(), "scenario", name)
	c.Header("X-Run-ID", runID)
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	began := time.Now()
	var last search.Snapshot
	var runErr error
	for snap, err := range mazepath.Steps(c.Request.Context(), p.Grid, p.Algorithm, p.Start, p.Goal, p.Options()...) {
		if err != nil {
			runErr = err
			c.SSEvent(EventError, errorBody{Error: err.Error(), Code: "stopped"})
			c.Writer.Flush()
			break
		}
		last = snap
		if snap.Done {
			break
		}
		c.SSEvent(EventStep, snap)
		c.Writer.Flush()
	}
	elapsed := time.Since(began)

	res := &search.Result{Path: last.Path, Explored: last.Explored}
	s.metrics.observe(p.Algorithm, outcome(res, runErr), elapsed, len(last.Explored))
	if runErr != nil {
		log.Warn("stream stopped", "error", runErr, "explored", len(last.Explored))
		return
	}

	stats := mazepath.Measure(res, elapsed)
	c.SSEvent(EventDone, gin.H{"runId": runID, "snapshot": last, "stats": stats})
	c.Writer.Flush()
	log.Info("stream finished",
		"explored", stats.NodesExplored,
		"path_len", stats.PathLength,
		"elapsed", elapsed)
}
