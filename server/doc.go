// Package server exposes the maze solver over HTTP with gin.
//
// Routes:
//
//	POST /v1/solve            body: scenario JSON; runs to completion
//	GET  /v1/solve/stream     query: scenario, algorithm, speed, delay; SSE snapshots
//	GET  /v1/scenarios        names of the built-in scenarios
//	GET  /v1/scenarios/:name  one built-in scenario
//	GET  /healthz
//	GET  /metrics             Prometheus exposition
//
// Only one search runs at a time; a second request while one is active is
// rejected with 409 Conflict.
package server
