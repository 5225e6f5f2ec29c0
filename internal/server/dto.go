package server

import "github.com/matzehuels/mazewalk/pkg/buildinfo"

// healthResponse is returned by GET /healthz.
type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// compareResponse is returned by GET /v1/maze/compare.
type compareResponse struct {
	ID         string     `json:"id"`
	Seed       uint64     `json:"seed"`
	Rows       int        `json:"rows"`
	Columns    int        `json:"columns"`
	PathLength int        `json:"path_length"`
	BFS        modeResult `json:"bfs"`
	DFS        modeResult `json:"dfs"`
}

type modeResult struct {
	Visited int `json:"visited"`
}
