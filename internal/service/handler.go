package service

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/graph"
	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/planner"
)

// ErrorResponse is the single structured error the adapter ever returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server holds the immutable Graph and exposes it over HTTP.
type Server struct {
	Graph *graph.Graph
}

// NewRouter wires the routing endpoint and a liveness probe onto a gin
// engine already configured with CORS, mirroring
// health-route-server/main.go's route registration.
func (s *Server) NewRouter(r *gin.Engine) {
	r.GET("/health", s.handleHealth)
	r.POST("/api/route", s.handleRoute)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"nodes":  len(s.Graph.Nodes),
	})
}

func (s *Server) handleRoute(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	results := planner.PlanAll(s.Graph, req.Origin.Lat, req.Origin.Lon, req.Destination.Lat, req.Destination.Lon)

	resp, ok := BuildResponse(req.Origin.Lat, req.Origin.Lon, req.Destination.Lat, req.Destination.Lon, results)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "NOT_FOUND"})
		return
	}

	resp.NearestOriginStops = NearestStops(s.Graph, req.Origin.Lat, req.Origin.Lon)
	resp.NearestDestinationStops = NearestStops(s.Graph, req.Destination.Lat, req.Destination.Lon)

	c.JSON(http.StatusOK, resp)
}
