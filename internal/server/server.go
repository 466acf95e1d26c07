package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/graphbio/helix/internal/config"
	"github.com/graphbio/helix/internal/core"
	"github.com/graphbio/helix/internal/core/model"
	"github.com/graphbio/helix/internal/driver"
	"github.com/graphbio/helix/internal/refsource"
)

type Server struct {
	Engine *core.Engine
}

// NewServer wires the engine from configuration. The graph store is
// optional: without one, only payload resolution is served.
func NewServer(cfg *config.Config) *Server {
	var d driver.GraphDriver
	if cfg.Neo4j.URI != "" {
		nd, err := driver.NewNeo4jDriver(cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password)
		if err != nil {
			log.Fatalf("Failed to connect to graph store: %v", err)
		}
		d = nd
	} else {
		log.Println("No graph store configured; /query is disabled")
	}

	sources := refsource.BuildRegistry(cfg.Sources)
	fallback := refsource.NewSummarizer(cfg.LLM)

	return &Server{
		Engine: core.NewEngine(d, sources, fallback),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/query", s.Query)
	r.POST("/resolve", s.Resolve)
	r.GET("/catalog", s.Catalog)
	r.GET("/catalog/entities/:type/:id", s.Entity)
	r.POST("/catalog/entities/:type/:id/enrich", s.Enrich)

	return r
}

type QueryRequest struct {
	Query  string                 `json:"query"`
	Params map[string]interface{} `json:"params"`
}

func (s *Server) Query(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	catalog, err := s.Engine.RunQuery(c.Request.Context(), req.Query, req.Params)
	if err != nil {
		log.Printf("Failed to run query: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run query"})
		return
	}

	c.JSON(http.StatusOK, catalog)
}

// Resolve accepts a raw result payload (an array of rows or a single
// object) and replaces the catalog with its resolution.
func (s *Server) Resolve(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	catalog, err := s.Engine.ResolvePayload(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	c.JSON(http.StatusOK, catalog)
}

func (s *Server) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, s.Engine.Catalog())
}

func (s *Server) Entity(c *gin.Context) {
	t := model.EntityType(c.Param("type"))
	id := c.Param("id")

	rec, state, summary, message := s.Engine.EntityStatus(t, id)
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entity not found"})
		return
	}

	resp := gin.H{
		"entity": rec,
		"state":  state,
	}
	if summary != nil {
		resp["summary"] = summary
	}
	if message != "" {
		resp["message"] = message
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) Enrich(c *gin.Context) {
	t := model.EntityType(c.Param("type"))
	id := c.Param("id")

	state, err := s.Engine.Enrich(c.Request.Context(), t, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entity not found"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"state": state})
}
