package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yuhao2046/AINewsHub/internal/aggregator"
	"github.com/yuhao2046/AINewsHub/internal/config"
)

type Server struct {
	svc *aggregator.Service
}

func NewServer(svc *aggregator.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/news", s.listNews)
		v1.POST("/refresh", s.forceRefresh)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listNews(c *gin.Context) {
	category := c.DefaultQuery("category", config.CategoryDomestic)
	search := c.Query("search")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		limit = 100
	}

	refresh := c.Query("refresh")

	res, err := s.svc.GetNews(c.Request.Context(), aggregator.Options{
		Category:     category,
		Search:       search,
		Limit:        limit,
		ForceRefresh: refresh == "1" || refresh == "true",
	})
	if err != nil {
		log.Printf("get news error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "internal_error",
			"message": "获取新闻失败",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    res,
	})
}

func (s *Server) forceRefresh(c *gin.Context) {
	if err := s.svc.Refresh(c.Request.Context()); err != nil {
		log.Printf("force refresh error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "internal_error",
			"message": "刷新失败",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": "ok", "message": "refreshed"})
}
