package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"newspulse/internal/storage"
)

// Refresher 手动触发一轮采集
type Refresher interface {
	FetchAndStore(ctx context.Context, maxPriority int) int
}

type Server struct {
	store  *storage.Store
	engine Refresher
}

func NewServer(store *storage.Store, engine Refresher) *Server {
	return &Server{store: store, engine: engine}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/news", s.listNews)
		v1.GET("/news/latest", s.latestNews)
		v1.POST("/refresh", s.refresh)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listNews(c *gin.Context) {
	region := c.Query("region")
	category := c.Query("category")
	sort := c.DefaultQuery("sort", "latest")
	if sort != "latest" && sort != "important" {
		sort = "latest"
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	items, err := s.store.ListArticles(c.Request.Context(), region, category, sort, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "internal_error",
			"message": "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    items,
	})
}

// latestNews 优先走快照缓存，未命中时回落数据库按重要性取前 50
func (s *Server) latestNews(c *gin.Context) {
	if cached := s.store.CachedLatest(c.Request.Context()); cached != nil {
		c.JSON(http.StatusOK, gin.H{
			"code":   "ok",
			"cached": true,
			"data":   cached,
		})
		return
	}

	items, err := s.store.ListArticles(c.Request.Context(), "", "", "important", 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "internal_error",
			"message": "internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":   "ok",
		"cached": false,
		"data":   items,
	})
}

// refresh 同步执行一轮采集并返回新增条数；priority 参数限定最低优先级
func (s *Server) refresh(c *gin.Context) {
	maxPriority := 0
	if p := c.Query("priority"); p != "" {
		v, err := strconv.Atoi(p)
		if err != nil || v < 1 || v > 3 {
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    "bad_request",
				"message": "priority must be 1, 2 or 3",
			})
			return
		}
		maxPriority = v
	}

	inserted := s.engine.FetchAndStore(c.Request.Context(), maxPriority)
	c.JSON(http.StatusOK, gin.H{
		"code":     "ok",
		"inserted": inserted,
	})
}
