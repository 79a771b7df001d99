package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mediasniff/mediasniff/pkg/capture"
)

type API struct {
	orch *capture.Orchestrator
	feed *feedHub
}

func NewAPI(orch *capture.Orchestrator) *API {
	a := &API{
		orch: orch,
		feed: newFeedHub(),
	}
	orch.SetNotifier(a.feed.notify)
	return a
}

func (a *API) Register(r *gin.RouterGroup) {
	r.POST("/api/requests", a.rememberRequest)
	r.POST("/api/captures", a.ingestCapture)
	r.GET("/api/tabs/:tab/items", a.listItems)
	r.DELETE("/api/tabs/:tab", a.dropTab)
	r.POST("/api/command", a.buildCommand)
	r.GET("/api/feed", a.feedHandler)
	r.GET("/api/download", a.downloadHandler)
}
