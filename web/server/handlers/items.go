package handlers

import (
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"github.com/mediasniff/mediasniff/pkg/media"
)

type itemView struct {
	media.Item
	SizeText    string `json:"sizeText,omitempty"`
	CapturedAgo string `json:"capturedAgo"`
}

func (a *API) listItems(c *gin.Context) {
	tabID, err := strconv.Atoi(c.Param("tab"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tab id"})
		return
	}

	var items []media.Item
	switch c.Query("kind") {
	case "stream":
		items = a.orch.Store().ItemsOfKind(tabID, media.KindStream)
	case "subtitle":
		items = a.orch.Store().ItemsOfKind(tabID, media.KindSubtitle)
	default:
		items = a.orch.Store().Items(tabID)
	}
	views := make([]itemView, len(items))
	for i, item := range items {
		views[i] = itemView{
			Item:        item,
			CapturedAgo: humanize.Time(item.Timestamp),
		}
		if item.Size > 0 {
			views[i].SizeText = humanize.Bytes(uint64(item.Size))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"tab":       tabID,
		"readiness": a.orch.Readiness().State(tabID).String(),
		"count":     len(views),
		"items":     views,
	})
}

func (a *API) dropTab(c *gin.Context) {
	tabID, err := strconv.Atoi(c.Param("tab"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tab id"})
		return
	}

	a.orch.DropTab(tabID)
	c.JSON(http.StatusOK, gin.H{"tab": tabID, "dropped": true})
}
