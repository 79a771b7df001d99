package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mediasniff/mediasniff/internal/fileutil"
	"github.com/mediasniff/mediasniff/pkg/media"
)

// downloadHandler streams a captured item through the server, replaying
// the item's original request headers. Useful when the browser itself
// cannot refetch the URL (expiring tokens bound to the captured headers).
func (a *API) downloadHandler(c *gin.Context) {
	tabID, err := strconv.Atoi(c.Query("tab"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tab id"})
		return
	}

	rawURL := c.Query("url")
	kind := media.KindStream
	if c.Query("kind") == "subtitle" {
		kind = media.KindSubtitle
	}

	item, ok := a.orch.Store().Get(tabID, kind, rawURL)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not captured"})
		return
	}

	body, length, err := a.orch.Fetcher().Open(c.Request.Context(), item.URL, item.Headers)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	defer body.Close()

	title := c.Query("title")
	if title == "" {
		title = item.Name
	}
	ext := item.Format
	if ext == "" {
		ext = "mp4"
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileutil.OutputName(title, ext)))
	c.Header("Cache-Control", "no-cache")
	if length > 0 {
		c.Header("Content-Length", strconv.FormatInt(length, 10))
	}

	io.Copy(c.Writer, body)
}
