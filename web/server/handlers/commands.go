package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mediasniff/mediasniff/internal/fileutil"
	"github.com/mediasniff/mediasniff/pkg/command"
	"github.com/mediasniff/mediasniff/pkg/media"
)

type commandRequest struct {
	Player       string   `json:"player"`
	Tab          int      `json:"tab"`
	URL          string   `json:"url"`
	SubtitleURLs []string `json:"subtitleUrls"`
	OutputFormat string   `json:"outputFormat"`
	Title        string   `json:"title"`
}

// buildCommand formats a shell-ready command for a captured stream. The
// stream and its subtitles must already be in the tab's collection; the
// builders reuse their captured request headers.
func (a *API) buildCommand(c *gin.Context) {
	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stream, ok := a.orch.Store().Get(req.Tab, media.KindStream, req.URL)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "stream not captured"})
		return
	}

	var subtitles []media.Item
	for _, u := range req.SubtitleURLs {
		if sub, ok := a.orch.Store().Get(req.Tab, media.KindSubtitle, u); ok {
			subtitles = append(subtitles, sub)
		}
	}

	title := req.Title
	if title == "" {
		title = stream.Name
	}

	var cmd string
	switch req.Player {
	case "mpv":
		cmd = command.Mpv(stream, subtitles)
	case "ffmpeg":
		format := req.OutputFormat
		if format == "" {
			format = "mkv"
		}
		cmd = command.Ffmpeg(stream, subtitles, format, title)
	case "curl":
		var name string
		if req.Title != "" {
			ext := stream.Format
			if ext == "" {
				ext = "mp4"
			}
			name = fileutil.OutputName(req.Title, ext)
		}
		cmd = command.Curl(stream, name)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown player: " + req.Player})
		return
	}

	c.JSON(http.StatusOK, gin.H{"command": cmd})
}
