package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mediasniff/mediasniff/pkg/capture"
)

type rememberRequestBody struct {
	RequestID string            `json:"requestId"`
	Headers   map[string]string `json:"headers"`
}

// rememberRequest stores request headers ahead of the response, so the
// capture can replay them later. Responds with the request id to use when
// reporting the response.
func (a *API) rememberRequest(c *gin.Context) {
	var body rememberRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := a.orch.RememberRequest(body.RequestID, body.Headers)
	c.JSON(http.StatusOK, gin.H{"requestId": id})
}

// ingestCapture accepts one observed response. Classification is cheap but
// enrichment fetches playlists, so the whole pipeline runs off the request
// goroutine and the helper gets an immediate 202.
func (a *API) ingestCapture(c *gin.Context) {
	var resp capture.Response
	if err := c.ShouldBindJSON(&resp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	go func() {
		if _, err := a.orch.Capture(context.Background(), resp); err != nil {
			log.Println("capture failed:", resp.URL, err)
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}
