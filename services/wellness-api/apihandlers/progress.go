package apihandlers

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	mw "github.com/kenzieke/sleepwell-backend/pkg/apihelpers/middlewares"
	jwthandling "github.com/kenzieke/sleepwell-backend/pkg/jwt-handling"
	"github.com/gin-gonic/gin"
)

func (h *HttpEndpoints) AddProgressAPI(rg *gin.RouterGroup) {
	progressGroup := rg.Group("/progress")
	progressGroup.Use(mw.GetAndValidateWellnessUserJWT(h.tokenSignKey))
	{
		progressGroup.GET("/weekly-summary", h.getWeeklySummary)
		progressGroup.GET("/weekly-summary/watch", h.watchWeeklySummary)
	}
}

func (h *HttpEndpoints) getWeeklySummary(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.WellnessUserClaims)

	summary, err := h.aggregator.WeeklySummary(token.InstanceID, token.Subject)
	if err != nil {
		slog.Error("failed to compute weekly summary", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// watchWeeklySummary streams the weekly summary as server-sent events. The
// current summary is sent immediately, then re-sent whenever one of the
// user's tracker or lesson documents changes. Changes arriving while a
// recompute is in flight collapse into a single refresh.
func (h *HttpEndpoints) watchWeeklySummary(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.WellnessUserClaims)

	changes := make(chan struct{}, 1)
	unsubscribe, err := h.wellnessDBConn.WatchUserData(c.Request.Context(), token.InstanceID, token.Subject, func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	if err != nil {
		slog.Error("failed to open change stream", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to subscribe"})
		return
	}
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	sendSummary := func() bool {
		summary, err := h.aggregator.WeeklySummary(token.InstanceID, token.Subject)
		if err != nil {
			slog.Error("failed to compute weekly summary", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("error", err.Error()))
			return false
		}
		c.SSEvent("summary", summary)
		c.Writer.Flush()
		return true
	}

	if !sendSummary() {
		return
	}

	keepAlive := time.NewTicker(30 * time.Second)
	defer keepAlive.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case <-changes:
			return sendSummary()
		case <-keepAlive.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		}
	})
}
