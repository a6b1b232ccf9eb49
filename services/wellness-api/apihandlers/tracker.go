package apihandlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/kenzieke/sleepwell-backend/pkg/apihelpers"
	mw "github.com/kenzieke/sleepwell-backend/pkg/apihelpers/middlewares"
	jwthandling "github.com/kenzieke/sleepwell-backend/pkg/jwt-handling"
	wellnessTypes "github.com/kenzieke/sleepwell-backend/pkg/types/wellness"
	"github.com/gin-gonic/gin"
)

func (h *HttpEndpoints) AddTrackerAPI(rg *gin.RouterGroup) {
	trackerGroup := rg.Group("/tracker")
	trackerGroup.Use(mw.GetAndValidateWellnessUserJWT(h.tokenSignKey))
	{
		trackerGroup.PUT("/health/:date", mw.RequirePayload(), h.upsertHealthEntry)
		trackerGroup.GET("/health", h.getHealthEntriesHistory)
		trackerGroup.PUT("/sleep/:date", mw.RequirePayload(), h.upsertSleepEntry)
	}
}

// parseEntryDate normalizes the :date path param. time.Parse accepts e.g.
// "2024-6-1", so the parsed value is formatted back to keep stored dates
// zero-padded and lexically ordered.
func parseEntryDate(c *gin.Context) (string, bool) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
		return "", false
	}
	return date.Format("2006-01-02"), true
}

func (h *HttpEndpoints) upsertHealthEntry(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.WellnessUserClaims)

	date, ok := parseEntryDate(c)
	if !ok {
		return
	}

	var entry wellnessTypes.DailyHealthEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry.UserID = token.Subject
	entry.Date = date
	entry.UpdatedAt = time.Now().Unix()

	if err := h.wellnessDBConn.UpsertHealthEntry(token.InstanceID, entry); err != nil {
		slog.Error("failed to save health entry", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

func (h *HttpEndpoints) getHealthEntriesHistory(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.WellnessUserClaims)

	query, err := apihelpers.ParsePaginatedQueryFromCtx(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, paginationInfo, err := h.wellnessDBConn.GetHealthEntriesHistory(token.InstanceID, token.Subject, query.Page, query.Limit)
	if err != nil {
		slog.Error("failed to fetch health entries", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries":    entries,
		"pagination": paginationInfo,
	})
}

func (h *HttpEndpoints) upsertSleepEntry(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.WellnessUserClaims)

	date, ok := parseEntryDate(c)
	if !ok {
		return
	}

	var entry wellnessTypes.SleepEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if entry.MinutesAsleep < 0 || entry.MinutesToFallAsleep < 0 || entry.MinutesAwakeAtNight < 0 || entry.TimesWokenUp < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sleep durations cannot be negative"})
		return
	}
	entry.UserID = token.Subject
	entry.Date = date
	entry.UpdatedAt = time.Now().Unix()

	if err := h.wellnessDBConn.UpsertSleepEntry(token.InstanceID, entry); err != nil {
		slog.Error("failed to save sleep entry", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}
