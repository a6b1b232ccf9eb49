package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	mw "github.com/kenzieke/sleepwell-backend/pkg/apihelpers/middlewares"
	jwthandling "github.com/kenzieke/sleepwell-backend/pkg/jwt-handling"
	"github.com/kenzieke/sleepwell-backend/pkg/progress"
	wellnessTypes "github.com/kenzieke/sleepwell-backend/pkg/types/wellness"
	"github.com/gin-gonic/gin"
)

func (h *HttpEndpoints) AddLessonsAPI(rg *gin.RouterGroup) {
	lessonsGroup := rg.Group("/lessons")
	lessonsGroup.Use(mw.GetAndValidateWellnessUserJWT(h.tokenSignKey))
	{
		lessonsGroup.GET("", h.getLessons)
		lessonsGroup.POST("/:week/complete", h.completeLesson)
	}
}

type LessonInfo struct {
	Week   int    `json:"week"`
	Status string `json:"status"`
}

// getLessons lists all program weeks with their per-user status. Weeks up to
// the current program week are due until marked complete, later weeks stay
// locked as not due.
func (h *HttpEndpoints) getLessons(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.WellnessUserClaims)

	user, err := h.wellnessDBConn.GetUser(token.InstanceID, token.Subject)
	if err != nil {
		slog.Error("user not found", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user not found"})
		return
	}

	lessonProgress, err := h.wellnessDBConn.GetLessonProgress(token.InstanceID, token.Subject)
	if err != nil && !errors.Is(err, wellnessTypes.ErrNotFound) {
		slog.Error("failed to fetch lesson progress", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch lessons"})
		return
	}

	now := time.Now()
	createdAt := time.Unix(user.Timestamps.CreatedAt, 0)
	currentWeek := progress.CurrentWeekNumber(createdAt, now)

	lessons := make([]LessonInfo, 0, wellnessTypes.PROGRAM_LENGTH_WEEKS)
	for week := 1; week <= wellnessTypes.PROGRAM_LENGTH_WEEKS; week++ {
		status := wellnessTypes.MODULE_STATUS_NOT_DUE
		if lessonProgress.IsLessonComplete(week) {
			status = wellnessTypes.MODULE_STATUS_COMPLETED
		} else if week <= currentWeek {
			status = wellnessTypes.MODULE_STATUS_DUE
		}
		lessons = append(lessons, LessonInfo{Week: week, Status: status})
	}

	c.JSON(http.StatusOK, gin.H{
		"currentWeek":     currentWeek,
		"programComplete": progress.ProgramComplete(createdAt, now),
		"lessons":         lessons,
	})
}

func (h *HttpEndpoints) completeLesson(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.WellnessUserClaims)

	week, err := strconv.Atoi(c.Param("week"))
	if err != nil || week < 1 || week > wellnessTypes.PROGRAM_LENGTH_WEEKS {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be between 1 and 12"})
		return
	}

	if err := h.wellnessDBConn.MarkLessonComplete(token.InstanceID, token.Subject, week); err != nil {
		slog.Error("failed to mark lesson complete", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update lesson"})
		return
	}

	slog.Info("lesson completed", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.Int("week", week))

	c.JSON(http.StatusOK, gin.H{"week": week, "status": wellnessTypes.MODULE_STATUS_COMPLETED})
}
