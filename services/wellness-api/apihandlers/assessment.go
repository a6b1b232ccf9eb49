package apihandlers

import (
	"log/slog"
	"net/http"
	"time"

	mw "github.com/kenzieke/sleepwell-backend/pkg/apihelpers/middlewares"
	jwthandling "github.com/kenzieke/sleepwell-backend/pkg/jwt-handling"
	"github.com/kenzieke/sleepwell-backend/pkg/scoring"
	wellnessTypes "github.com/kenzieke/sleepwell-backend/pkg/types/wellness"
	"github.com/gin-gonic/gin"
)

func (h *HttpEndpoints) AddAssessmentAPI(rg *gin.RouterGroup) {
	assessmentGroup := rg.Group("/assessment")
	assessmentGroup.Use(mw.GetAndValidateWellnessUserJWT(h.tokenSignKey))
	{
		assessmentGroup.POST("", mw.RequirePayload(), h.submitAssessment)
		assessmentGroup.GET("/scores", h.getAssessmentScores)
	}
}

// submitAssessment scores the baseline assessment and persists the result.
// The assessment is write-once: a second submission is rejected instead of
// overwriting the baseline the weekly trend is measured against.
func (h *HttpEndpoints) submitAssessment(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.WellnessUserClaims)

	user, err := h.wellnessDBConn.GetUser(token.InstanceID, token.Subject)
	if err != nil {
		slog.Error("user not found", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user not found"})
		return
	}

	if user.Wellness.CompletedAssessment {
		c.JSON(http.StatusConflict, gin.H{"error": "assessment already completed"})
		return
	}

	var resp wellnessTypes.AssessmentResponse
	if err := c.ShouldBindJSON(&resp); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp.UserID = token.Subject
	resp.SubmittedAt = time.Now().Unix()

	result := scoring.ScoreAssessment(resp, time.Now())

	if err := h.wellnessDBConn.SaveScoreResult(token.InstanceID, result); err != nil {
		slog.Error("failed to save score result", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save scores"})
		return
	}

	// A weight that cannot be parsed just leaves the BMI trend unscored.
	initialWeightKg, err := scoring.WeightKg(resp.Weight.Value, resp.Weight.Unit)
	if err != nil {
		initialWeightKg = 0
	}

	if err := h.wellnessDBConn.MarkAssessmentCompleted(token.InstanceID, token.Subject, initialWeightKg); err != nil {
		slog.Error("failed to mark assessment completed", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}

	slog.Info("assessment scored", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject))

	c.JSON(http.StatusCreated, gin.H{
		"scores":     result,
		"categories": scoring.CategoryDetails(result),
	})
}

func (h *HttpEndpoints) getAssessmentScores(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.WellnessUserClaims)

	result, err := h.wellnessDBConn.GetScoreResult(token.InstanceID, token.Subject)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no scores found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scores":     result,
		"categories": scoring.CategoryDetails(result),
	})
}
