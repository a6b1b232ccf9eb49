package apihandlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	mw "github.com/kenzieke/sleepwell-backend/pkg/apihelpers/middlewares"
	jwthandling "github.com/kenzieke/sleepwell-backend/pkg/jwt-handling"
	"github.com/kenzieke/sleepwell-backend/pkg/user-management/pwhash"
	umTypes "github.com/kenzieke/sleepwell-backend/pkg/user-management/types"
	"github.com/kenzieke/sleepwell-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const minPasswordLength = 8

func (h *HttpEndpoints) AddWellnessAuthAPI(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", mw.RequirePayload(), h.loginWithEmail)
		authGroup.POST("/signup", mw.RequirePayload(), h.signupWithEmail)
	}
}

type LoginWithEmailReq struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	InstanceID string `json:"instanceId"`
}

func sanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (h *HttpEndpoints) loginWithEmail(c *gin.Context) {
	var req LoginWithEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email == "" || req.Password == "" || req.InstanceID == "" {
		slog.Error("missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	if !utils.IsURLSafe(req.InstanceID) || !h.isInstanceAllowed(req.InstanceID) {
		slog.Error("instance not allowed", slog.String("instanceID", req.InstanceID))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid instance id"})
		return
	}

	req.Email = sanitizeEmail(req.Email)

	user, err := h.wellnessDBConn.GetUserByAccountID(req.InstanceID, req.Email)
	if err != nil {
		slog.Warn("login attempt with wrong email address", slog.String("email", req.Email), slog.String("instanceID", req.InstanceID), slog.String("error", err.Error()))
		randomWait(5, 10)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	match, err := pwhash.ComparePasswordWithHash(user.Account.Password, req.Password)
	if err != nil || !match {
		slog.Warn("login attempt with wrong password", slog.String("email", req.Email), slog.String("instanceID", req.InstanceID))
		if err := h.wellnessDBConn.AddFailedLoginAttempt(req.InstanceID, user.ID.Hex()); err != nil {
			slog.Error("failed to save failed login attempt", slog.String("error", err.Error()))
		}
		randomWait(5, 10)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, err := jwthandling.GenerateNewWellnessUserToken(
		h.tokenExpiresIn,
		user.ID.Hex(),
		req.InstanceID,
		uuid.NewString(),
		h.tokenSignKey,
	)
	if err != nil {
		slog.Error("failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if err := h.wellnessDBConn.UpdateLoginTime(req.InstanceID, user.ID.Hex()); err != nil {
		slog.Error("failed to update login time", slog.String("error", err.Error()))
	}

	user.Account.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": h.tokenExpiresIn.Seconds(),
		"user":      user,
	})
}

type SignupWithEmailReq struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	InstanceID        string `json:"instanceId"`
	PreferredLanguage string `json:"preferredLanguage"`
}

func (h *HttpEndpoints) signupWithEmail(c *gin.Context) {
	var req SignupWithEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsURLSafe(req.InstanceID) || !h.isInstanceAllowed(req.InstanceID) {
		slog.Error("instance not allowed", slog.String("instanceID", req.InstanceID))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid instance id"})
		return
	}

	req.Email = sanitizeEmail(req.Email)
	if !strings.Contains(req.Email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email address"})
		return
	}
	if len(req.Password) < minPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password too weak"})
		return
	}

	if _, err := h.wellnessDBConn.GetUserByAccountID(req.InstanceID, req.Email); err == nil {
		slog.Warn("signup attempt with existing email", slog.String("email", req.Email), slog.String("instanceID", req.InstanceID))
		randomWait(5, 10)
		c.JSON(http.StatusConflict, gin.H{"error": "account already exists"})
		return
	}

	hashedPassword, err := pwhash.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	now := time.Now().Unix()
	user := umTypes.User{
		Account: umTypes.Account{
			Type:              umTypes.ACCOUNT_TYPE_EMAIL,
			AccountID:         req.Email,
			Password:          hashedPassword,
			PreferredLanguage: req.PreferredLanguage,
		},
		Timestamps: umTypes.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	user, err = h.wellnessDBConn.CreateUser(req.InstanceID, user)
	if err != nil {
		slog.Error("failed to create user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	token, err := jwthandling.GenerateNewWellnessUserToken(
		h.tokenExpiresIn,
		user.ID.Hex(),
		req.InstanceID,
		uuid.NewString(),
		h.tokenSignKey,
	)
	if err != nil {
		slog.Error("failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("new user created", slog.String("instanceID", req.InstanceID), slog.String("userID", user.ID.Hex()))

	user.Account.Password = ""
	c.JSON(http.StatusCreated, gin.H{
		"token":     token,
		"expiresIn": h.tokenExpiresIn.Seconds(),
		"user":      user,
	})
}
