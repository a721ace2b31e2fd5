package handler

import (
	"net/http"
	"time"

	"farm-service/internal/middleware"
	"farm-service/internal/model"
	"farm-service/pkg/database"
	"farm-service/pkg/jwtutil"
	"farm-service/pkg/logger"
	"farm-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new user account with its farm profile
func Register(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RegisterCounter.Inc()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
		FarmName string `json:"farm_name"`
		Location string `json:"location"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse registration request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.Email == "" || req.Password == "" {
		prometheus.RecordAuthError("incomplete_registration")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	// Check if user already exists
	defer prometheus.TrackDBOperation("query")(time.Now())
	var existingUser model.User
	result := database.GetDB().Where("email = ?", req.Email).First(&existingUser)
	if result.Error == nil {
		log.Warn("User already exists", zap.String("email", req.Email))
		prometheus.RecordAuthError("email_already_exists")
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		prometheus.RecordAuthError("password_hash_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	user := model.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		FarmName: req.FarmName,
		Location: req.Location,
		Role:     model.RoleFarmer,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&user); result.Error != nil {
		log.Error("Failed to create user", zap.Error(result.Error))
		prometheus.RecordAuthError("user_creation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	log.Info("User registered", zap.String("email", user.Email))
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login verifies credentials and issues a JWT token
func Login(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.LoginCounter.Inc()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var user model.User
	result := database.GetDB().Where("email = ?", req.Email).First(&user)
	if result.Error != nil {
		log.Warn("User not found", zap.String("email", req.Email))
		prometheus.RecordAuthError("user_not_found")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Warn("Invalid password", zap.String("email", req.Email))
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := jwtutil.GenerateToken(user.Email, user.ID, user.Role)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	log.Info("User logged in", zap.String("email", user.Email))
	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  user,
	})
}

// GetProfile returns the authenticated user's profile
func GetProfile(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)

	var user model.User
	if result := database.GetDB().First(&user, userID); result.Error != nil {
		log.Error("User not found", zap.Uint("user_id", userID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}

	return c.JSON(http.StatusOK, user)
}

// UpdateProfile updates the authenticated user's farm profile fields
func UpdateProfile(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)

	var req struct {
		FullName  *string `json:"full_name"`
		Phone     *string `json:"phone"`
		FarmName  *string `json:"farm_name"`
		Location  *string `json:"location"`
		AvatarURL *string `json:"avatar_url"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse profile update", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	var user model.User
	if result := database.GetDB().First(&user, userID); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.FarmName != nil {
		updates["farm_name"] = *req.FarmName
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}

	if len(updates) > 0 {
		defer prometheus.TrackDBOperation("update")(time.Now())
		if err := database.GetDB().Model(&user).Updates(updates).Error; err != nil {
			log.Error("Failed to update profile", zap.Uint("user_id", userID), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update profile"})
		}
	}

	log.Info("Profile updated", zap.Uint("user_id", userID))
	return c.JSON(http.StatusOK, user)
}

// ChangePassword verifies the current password and sets a new one
func ChangePassword(c echo.Context) error {
	log := logger.FromEcho(c)
	userID := middleware.UserID(c)

	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "new password is required"})
	}

	var user model.User
	if result := database.GetDB().First(&user, userID); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		log.Warn("Password change with wrong current password", zap.Uint("user_id", userID))
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "current password is incorrect"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to change password"})
	}

	if err := database.GetDB().Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		log.Error("Failed to change password", zap.Uint("user_id", userID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to change password"})
	}

	log.Info("Password changed", zap.Uint("user_id", userID))
	return c.JSON(http.StatusOK, echo.Map{"message": "password changed successfully"})
}
