package controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/Darkphantom323/LifePulse/services"
	"github.com/Darkphantom323/LifePulse/utils"

	"github.com/gin-gonic/gin"
)

const maxProfilePictureSize = 5 << 20 // 5MB

func GetProfile(c *gin.Context) {
	email := c.MustGet("email").(string)

	user, err := services.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pictureURL, err := utils.PresignViewURL(user.ProfilePicture)
	if err != nil {
		// profile is still useful without the picture link
		pictureURL = ""
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                user.ID,
		"name":              user.Name,
		"email":             user.Email,
		"bio":               user.Bio,
		"streak":            user.Streak,
		"lastLoginDate":     user.LastLoginDate,
		"profilePictureUrl": pictureURL,
	})
}

func UpdateProfile(c *gin.Context) {
	email := c.MustGet("email").(string)

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateUserProfile(email, input)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"bio":    user.Bio,
		"streak": user.Streak,
	})
}

// UpdateStreak advances the consecutive-login-day counter for today and
// returns the new value.
func UpdateStreak(c *gin.Context) {
	email := c.MustGet("email").(string)

	user, err := services.UpdateStreak(email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"streak":        user.Streak,
		"lastLoginDate": user.LastLoginDate,
	})
}

func UploadProfilePicture(c *gin.Context) {
	email := c.MustGet("email").(string)
	userID := c.GetUint("userID")

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	if header.Size > maxProfilePictureSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file size must be less than 5MB"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !utils.AllowedImageType(contentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file must be a JPEG, PNG, GIF or WebP image"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxProfilePictureSize+1))
	if err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	if len(data) > maxProfilePictureSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file size must be less than 5MB"})
		return
	}

	labels, err := utils.ModerateImage(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "moderation check failed"})
		return
	}
	if len(labels) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "image rejected by content moderation",
			"labels": labels,
		})
		return
	}

	user, err := services.GetUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	key, err := utils.UploadProfilePicture(data, contentType, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	// the previous picture is unreferenced once the new key is saved
	if !strings.HasPrefix(user.ProfilePicture, "http") {
		utils.DeleteProfilePicture(user.ProfilePicture)
	}

	updated, err := services.UpdateUserProfile(email, services.ProfileInput{ProfilePicture: &key})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	viewURL, _ := utils.PresignViewURL(updated.ProfilePicture)
	c.JSON(http.StatusOK, gin.H{"profilePictureUrl": viewURL})
}

func DeleteProfilePicture(c *gin.Context) {
	email := c.MustGet("email").(string)

	user, err := services.GetUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	if !strings.HasPrefix(user.ProfilePicture, "http") {
		utils.DeleteProfilePicture(user.ProfilePicture)
	}

	empty := ""
	if _, err := services.UpdateUserProfile(email, services.ProfileInput{ProfilePicture: &empty}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile picture deleted"})
}

// GetUploadURL hands out a short-lived presigned PUT URL so the client can
// upload directly to S3.
func GetUploadURL(c *gin.Context) {
	fileName := c.Query("fileName")
	contentType := c.Query("contentType")
	if fileName == "" || contentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fileName and contentType are required"})
		return
	}

	uploadURL, err := utils.PresignUploadURL(fileName, contentType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"uploadUrl": uploadURL})
}
