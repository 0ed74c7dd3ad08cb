package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/probuild/bidding-api/internal/dto"
	apierrors "github.com/probuild/bidding-api/internal/errors"
	"github.com/probuild/bidding-api/internal/middleware"
	"github.com/probuild/bidding-api/internal/services"
	"github.com/probuild/bidding-api/internal/utils"
	"github.com/sirupsen/logrus"
)

const maxImageSize = 2 * 1024 * 1024

// AccountHandler serves the profile routes for any authenticated actor.
type AccountHandler struct {
	authService    *services.AuthService
	accountService *services.AccountService
	uploadDir      string
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(authService *services.AuthService, accountService *services.AccountService, uploadDir string) *AccountHandler {
	return &AccountHandler{
		authService:    authService,
		accountService: accountService,
		uploadDir:      uploadDir,
	}
}

// GetAccount returns the current actor's profile.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateAccount updates username, email and optionally the profile image.
// The request is multipart form data; the image field is optional. The old
// image file is removed once the new reference has been committed.
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	username := c.PostForm("username")
	email := c.PostForm("email")

	imageFile := ""
	file, err := c.FormFile("image")
	if err == nil {
		if file.Size > maxImageSize {
			apierrors.BadRequest(c, "image max size is 2MB")
			return
		}

		filename, err := utils.GenerateImageFilename(file.Filename)
		if err != nil {
			apierrors.BadRequest(c, "image must be jpg, jpeg or png")
			return
		}

		if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
			apierrors.InternalError(c, "Failed to store image")
			return
		}

		if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, filename)); err != nil {
			apierrors.InternalError(c, "Failed to store image")
			return
		}

		imageFile = filename
	}

	user, previousImage, err := h.accountService.UpdateProfile(userID, services.UpdateProfileInput{
		Username:  username,
		Email:     email,
		ImageFile: imageFile,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken),
			errors.Is(err, services.ErrEmailTaken):
			apierrors.Conflict(c, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to update profile")
		}
		return
	}

	// The DB update is committed; a failed removal only leaks a file.
	if previousImage != "" {
		if err := os.Remove(filepath.Join(h.uploadDir, previousImage)); err != nil && !os.IsNotExist(err) {
			logrus.WithError(err).WithField("image", previousImage).Warn("failed to remove replaced profile image")
		}
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}
