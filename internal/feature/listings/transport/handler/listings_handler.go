// Package handler provides the HTTP handlers for the listings feature.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"classifieds_backend/internal/feature/listings/admission"
	"classifieds_backend/internal/feature/listings/domain/entity"
	"classifieds_backend/internal/feature/listings/transport/http/dto"
	"classifieds_backend/internal/feature/listings/usecase"
	"classifieds_backend/internal/platform/session"
)

const (
	msgMissingFields = "Please fill in the type and description."
	msgTooLarge      = "Image must be smaller than 1 MB."
	msgTypeTooLong   = "Type can be at most 50 characters."
	msgDescTooLong   = "Description can be at most 500 characters."
)

// ListingsUsecase defines the listing lifecycle operations the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ListingsUsecase interface {
	// Create stores the image and inserts the listing row.
	Create(ctx context.Context, ownerID uint, category, ctype, description, imageName string, image io.Reader) (uint, error)
	// ListByCategory retrieves the listings for a public category page.
	ListByCategory(ctx context.Context, category string) ([]entity.Listing, error)
	// ListByOwner retrieves the user's own listings, newest first.
	ListByOwner(ctx context.Context, ownerID uint) ([]entity.Listing, error)
	// UpdateCategory moves the owner's listing to another category.
	UpdateCategory(ctx context.Context, id, ownerID uint, value string) error
	// UpdateType replaces the type label of the owner's listing.
	UpdateType(ctx context.Context, id, ownerID uint, value string) error
	// UpdateDescription replaces the description of the owner's listing.
	UpdateDescription(ctx context.Context, id, ownerID uint, value string) error
	// Delete removes the image and then the row, fail-open on the file phase.
	Delete(ctx context.Context, id, ownerID uint, imageFilename string) (usecase.DeleteOutcome, error)
}

// ListingsHandler handles the category browse pages, the upload form and the
// listing management routes.
type ListingsHandler struct {
	listings ListingsUsecase
}

// NewListingsHandler creates a new instance of ListingsHandler.
func NewListingsHandler(listings ListingsUsecase) *ListingsHandler {
	return &ListingsHandler{listings: listings}
}

// Category returns the GET handler for one public category page.
func (h *ListingsHandler) Category(category string) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.listings.ListByCategory(c.Request.Context(), category)
		if err != nil {
			slog.Error("category listing failed", "category", category, "error", err)
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
			return
		}
		c.HTML(http.StatusOK, "category.html", gin.H{"Category": category, "Listings": items})
	}
}

// ShowUploads handles GET /uploads: the upload form plus the user's own
// listings.
func (h *ListingsHandler) ShowUploads(c *gin.Context) {
	h.renderOwnerPage(c, "uploads.html", http.StatusOK, "")
}

// CreateListing handles POST /uploads.
// The request body is capped at the admission size ceiling before the
// multipart form is parsed; the file must then pass the extension and
// content-type allow-list before anything is written.
func (h *ListingsHandler) CreateListing(c *gin.Context) {
	user, _ := session.Principal(c)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, admission.MaxImageBytes)

	var form dto.UploadForm
	if err := c.ShouldBind(&form); err != nil {
		// MaxBytesReader cutting the body off surfaces as MaxBytesError;
		// any other bind failure is a malformed form, not an oversized one.
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.renderOwnerPage(c, "uploads.html", http.StatusOK, msgTooLarge)
			return
		}
		h.renderOwnerPage(c, "uploads.html", http.StatusOK, msgMissingFields)
		return
	}
	fileHeader, err := c.FormFile("imageUpload")
	if err != nil {
		h.renderOwnerPage(c, "uploads.html", http.StatusOK, msgMissingFields)
		return
	}
	if err := admission.Validate(fileHeader.Filename, fileHeader.Header.Get("Content-Type")); err != nil {
		h.renderOwnerPage(c, "uploads.html", http.StatusOK, err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.Error("failed to open uploaded file", "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
		return
	}
	defer file.Close()

	_, err = h.listings.Create(c.Request.Context(), user.ID,
		form.Category, form.CategoryType, form.CategoryDescription, fileHeader.Filename, file)
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, "/uploads")
	case errors.Is(err, usecase.ErrMissingFields), errors.Is(err, usecase.ErrInvalidCategory):
		h.renderOwnerPage(c, "uploads.html", http.StatusOK, msgMissingFields)
	case errors.Is(err, usecase.ErrTypeTooLong):
		h.renderOwnerPage(c, "uploads.html", http.StatusOK, msgTypeTooLong)
	case errors.Is(err, usecase.ErrValueTooLong):
		h.renderOwnerPage(c, "uploads.html", http.StatusOK, msgDescTooLong)
	default:
		slog.Error("listing creation failed", "owner_id", user.ID, "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
	}
}

// ShowContents handles GET /contents: the management view of the user's
// listings with the per-field edit forms.
func (h *ListingsHandler) ShowContents(c *gin.Context) {
	h.renderOwnerPage(c, "contents.html", http.StatusOK, "")
}

// DeleteListing handles POST /contents.
// A listing whose image cannot be removed keeps its row; from the client's
// side that delete looks like a no-op rather than an error.
func (h *ListingsHandler) DeleteListing(c *gin.Context) {
	user, _ := session.Principal(c)

	var form dto.DeleteForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/contents")
		return
	}

	outcome, err := h.listings.Delete(c.Request.Context(), form.ID, user.ID, form.Image)
	if err != nil && !errors.Is(err, usecase.ErrListingNotFound) {
		slog.Error("listing delete failed", "listing_id", form.ID, "owner_id", user.ID, "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
		return
	}
	if outcome == usecase.DeleteFileKeptRowKept {
		slog.Info("listing delete skipped, image not removed", "listing_id", form.ID, "owner_id", user.ID)
	}
	c.Redirect(http.StatusFound, "/contents")
}

// UpdateCategory handles POST /updateCateg/:id.
func (h *ListingsHandler) UpdateCategory(c *gin.Context) {
	var form dto.UpdateCategoryForm
	_ = c.ShouldBind(&form)
	h.update(c, form.Value, msgMissingFields, h.listings.UpdateCategory)
}

// UpdateType handles POST /updateCategType/:id.
func (h *ListingsHandler) UpdateType(c *gin.Context) {
	var form dto.UpdateTypeForm
	_ = c.ShouldBind(&form)
	h.update(c, form.Value, msgTypeTooLong, h.listings.UpdateType)
}

// UpdateDescription handles POST /updateCategDescription/:id.
func (h *ListingsHandler) UpdateDescription(c *gin.Context) {
	var form dto.UpdateDescriptionForm
	_ = c.ShouldBind(&form)
	h.update(c, form.Value, msgDescTooLong, h.listings.UpdateDescription)
}

// update runs one field-scoped update and maps its outcome to a response.
// Cap violations re-render the management page with the field's message and
// leave the stored value untouched.
func (h *ListingsHandler) update(c *gin.Context, value, tooLongMsg string, op func(ctx context.Context, id, ownerID uint, value string) error) {
	user, _ := session.Principal(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/contents")
		return
	}

	err = op(c.Request.Context(), uint(id), user.ID, value)
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, "/contents")
	case errors.Is(err, usecase.ErrValueTooLong), errors.Is(err, usecase.ErrInvalidCategory):
		h.renderOwnerPage(c, "contents.html", http.StatusOK, tooLongMsg)
	case errors.Is(err, usecase.ErrListingNotFound):
		c.Redirect(http.StatusFound, "/contents")
	default:
		slog.Error("listing update failed", "listing_id", id, "owner_id", user.ID, "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
	}
}

// renderOwnerPage renders an authenticated listings page with the user's own
// listings and an optional form message.
func (h *ListingsHandler) renderOwnerPage(c *gin.Context, template string, status int, errMsg string) {
	user, _ := session.Principal(c)

	items, err := h.listings.ListByOwner(c.Request.Context(), user.ID)
	if err != nil {
		slog.Error("owner listing failed", "owner_id", user.ID, "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
		return
	}
	data := gin.H{
		"User":       user.Email,
		"UserID":     user.ID,
		"Listings":   items,
		"Categories": entity.Categories,
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}
	c.HTML(status, template, data)
}
