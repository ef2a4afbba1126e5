package handlers

import (
	"net/http"
	"strconv"

	"github.com/getmentor/formsdemo/internal/countries"
	"github.com/getmentor/formsdemo/internal/models"
	"github.com/getmentor/formsdemo/internal/services"
	"github.com/gin-gonic/gin"
)

// FormAPIHandler serves the live validation of the reactive form
type FormAPIHandler struct {
	service services.FormServiceInterface
}

func NewFormAPIHandler(service services.FormServiceInterface) *FormAPIHandler {
	return &FormAPIHandler{service: service}
}

// ValidateHookForm re-validates the touched fields after a change
func (h *FormAPIHandler) ValidateHookForm(c *gin.Context) {
	var req models.ReactiveValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if details := ParseValidationErrors(err); len(details) > 0 {
			respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", details, err)
			return
		}
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	c.JSON(http.StatusOK, h.service.ValidateHookForm(c.Request.Context(), &req))
}

// PictureHandler converts selected picture files into previews
type PictureHandler struct {
	service services.PictureServiceInterface
}

func NewPictureHandler(service services.PictureServiceInterface) *PictureHandler {
	return &PictureHandler{service: service}
}

// Preview reads the multipart "picture" file of a draft selection. Any
// failure leaves the client's previous preview untouched.
func (h *PictureHandler) Preview(c *gin.Context) {
	file, err := c.FormFile("picture")
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		respondError(c, status, "No picture selected", err)
		return
	}

	seq, err := strconv.ParseInt(c.PostForm("seq"), 10, 64)
	if err != nil || seq < 1 {
		respondError(c, http.StatusBadRequest, "Invalid selection sequence", err)
		return
	}

	f, err := file.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to read picture", err)
		return
	}
	defer f.Close()

	resp, err := h.service.Preview(c.Request.Context(), c.PostForm("draft"), seq, f)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			// An unreadable upload is the client's file, not a server fault
			status = http.StatusBadRequest
		}
		respondError(c, status, http.StatusText(status), err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CountriesHandler serves the country autocomplete
type CountriesHandler struct{}

func NewCountriesHandler() *CountriesHandler {
	return &CountriesHandler{}
}

// Search returns countries matching the "q" query parameter
func (h *CountriesHandler) Search(c *gin.Context) {
	limit := countries.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(c, http.StatusBadRequest, "Invalid limit", err)
			return
		}
		limit = n
	}

	c.JSON(http.StatusOK, gin.H{"countries": countries.Search(c.Query("q"), limit)})
}
