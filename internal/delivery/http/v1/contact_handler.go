package v1

import (
	"net/http"

	"user-directory/internal/delivery/http/response"
	"user-directory/internal/domain"
	"user-directory/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact form routes
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.GET("/contact/form", handler.GetForm)
	public.POST("/contact", handler.SubmitContact)
}

// GetForm godoc
// @Summary      Get Contact Form
// @Description  Returns the initial state of the contact form: empty values, field validation state and submitted=false.
// @Tags         contact
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ContactFormState}
// @Router       /contact/form [get]
func (h *ContactHandler) GetForm(c *gin.Context) {
	response.Success(c, http.StatusOK, "Contact form", h.contactUC.NewForm())
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates the contact form and creates the user when every field is valid.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactForm  true  "Contact Form Data"
// @Success      201      {object}  response.Response{data=domain.ContactSubmission}
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response{error=domain.ContactFormState}
// @Failure      502      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	sub, err := h.contactUC.SubmitContact(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	if sub.User == nil {
		c.Error(apperror.Unprocessable("Please correct the highlighted fields.", sub.Form))
		return
	}

	response.Success(c, http.StatusCreated, "User created successfully", sub)
}
