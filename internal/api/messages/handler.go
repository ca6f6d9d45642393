package messagesapi

import (
	"log"
	"net/http"
	"strings"

	"lawfirm-backend/internal/api/respond"
	"lawfirm-backend/internal/domain/messages"
	"lawfirm-backend/internal/store"
	"lawfirm-backend/internal/validate"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Messages *store.ContactMessages
}

func NewHandler(messages *store.ContactMessages) *Handler {
	return &Handler{Messages: messages}
}

// POST /messages (public)
func (h *Handler) Create(c *gin.Context) {
	var input struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Subject   string `json:"subject"`
		LegalArea string `json:"legal_area"`
		Urgency   string `json:"urgency"`
		Message   string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid JSON input")
		return
	}

	missing := validate.Required(map[string]string{
		"name":       input.Name,
		"email":      input.Email,
		"phone":      input.Phone,
		"subject":    input.Subject,
		"legal_area": input.LegalArea,
		"urgency":    input.Urgency,
		"message":    input.Message,
	}, []string{"name", "email", "phone", "subject", "legal_area", "urgency", "message"})
	if len(missing) > 0 {
		respond.Error(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	if !validate.Email(input.Email) {
		respond.Error(c, http.StatusBadRequest, "Invalid email format")
		return
	}
	if !validate.LegalArea(input.LegalArea) {
		respond.Error(c, http.StatusBadRequest, "Invalid legal area")
		return
	}
	if !validate.Urgency(input.Urgency) {
		respond.Error(c, http.StatusBadRequest, "Invalid urgency level")
		return
	}

	m := messages.ContactMessage{
		Name:      validate.SanitizeString(input.Name),
		Email:     validate.SanitizeString(input.Email),
		Phone:     validate.SanitizeString(input.Phone),
		Subject:   validate.SanitizeString(input.Subject),
		LegalArea: input.LegalArea,
		Urgency:   input.Urgency,
		Message:   validate.SanitizeString(input.Message),
	}
	if err := h.Messages.Create(&m); err != nil {
		log.Println("create contact message:", err)
		respond.Error(c, http.StatusInternalServerError, "Failed to create contact message")
		return
	}

	respond.Success(c, nil, "Contact message created successfully")
}

// GET /messages (auth)
func (h *Handler) List(c *gin.Context) {
	rows, err := h.Messages.GetAll()
	if err != nil {
		log.Println("list contact messages:", err)
		respond.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.Success(c, rows, "Success")
}

// DELETE /messages/:id (auth)
func (h *Handler) Delete(c *gin.Context) {
	deleted, err := h.Messages.Delete(c.Param("id"))
	if err != nil {
		log.Println("delete contact message:", err)
		respond.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !deleted {
		respond.Error(c, http.StatusNotFound, "Message not found")
		return
	}
	respond.Success(c, nil, "Message deleted successfully")
}

// PUT /messages/:id/read (auth)
func (h *Handler) MarkRead(c *gin.Context) {
	marked, err := h.Messages.MarkAsRead(c.Param("id"))
	if err != nil {
		log.Println("mark contact message read:", err)
		respond.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !marked {
		respond.Error(c, http.StatusNotFound, "Message not found")
		return
	}
	respond.Success(c, nil, "Message marked as read")
}
