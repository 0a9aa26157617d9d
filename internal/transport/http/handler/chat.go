package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"odontobot/internal/app"
	"odontobot/internal/transport/http/response"
)

type ChatHandler struct {
	sessionService *app.SessionService
	answerService  *app.AnswerService
	faqService     *app.FAQService
}

func NewChatHandler(sessionService *app.SessionService, answerService *app.AnswerService, faqService *app.FAQService) *ChatHandler {
	return &ChatHandler{
		sessionService: sessionService,
		answerService:  answerService,
		faqService:     faqService,
	}
}

// NewSession opens an anonymous chat session. An optional document_id
// query parameter scopes retrieval to one document.
func (h *ChatHandler) NewSession(c *gin.Context) {
	var documentID *uint
	if s := c.Query("document_id"); s != "" {
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil || u == 0 {
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid document id")
			return
		}
		id := uint(u)
		documentID = &id
	}

	session, err := h.sessionService.Create(documentID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrDocumentNotFound):
			response.Error(c, http.StatusNotFound, response.CodeDocumentNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "create session failed")
		}
		return
	}
	response.OK(c, session)
}

type AskRequest struct {
	SessionToken string `json:"session_token" binding:"required"`
	Question     string `json:"question" binding:"required"`
}

// Ask runs the retrieval pipeline. A refusal (question not answerable
// from the corpus) comes back with the same shape as a normal answer.
func (h *ChatHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	result, err := h.answerService.Ask(c.Request.Context(), app.AskInput{
		SessionToken: req.SessionToken,
		Question:     req.Question,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrSessionNotFound):
			response.Error(c, http.StatusNotFound, response.CodeSessionNotFound, err.Error())
		case errors.Is(err, app.ErrMessageEnqueue):
			response.Error(c, http.StatusServiceUnavailable, response.CodeInternalServer, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "ask failed")
		}
		return
	}
	response.OK(c, result)
}

func (h *ChatHandler) GetHistory(c *gin.Context) {
	token := c.Param("token")
	limit := 0
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	messages, err := h.answerService.History(c.Request.Context(), token, limit)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrSessionNotFound):
			response.Error(c, http.StatusNotFound, response.CodeSessionNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "get history failed")
		}
		return
	}
	response.OK(c, messages)
}

func (h *ChatHandler) ListDetections(c *gin.Context) {
	hits, err := h.faqService.ListDetections(c.Param("token"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrSessionNotFound):
			response.Error(c, http.StatusNotFound, response.CodeSessionNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list detections failed")
		}
		return
	}
	response.OK(c, hits)
}
