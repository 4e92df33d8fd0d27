package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ai-mock-interview/internal/models"
	"alfredoptarigan/ai-mock-interview/internal/services"
)

type InterviewHandler struct {
	interviewService      services.InterviewService
	jobDescriptionService services.JobDescriptionService
}

func NewInterviewHandler(
	interviewService services.InterviewService,
	jobDescriptionService services.JobDescriptionService,
) *InterviewHandler {
	return &InterviewHandler{
		interviewService:      interviewService,
		jobDescriptionService: jobDescriptionService,
	}
}

// HandleGenerateQuestions handles POST /api/interview/generate-questions
func (h *InterviewHandler) HandleGenerateQuestions(c *fiber.Ctx) error {
	var req models.InterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
			"code":  fiber.StatusBadRequest,
		})
	}

	resp, err := h.interviewService.GenerateQuestions(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}

// HandleGenerateQuestionsFromPDF handles POST /api/interview/generate-questions/upload.
// The job description comes from the "jobDescription" PDF field.
func (h *InterviewHandler) HandleGenerateQuestionsFromPDF(c *fiber.Ctx) error {
	req := models.InterviewRequest{
		InterviewType: models.InterviewType(c.FormValue("interviewType")),
	}

	if level := strings.TrimSpace(c.FormValue("difficultyLevel")); level != "" {
		n, err := strconv.Atoi(level)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "difficultyLevel must be a number",
				"code":  fiber.StatusBadRequest,
			})
		}
		req.DifficultyLevel = &n
	}

	// fail fast before touching the file
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	file, err := c.FormFile("jobDescription")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "jobDescription PDF file is required",
			"code":  fiber.StatusBadRequest,
		})
	}

	text, err := h.jobDescriptionService.ExtractFromUpload(file)
	if err != nil {
		return respondError(c, err)
	}
	req.JobDescription = text

	resp, err := h.interviewService.GenerateQuestions(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}

// HandleEvaluateAnswer handles POST /api/interview/evaluate-answer
func (h *InterviewHandler) HandleEvaluateAnswer(c *fiber.Ctx) error {
	var req models.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
			"code":  fiber.StatusBadRequest,
		})
	}

	resp, err := h.interviewService.EvaluateAnswer(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}
