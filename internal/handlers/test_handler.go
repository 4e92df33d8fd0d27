package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ai-mock-interview/internal/models"
	"alfredoptarigan/ai-mock-interview/internal/services"
)

type TestHandler struct {
	testService services.TestService
}

func NewTestHandler(testService services.TestService) *TestHandler {
	return &TestHandler{
		testService: testService,
	}
}

// HandleGenerateTest handles POST /api/generate-test
func (h *TestHandler) HandleGenerateTest(c *fiber.Ctx) error {
	var params models.TestParams
	if err := c.BodyParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
			"code":  fiber.StatusBadRequest,
		})
	}

	questions, err := h.testService.GenerateTest(c.UserContext(), params)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.TestResponse{Questions: questions})
}

// HandleSubmitAnswers handles POST /api/submit-answers
func (h *TestHandler) HandleSubmitAnswers(c *fiber.Ctx) error {
	var submission models.AnswerSubmission
	if err := c.BodyParser(&submission); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
			"code":  fiber.StatusBadRequest,
		})
	}

	result, err := h.testService.SubmitAnswers(c.UserContext(), submission)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}
