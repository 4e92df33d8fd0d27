package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(
	app *fiber.App,
	authHandler *AuthHandler,
	testHandler *TestHandler,
	interviewHandler *InterviewHandler,
) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Mock Test API is running",
		})
	})

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})
	api.Get("/test", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "API is working",
		})
	})

	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.HandleSignup)
	auth.Post("/login", authHandler.HandleLogin)
	auth.Get("/me", authHandler.HandleMe)

	api.Post("/generate-test", testHandler.HandleGenerateTest)
	api.Post("/submit-answers", testHandler.HandleSubmitAnswers)

	interview := api.Group("/interview")
	interview.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	interview.Post("/generate-questions", interviewHandler.HandleGenerateQuestions)
	interview.Post("/generate-questions/upload", interviewHandler.HandleGenerateQuestionsFromPDF)
	interview.Post("/evaluate-answer", interviewHandler.HandleEvaluateAnswer)
}
