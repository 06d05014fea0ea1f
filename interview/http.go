package interview

import (
	"sort"
	"strings"

	"github.com/Abraxas-365/interviewer/pkg/errx"
	"github.com/Abraxas-365/interviewer/pkg/logx"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler maps service errors to HTTP responses. Wire it as the fiber
// app's global error handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	logx.WithFields(logx.Fields{
		"path":       c.Path(),
		"method":     c.Method(),
		"request_id": c.Get("X-Request-ID"),
	}).Errorf("Request error: %v", err)

	if e, ok := err.(*errx.Error); ok {
		return c.Status(e.HTTPStatus).JSON(fiber.Map{
			"error":  e.Message,
			"code":   e.Code,
			"status": e.HTTPStatus,
		})
	}

	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal Server Error",
	})
}

// RegisterRoutes mounts the interview endpoints on the app
func RegisterRoutes(app *fiber.App, svc *Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		health := fiber.Map{"status": "healthy"}
		if err := svc.Health(c.Context()); err != nil {
			health["status"] = "degraded"
			health["error"] = err.Error()
		}
		return c.JSON(health)
	})

	app.Post("/start_interview", func(c *fiber.Ctx) error {
		var req StartInterviewRequest
		if err := c.BodyParser(&req); err != nil {
			return NewInvalidRequestError()
		}
		if err := requireFields(map[string]string{
			"user_id": req.UserID,
			"role":    req.Role,
		}); err != nil {
			return err
		}

		interview, err := svc.StartInterview(c.Context(), req.UserID, req.Role)
		if err != nil {
			return err
		}

		return c.JSON(StartInterviewResponse{
			Message:     "Interview started",
			Role:        interview.Role,
			InterviewID: string(interview.ID),
		})
	})

	app.Post("/ask_question", func(c *fiber.Ctx) error {
		var req AskQuestionRequest
		if err := c.BodyParser(&req); err != nil {
			return NewInvalidRequestError()
		}
		if err := requireFields(map[string]string{"user_id": req.UserID}); err != nil {
			return err
		}

		question, err := svc.AskQuestion(c.Context(), req.UserID)
		if err != nil {
			return err
		}

		return c.JSON(AskQuestionResponse{Question: question})
	})

	app.Post("/submit_answer", func(c *fiber.Ctx) error {
		var req SubmitAnswerRequest
		if err := c.BodyParser(&req); err != nil {
			return NewInvalidRequestError()
		}
		if err := requireFields(map[string]string{
			"user_id": req.UserID,
			"answer":  req.Answer,
		}); err != nil {
			return err
		}

		feedback, err := svc.SubmitAnswer(c.Context(), req.UserID, req.Answer)
		if err != nil {
			return err
		}

		return c.JSON(SubmitAnswerResponse{Feedback: feedback})
	})

	app.Post("/end_interview", func(c *fiber.Ctx) error {
		var req EndInterviewRequest
		if err := c.BodyParser(&req); err != nil {
			return NewInvalidRequestError()
		}
		if err := requireFields(map[string]string{"user_id": req.UserID}); err != nil {
			return err
		}

		if err := svc.EndInterview(c.Context(), req.UserID); err != nil {
			return err
		}

		return c.JSON(EndInterviewResponse{Message: "Interview ended"})
	})
}

// requireFields rejects the request when any named field is empty
func requireFields(fields map[string]string) error {
	missing := make([]string, 0, len(fields))
	for name, value := range fields {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	// Deterministic message regardless of map iteration order
	sort.Strings(missing)
	return NewMissingFieldError("Missing " + strings.Join(missing, " or "))
}
