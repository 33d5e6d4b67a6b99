package main

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sendsculpt/sendsculpt-go/pkg/errx"
	"github.com/sendsculpt/sendsculpt-go/pkg/logx"
)

var stubErrors = errx.NewRegistry("STUBAPI")

var (
	ErrUnauthorized    = stubErrors.Register("UNAUTHORIZED", errx.TypeAuthorization, 401, "Invalid or missing API key")
	ErrInvalidPayload  = stubErrors.Register("INVALID_PAYLOAD", errx.TypeValidation, 422, "Invalid email payload")
	ErrMessageNotFound = stubErrors.Register("MESSAGE_NOT_FOUND", errx.TypeNotFound, 404, "Message not found")
)

// problemsKey holds the []string rendered as the response's "detail" list.
const problemsKey = "problems"

func invalidPayload(problems ...string) *errx.Error {
	return stubErrors.New(ErrInvalidPayload).WithDetail(problemsKey, problems)
}

// globalErrorHandler renders errors the way the SendSculpt API does:
// {"detail": [...]} with the matching status code.
func globalErrorHandler(c *fiber.Ctx, err error) error {
	requestID, _ := c.Locals("requestid").(string)
	entry := logx.WithFields(logx.Fields{
		"path":       c.Path(),
		"method":     c.Method(),
		"request_id": requestID,
	})

	var fe *fiber.Error
	if errors.As(err, &fe) {
		entry.Warnf("Request error: %v", err)
		return c.Status(fe.Code).JSON(fiber.Map{"detail": []string{fe.Message}})
	}

	if e, ok := errx.As(err); ok {
		entry.WithField("code", e.Code).Warnf("Request error: %v", err)

		detail := []string{e.Message}
		if problems, ok := e.Details[problemsKey].([]string); ok && len(problems) > 0 {
			detail = problems
		}
		return c.Status(e.HTTPStatus).JSON(fiber.Map{
			"detail":     detail,
			"code":       e.Code,
			"request_id": requestID,
		})
	}

	entry.Errorf("Unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"detail": "Internal Server Error",
	})
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"detail": []string{"Route not found: " + c.Method() + " " + c.Path()},
	})
}
