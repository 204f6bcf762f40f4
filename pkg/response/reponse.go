package response

import (
	"github.com/gofiber/fiber/v2"
)

type ResponseMessageModel struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ResponseErrorModel struct {
	Code         int         `json:"code"`
	ErrorMessage interface{} `json:"errorMessage"`
}

// ResponseOKWithData writes the payload as the whole body. List and detail
// payloads are part of the client contract and are not wrapped.
func ResponseOKWithData(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func ResponseCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func ResponseMessage(c *fiber.Ctx, message string, code int) error {
	response := ResponseMessageModel{
		Code:    code,
		Message: message,
	}

	return c.Status(code).JSON(response)
}

func ResponseNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// ResponseError accepts a message string or a field-to-messages map.
func ResponseError(c *fiber.Ctx, err interface{}, code int) error {
	response := ResponseErrorModel{
		Code:         code,
		ErrorMessage: err,
	}

	return c.Status(code).JSON(response)
}
