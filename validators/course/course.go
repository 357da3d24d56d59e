package courseValidator

import (
	"strconv"
	"strings"

	"github.com/sanjanathakeri/courseappone/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// allowedImageFormats is the content-type allow-list for course images
var allowedImageFormats = []string{"image/png", "image/jpeg"}

func isAllowedImageFormat(contentType string) bool {
	for _, format := range allowedImageFormats {
		if contentType == format {
			return true
		}
	}
	return false
}

// fieldErrors converts validator.v10 failures into per-field messages
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, verr := range verrs {
			field := strings.ToLower(verr.Field())
			switch verr.Tag() {
			case "required":
				errors[field] = "All fields are required"
			case "min":
				errors[field] = "Must be at least " + verr.Param() + " characters long!"
			case "gt":
				errors[field] = "Must be a positive number!"
			default:
				errors[field] = "Invalid value!"
			}
		}
	}
	return errors
}

// CreateCourse validates the multipart course creation request, including
// the image file's declared content type. The type check runs here so a
// disallowed file is rejected before any upload call is made.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `form:"title" json:"title" validate:"required,min=3"`
			Description string `form:"description" json:"description" validate:"required,min=5"`
			Price       int64  `form:"price" json:"price" validate:"required,gt=0"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		image, err := c.FormFile("image")
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "No file uploaded")
		}

		if !isAllowedImageFormat(image.Header.Get("Content-Type")) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Only PNG and JPG are allowed")
		}

		c.Locals("validatedCourse", reqData)
		c.Locals("courseImage", image)
		return c.Next()
	}
}

// UpdateCourse validates the course update request. All fields are
// optional; a replacement image may be supplied in the imageUrl field.
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `form:"title" json:"title" validate:"omitempty,min=3"`
			Description string `form:"description" json:"description" validate:"omitempty,min=5"`
			Price       *int64 `form:"price" json:"price" validate:"omitempty,gt=0"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		// Replacement image is optional on update
		if image, err := c.FormFile("imageUrl"); err == nil {
			if !isAllowedImageFormat(image.Header.Get("Content-Type")) {
				return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid file format. Only PNG and JPG are allowed")
			}
			c.Locals("courseImage", image)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CourseID validates the :courseId path parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("courseId"))
		if courseIDStr == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Course ID is required!")
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID!")
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// PurchaseList validates optional pagination query params
func PurchaseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query params!")
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPurchaseList", reqData)
		return c.Next()
	}
}
