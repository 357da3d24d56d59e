package controllers

import (
	"mime/multipart"

	"github.com/sanjanathakeri/courseappone/database"
	"github.com/sanjanathakeri/courseappone/middleware"
	"github.com/sanjanathakeri/courseappone/models"
	"github.com/sanjanathakeri/courseappone/storage"

	"github.com/gofiber/fiber/v2"
)

// uploadCourseImage opens the validated file header and stores it with
// the image host
func uploadCourseImage(image *multipart.FileHeader) (*storage.UploadResult, error) {
	src, err := image.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return ImageStore.UploadImage(src, image.Filename)
}

// CreateCourse creates a new course owned by the requesting admin
func CreateCourse(c *fiber.Ctx) error {
	adminID, ok := c.Locals("adminId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string `form:"title" json:"title" validate:"required,min=3"`
		Description string `form:"description" json:"description" validate:"required,min=5"`
		Price       int64  `form:"price" json:"price" validate:"required,gt=0"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	image, ok := c.Locals("courseImage").(*multipart.FileHeader)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "No file uploaded")
	}

	uploaded, err := uploadCourseImage(image)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Error uploading image")
	}

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
		ImageID:     uploaded.PublicID,
		ImageURL:    uploaded.URL,
		CreatorID:   adminID,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error creating course")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Course created successfully",
		"course":  course,
	})
}

// UpdateCourse updates a course. Only the creating admin may update it;
// a caller who is not the creator gets an explicit Forbidden error rather
// than a not-found.
func UpdateCourse(c *fiber.Ctx) error {
	adminID, ok := c.Locals("adminId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	if course.CreatorID != adminID {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Course was created by another admin")
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title       string `form:"title" json:"title" validate:"omitempty,min=3"`
		Description string `form:"description" json:"description" validate:"omitempty,min=5"`
		Price       *int64 `form:"price" json:"price" validate:"omitempty,gt=0"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	// Replace the image only when a new file was uploaded
	if image, ok := c.Locals("courseImage").(*multipart.FileHeader); ok {
		uploaded, err := uploadCourseImage(image)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Error uploading image")
		}
		course.ImageID = uploaded.PublicID
		course.ImageURL = uploaded.URL
	}

	// Update only provided fields
	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error in course updating")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Course updated successfully",
		"course":  course,
	})
}

// DeleteCourse soft deletes a course owned by the requesting admin
func DeleteCourse(c *fiber.Ctx) error {
	adminID, ok := c.Locals("adminId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	if course.CreatorID != adminID {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Course was created by another admin")
	}

	course.IsDeleted = true
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error in course deleting")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Course deleted successfully",
	})
}

// GetAllCourses lists every listed course, no auth required
func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error in getting courses")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"courses": courses,
	})
}

// GetCourseDetails returns a single course, no auth required
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"course": course,
	})
}
