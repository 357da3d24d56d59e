package controllers

import (
	"errors"
	"log"

	"github.com/sanjanathakeri/courseappone/database"
	"github.com/sanjanathakeri/courseappone/middleware"
	"github.com/sanjanathakeri/courseappone/models"
	"github.com/sanjanathakeri/courseappone/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BuyCourse initiates a course purchase for the authenticated user. The
// pending purchase row is inserted before the payment intent is created;
// the composite unique index on (user_id, course_id) makes the duplicate
// check safe against concurrent initiations. The row is rolled back if
// the payment provider call fails.
func BuyCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	purchase := models.Purchase{
		UserID:   userID,
		CourseID: uint(courseID),
		Status:   models.PurchaseStatusPending,
		Amount:   course.Price,
		Currency: "usd",
	}

	tx := database.Database.Db.Begin()

	if err := tx.Create(&purchase).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "User has already purchased this course")
		}
		log.Printf("Error creating purchase record: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error in course buying")
	}

	intent, err := PaymentGateway.CreateIntent(course.Price, "usd")
	if err != nil {
		tx.Rollback()
		log.Printf("Error creating payment intent: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error in course buying")
	}

	purchase.PaymentIntentID = intent.ID
	purchase.PaymentResponseRaw = datatypes.JSON(intent.Raw)
	if err := tx.Save(&purchase).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving purchase record: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error in course buying")
	}

	tx.Commit()

	// Best effort receipt mail, never blocks the response
	if email, ok := c.Locals("email").(string); ok && email != "" {
		go utils.SendPurchaseInitiatedEmail(email, course.Title, course.Price)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, fiber.Map{
		"message":      "Course purchase initiated",
		"course":       course,
		"clientSecret": intent.ClientSecret,
	})
}

// GetUserPurchases lists the caller's purchases with their courses
func GetUserPurchases(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	reqData, ok := c.Locals("validatedPurchaseList").(*struct {
		Page  *int `query:"page"`
		Limit *int `query:"limit"`
	})

	page := 1
	limit := 10
	if ok && reqData.Page != nil {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Purchase{}).Where("user_id = ?", userID)

	var total int64
	db.Count(&total)

	var purchases []models.Purchase
	if err := db.Preload("Course").Offset(offset).Limit(limit).Order("created_at desc").Find(&purchases).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error in getting purchases")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"purchases": purchases,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
