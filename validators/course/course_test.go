package courseValidator

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseIDParam(t *testing.T) {
	app := fiber.New()
	app.Get("/courses/:courseId", CourseID(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": c.Locals("courseID")})
	})

	cases := []struct {
		path       string
		wantStatus int
	}{
		{"/courses/1", fiber.StatusOK},
		{"/courses/250", fiber.StatusOK},
		{"/courses/0", fiber.StatusBadRequest},
		{"/courses/-3", fiber.StatusBadRequest},
		{"/courses/abc", fiber.StatusBadRequest},
	}

	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.path, nil))
		require.NoError(t, err)
		assert.Equal(t, tc.wantStatus, resp.StatusCode, tc.path)
	}
}

func TestIsAllowedImageFormat(t *testing.T) {
	assert.True(t, isAllowedImageFormat("image/png"))
	assert.True(t, isAllowedImageFormat("image/jpeg"))
	assert.False(t, isAllowedImageFormat("image/gif"))
	assert.False(t, isAllowedImageFormat("application/pdf"))
	assert.False(t, isAllowedImageFormat(""))
}

func TestPurchaseListPagination(t *testing.T) {
	app := fiber.New()
	app.Get("/purchases", PurchaseList(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/purchases?page=2&limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Pagination params are optional
	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/purchases", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/purchases?page=0", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
