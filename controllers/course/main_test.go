package controllers_test

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/sanjanathakeri/courseappone/config"
	controllers "github.com/sanjanathakeri/courseappone/controllers/course"
	"github.com/sanjanathakeri/courseappone/database"
	"github.com/sanjanathakeri/courseappone/middleware"
	"github.com/sanjanathakeri/courseappone/models"
	"github.com/sanjanathakeri/courseappone/payment"
	"github.com/sanjanathakeri/courseappone/routers/courseRoutes"
	"github.com/sanjanathakeri/courseappone/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubGateway struct {
	calls int
	fail  bool
}

func (s *stubGateway) CreateIntent(amount int64, currency string) (*payment.Intent, error) {
	s.calls++
	if s.fail {
		return nil, fmt.Errorf("payment provider unavailable")
	}
	return &payment.Intent{
		ID:           "pi_test_123",
		ClientSecret: "pi_test_123_secret",
		Raw:          []byte(`{"id":"pi_test_123","client_secret":"pi_test_123_secret"}`),
	}, nil
}

type stubUploader struct {
	calls int
	fail  bool
}

func (s *stubUploader) UploadImage(file io.Reader, filename string) (*storage.UploadResult, error) {
	s.calls++
	if s.fail {
		return nil, fmt.Errorf("image host unavailable")
	}
	return &storage.UploadResult{
		PublicID: "img_test_123",
		URL:      "https://images.test/img_test_123.png",
	}, nil
}

// setupTestApp builds the full route stack against an in-memory database
// with stubbed external clients
func setupTestApp(t *testing.T) (*fiber.App, *stubGateway, *stubUploader) {
	t.Helper()

	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Course{}, &models.Purchase{}))
	database.Database = database.DbInstance{Db: db}

	gateway := &stubGateway{}
	uploader := &stubUploader{}
	controllers.PaymentGateway = gateway
	controllers.ImageStore = uploader

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)

	return app, gateway, uploader
}

func adminToken(t *testing.T, adminID uint) string {
	t.Helper()
	token, err := middleware.GenerateJWT(adminID, "Test Admin", "ADMIN", "admin@test.in")
	require.NoError(t, err)
	return token
}

func userToken(t *testing.T, userID uint) string {
	t.Helper()
	token, err := middleware.GenerateJWT(userID, "Test User", "USER", "user@test.in")
	require.NoError(t, err)
	return token
}

func seedCourse(t *testing.T, creatorID uint, price int64) models.Course {
	t.Helper()
	course := models.Course{
		Title:       "Intro to Trading",
		Description: "A beginner friendly trading course",
		Price:       price,
		ImageID:     "seed_img",
		ImageURL:    "https://images.test/seed_img.png",
		CreatorID:   creatorID,
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

// multipartForm assembles a multipart body with optional image file part
func multipartForm(t *testing.T, fields map[string]string, fileField, filename, contentType string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if fileField != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, filename))
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("not-a-real-image"))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}
