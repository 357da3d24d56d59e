package storage

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// UploadResult identifies an image stored with the hosting provider
type UploadResult struct {
	PublicID string
	URL      string
}

// Uploader stores course images with an external hosting service.
// Controllers depend on this interface so tests can substitute a stub.
type Uploader interface {
	UploadImage(file io.Reader, filename string) (*UploadResult, error)
}

// CloudinaryClient implements Uploader against the Cloudinary upload API
type CloudinaryClient struct {
	baseURL   string
	cloudName string
	apiKey    string
	apiSecret string
	client    *resty.Client
}

func NewCloudinaryClient(baseURL, cloudName, apiKey, apiSecret string) *CloudinaryClient {
	return &CloudinaryClient{
		baseURL:   baseURL,
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		client:    resty.New(),
	}
}

// UploadImage performs a signed upload and returns the stored image's
// public id and URL
func (cc *CloudinaryClient) UploadImage(file io.Reader, filename string) (*UploadResult, error) {
	publicID := uuid.NewString()
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	// Cloudinary signs the sorted param string followed by the API secret
	toSign := fmt.Sprintf("public_id=%s&timestamp=%s%s", publicID, timestamp, cc.apiSecret)
	digest := sha1.Sum([]byte(toSign))
	signature := hex.EncodeToString(digest[:])

	resp, err := cc.client.R().
		SetFileReader("file", filename, file).
		SetFormData(map[string]string{
			"api_key":   cc.apiKey,
			"public_id": publicID,
			"timestamp": timestamp,
			"signature": signature,
		}).
		Post(fmt.Sprintf("%s/v1_1/%s/image/upload", cc.baseURL, cc.cloudName))
	if err != nil {
		return nil, fmt.Errorf("failed to reach image host: %v", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("image host error (%d): %s", resp.StatusCode(), resp.String())
	}

	var uploadResp struct {
		PublicID  string `json:"public_id"`
		SecureURL string `json:"secure_url"`
	}
	if err := json.Unmarshal(resp.Body(), &uploadResp); err != nil {
		return nil, fmt.Errorf("failed to parse image host response: %v", err)
	}

	if uploadResp.SecureURL == "" {
		return nil, fmt.Errorf("image host returned empty URL")
	}

	return &UploadResult{
		PublicID: uploadResp.PublicID,
		URL:      uploadResp.SecureURL,
	}, nil
}
