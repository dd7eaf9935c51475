package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"time"
	"yafrican/config"

	"github.com/go-resty/resty/v2"
)

// UploadPaymentProof stores a payment proof image and returns its public URL.
// When Cloudinary is configured the image goes there; otherwise it is written
// to the local upload directory.
func UploadPaymentProof(file *multipart.FileHeader, orderNumber string) (string, error) {
	if config.AppConfig.CloudinaryCloudName != "" {
		return uploadToCloudinary(file, orderNumber)
	}
	return saveUploadedFile(file, filepath.Join(config.AppConfig.UploadDir, "payment-proofs"))
}

// uploadToCloudinary pushes the image to the Cloudinary upload API using a
// signed request and returns the hosted secure URL
func uploadToCloudinary(file *multipart.FileHeader, orderNumber string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	cfg := config.AppConfig
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	folder := "yafrican/payment-proofs"
	publicID := fmt.Sprintf("payment_%s_%s", orderNumber, timestamp)

	// Signature covers the alphabetically ordered upload params plus the secret
	toSign := fmt.Sprintf("folder=%s&public_id=%s&timestamp=%s%s", folder, publicID, timestamp, cfg.CloudinaryApiSecret)
	digest := sha1.Sum([]byte(toSign))
	signature := hex.EncodeToString(digest[:])

	uploadURL := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cfg.CloudinaryCloudName)

	client := resty.New()
	resp, err := client.R().
		SetFileReader("file", file.Filename, src).
		SetFormData(map[string]string{
			"api_key":   cfg.CloudinaryApiKey,
			"timestamp": timestamp,
			"folder":    folder,
			"public_id": publicID,
			"signature": signature,
		}).
		Post(uploadURL)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("cloudinary upload failed, code: %d", resp.StatusCode())
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", err
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary response missing secure_url")
	}

	return result.SecureURL, nil
}

// saveUploadedFile writes the upload to local disk and returns a serving path
func saveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".png"
	}
	newFilename := time.Now().Format("20060102150405") + ext
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/payment-proofs/" + newFilename, nil
}
