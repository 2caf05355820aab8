package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"linkdeck/internal/domain/social"
	sharedConfig "linkdeck/internal/shared/config"
	"linkdeck/internal/shared/logger"
	"linkdeck/internal/shared/utils"
)

const (
	// downloadTimeout bounds the source image download.
	downloadTimeout = 30 * time.Second
	// maxImageSize is the largest profile picture we re-host (10MB).
	maxImageSize = 10 << 20

	profilePictureName = "profile_picture"
)

// S3MediaStore re-hosts externally hosted profile pictures in an
// S3-compatible bucket and removes them when accounts are disconnected.
type S3MediaStore struct {
	s3Client   *s3.S3
	uploader   *s3manager.Uploader
	httpClient *http.Client
	bucket     string
	logger     logger.Interface
}

func NewS3MediaStore(cfg sharedConfig.StorageConfig, logger logger.Interface) (*S3MediaStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is not configured")
	}

	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}
	if cfg.ForcePathStyle {
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	if cfg.AccessKeyID != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}

	s3Client := s3.New(sess)

	return &S3MediaStore{
		s3Client: s3Client,
		uploader: s3manager.NewUploaderWithClient(s3Client),
		httpClient: &http.Client{
			Timeout: downloadTimeout,
		},
		bucket: cfg.Bucket,
		logger: logger,
	}, nil
}

// ProfilePicturePath returns the deterministic object key for a profile
// picture. Re-linking the same account always produces the same key, so
// re-uploads overwrite rather than accumulate.
func ProfilePicturePath(userID uint, provider social.Provider, accountID, ext string) string {
	return fmt.Sprintf("%d/%s/%s/%s.%s", userID, providerSegment(provider), accountID, profilePictureName, ext)
}

// AccountMediaPrefix returns the object key prefix holding all media for a
// linked account.
func AccountMediaPrefix(userID uint, provider social.Provider, accountID string) string {
	return fmt.Sprintf("%d/%s/%s/", userID, providerSegment(provider), accountID)
}

func providerSegment(provider social.Provider) string {
	switch provider {
	case social.ProviderYoutube:
		return "youtubeChannel"
	default:
		return "instagramAccount"
	}
}

// RehostProfilePicture downloads the image at sourceURL and uploads it to the
// deterministic per-user, per-account key, returning the stored object path.
func (s *S3MediaStore) RehostProfilePicture(ctx context.Context, sourceURL string, userID uint, provider social.Provider, accountID string) (string, error) {
	data, contentType, err := s.download(ctx, sourceURL)
	if err != nil {
		return "", fmt.Errorf("failed to download profile picture: %w", err)
	}

	key := ProfilePicturePath(userID, provider, accountID, extensionForContentType(contentType))

	_, err = s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload profile picture: %w", err)
	}

	s.logger.Debugw("profile picture re-hosted",
		"key", key,
		"content_type", contentType,
		"bytes", len(data),
	)

	return key, nil
}

// DeleteAccountMedia removes every stored object under the account's media
// prefix. Deleting a prefix with no objects is a no-op.
func (s *S3MediaStore) DeleteAccountMedia(ctx context.Context, userID uint, provider social.Provider, accountID string) error {
	prefix := AccountMediaPrefix(userID, provider, accountID)

	listOutput, err := s.s3Client.ListObjectsV2WithContext(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	if err != nil {
		return fmt.Errorf("failed to list account media: %w", err)
	}

	if len(listOutput.Contents) == 0 {
		return nil
	}

	objects := make([]*s3.ObjectIdentifier, 0, len(listOutput.Contents))
	for _, object := range listOutput.Contents {
		objects = append(objects, &s3.ObjectIdentifier{Key: object.Key})
	}

	_, err = s.s3Client.DeleteObjectsWithContext(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucket),
		Delete: &s3.Delete{
			Objects: objects,
			Quiet:   aws.Bool(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete account media: %w", err)
	}

	s.logger.Debugw("account media deleted",
		"prefix", prefix,
		"objects", len(objects),
	)

	return nil
}

func (s *S3MediaStore) download(ctx context.Context, sourceURL string) ([]byte, string, error) {
	if err := utils.ValidateRemoteMediaURL(sourceURL); err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read body: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty response body")
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}

	return data, contentType, nil
}

// extensionForContentType maps an image MIME type to the file extension used
// in the stored object key.
func extensionForContentType(contentType string) string {
	switch strings.ToLower(contentType) {
	case "image/jpeg", "image/jpg":
		return "jpeg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	default:
		return "bin"
	}
}
