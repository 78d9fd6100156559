// internal/storage/media.go
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"go_5_care_plan/internal/config"
	"go_5_care_plan/internal/middleware"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// MediaStore はセッション音声・関連書類・お手本動画を永続化するオブジェクトストアの
// 境界です。返り値は公開URLで、プランにはURLのみを保持します。
type MediaStore interface {
	UploadAudio(ctx context.Context, childID uuid.UUID, data []byte, mimeType string) (string, error)
	UploadDocument(ctx context.Context, childID uuid.UUID, data []byte, filename string) (string, error)
	UploadVideo(ctx context.Context, childID uuid.UUID, data []byte, mimeType string) (string, error)
}

// s3MediaStore は AWS S3 (またはS3互換ストレージ) への実装です
type s3MediaStore struct {
	client *s3.Client
	cfg    *config.Config
}

func NewS3MediaStore(ctx context.Context, cfg *config.Config) (MediaStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Media.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for media store: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		// MinIO等のS3互換ストレージを使う場合のみエンドポイントを上書き
		if cfg.Media.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Media.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3MediaStore{client: client, cfg: cfg}, nil
}

func (s *s3MediaStore) UploadAudio(ctx context.Context, childID uuid.UUID, data []byte, mimeType string) (string, error) {
	key := fmt.Sprintf("sessions/%s/%d%s", childID, time.Now().UnixMilli(), extensionForMIME(mimeType))
	return s.put(ctx, key, data, mimeType)
}

func (s *s3MediaStore) UploadDocument(ctx context.Context, childID uuid.UUID, data []byte, filename string) (string, error) {
	sanitized := strings.ReplaceAll(strings.TrimSpace(filename), " ", "_")
	key := fmt.Sprintf("documents/%s/%d_%s", childID, time.Now().UnixMilli(), sanitized)
	return s.put(ctx, key, data, "application/octet-stream")
}

func (s *s3MediaStore) UploadVideo(ctx context.Context, childID uuid.UUID, data []byte, mimeType string) (string, error) {
	key := fmt.Sprintf("videos/%s/%d%s", childID, time.Now().UnixMilli(), extensionForMIME(mimeType))
	return s.put(ctx, key, data, mimeType)
}

func (s *s3MediaStore) put(ctx context.Context, key string, data []byte, mimeType string) (string, error) {
	logger := middleware.GetLogger(ctx)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Media.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		logger.Error("Failed to upload object to media store", "key", key, "error", err)
		return "", fmt.Errorf("failed to upload media object: %w", err)
	}

	url := strings.TrimRight(s.cfg.Media.PublicBaseURL, "/") + "/" + key
	logger.Info("Media object uploaded", "key", key, "bytes", len(data))
	return url, nil
}

func extensionForMIME(mimeType string) string {
	switch mimeType {
	case "audio/mpeg", "audio/mp3":
		return ".mp3"
	case "audio/wav", "audio/x-wav":
		return ".wav"
	case "audio/mp4", "audio/m4a":
		return ".m4a"
	case "audio/webm":
		return ".webm"
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	default:
		return ""
	}
}
