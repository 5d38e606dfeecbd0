package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"course_content_service/internal/media/domain"
	"course_content_service/pkg/database"
	errprocess "course_content_service/pkg/err"
	"course_content_service/pkg/logger"
)

// MediaUseCase uploads course assets into object storage and queues
// their promotion to the public prefix.
type MediaUseCase interface {
	UploadAsset(ctx context.Context, up domain.UploadAssetReq) (*domain.UploadAssetRes, error)
	AssetURL(ctx context.Context, objectName string) (string, error)
}

type mediaUseCase struct {
	minioClient database.MinIOClientRepo
	rabbit      database.RabbitRepo
}

// NewMediaUseCase create a MediaUseCase
func NewMediaUseCase(minIO database.MinIOClientRepo, rabbit database.RabbitRepo) MediaUseCase {
	return &mediaUseCase{
		minioClient: minIO,
		rabbit:      rabbit,
	}
}

// wrapper functions so tests can stub the filesystem
var (
	createDir = func(path string) error {
		return os.MkdirAll(path, 0755)
	}

	createFile = func(name string) (*os.File, error) {
		return os.Create(name)
	}

	copyFile = func(dst *os.File, src io.Reader) (written int64, err error) {
		return io.Copy(dst, src)
	}

	removeFile = func(name string) error {
		return os.Remove(name)
	}
)

// UploadAsset spools the upload to a temp file, stores it under the
// staging prefix and publishes a promotion job. The temp file is only
// removed after the staging upload succeeded so a failed attempt can
// be retried from disk.
func (m *mediaUseCase) UploadAsset(ctx context.Context, up domain.UploadAssetReq) (*domain.UploadAssetRes, error) {
	if up.FileName == "" {
		return nil, errprocess.Validation("file name is required")
	}
	if strings.Contains(up.FileName, "/") {
		return nil, errprocess.Validation("file name cannot contain a path")
	}
	if up.Kind != domain.AssetThumbnail && up.Kind != domain.AssetVideo {
		return nil, errprocess.Validation("unknown asset kind")
	}

	tmpDir := "./tmp"
	if err := createDir(tmpDir); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("fileName[%s] create temp dir: %v", up.FileName, err))
	}

	tempPath := filepath.Join(tmpDir, up.FileName)
	tempFile, err := createFile(tempPath)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("fileName[%s] create temp file: %v", up.FileName, err))
	}
	defer tempFile.Close()

	if _, err := copyFile(tempFile, up.File); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("fileName[%s] spool upload: %v", up.FileName, err))
	}

	assetID := uuid.New().String()
	stagingObject := fmt.Sprintf("%s/%s/%s/%s", domain.StagingPrefix, up.Kind, assetID, up.FileName)
	publicObject := fmt.Sprintf("%s/%s/%s/%s", domain.PublicPrefix, up.Kind, assetID, up.FileName)

	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := m.minioClient.UploadFile(ctx, stagingObject, tempPath, contentType); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("fileName[%s] staging upload: %v", up.FileName, err))
	}

	job := domain.PublishJob{
		StagingObject: stagingObject,
		PublicObject:  publicObject,
		Kind:          up.Kind,
	}
	data, err := json.Marshal(job)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("fileName[%s] marshal publish job: %v", up.FileName, err))
	}
	err = m.rabbit.Publish(
		"",
		domain.QueueName,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        data,
		},
	)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("fileName[%s] publish job: %v", up.FileName, err))
	}

	// the upload and the job are already committed, a leftover temp
	// file must not fail the request
	if err := removeFile(tempPath); err != nil {
		logger.Log.Warn("temp file not removed",
			zap.String("path", tempPath),
			zap.Error(err))
	}

	url, err := m.minioClient.PresignGetURL(ctx, stagingObject, 15*time.Minute)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("fileName[%s] presign staging url: %v", up.FileName, err))
	}

	return &domain.UploadAssetRes{
		ObjectName: publicObject,
		URL:        url,
		Message:    "upload accepted, waiting for publish",
	}, nil
}

// AssetURL returns a short-lived presigned link for a stored object.
func (m *mediaUseCase) AssetURL(ctx context.Context, objectName string) (string, error) {
	if objectName == "" {
		return "", errprocess.Validation("object name is required")
	}
	url, err := m.minioClient.PresignGetURL(ctx, objectName, time.Hour)
	if err != nil {
		return "", errprocess.Set(fmt.Sprintf("object[%s] presign url: %v", objectName, err))
	}
	return url, nil
}
