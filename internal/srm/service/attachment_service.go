package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/repository"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// AttachmentService 评估附件服务（检验报告、质量通知单等，存MinIO）
type AttachmentService struct {
	evalRepo    *repository.EvaluationRepository
	minioClient *minio.Client
	bucketName  string
}

func NewAttachmentService(evalRepo *repository.EvaluationRepository, minioClient *minio.Client, bucketName string) *AttachmentService {
	return &AttachmentService{
		evalRepo:    evalRepo,
		minioClient: minioClient,
		bucketName:  bucketName,
	}
}

// Upload 上传评估附件并追加到评估记录
func (s *AttachmentService) Upload(ctx context.Context, evaluationID, fileName, contentType string, reader io.Reader, fileSize int64) (string, error) {
	if s.minioClient == nil {
		return "", errors.New("对象存储未配置")
	}

	eval, err := s.evalRepo.FindByID(ctx, evaluationID)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("evaluations/%s/%s/%s%s",
		eval.SupplierID, time.Now().Format("2006/01/02"),
		uuid.New().String()[:8], filepath.Ext(fileName))

	_, err = s.minioClient.PutObject(ctx, s.bucketName, objectName, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload attachment: %w", err)
	}

	attachments := append(eval.Attachments, objectName)
	if err := s.evalRepo.UpdateAttachments(ctx, evaluationID, attachments); err != nil {
		return "", err
	}
	return objectName, nil
}
