package service

import (
	"github.com/drnayak/Supplier-KPI-Scorecard/internal/config"
	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/repository"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
)

// Services SRM服务集合
type Services struct {
	Supplier      *SupplierService
	Evaluation    *EvaluationService
	ScoringConfig *ScoringConfigService
	Kpi           *KpiService
	Attachment    *AttachmentService
}

// NewServices 创建SRM服务集合
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config) *Services {
	// MinIO可选：未配置时附件上传不可用，其余功能不受影响
	var minioClient *minio.Client
	if cfg.MinIO.Endpoint != "" {
		var err error
		minioClient, err = minio.New(cfg.MinIO.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
			Secure: cfg.MinIO.UseSSL,
		})
		if err != nil {
			minioClient = nil
		}
	}

	kpiSvc := NewKpiService(repos.Kpi, repos.Evaluation, repos.Supplier, rdb)

	return &Services{
		Supplier:      NewSupplierService(repos.Supplier),
		Evaluation:    NewEvaluationService(repos.Evaluation, repos.ScoringConfig, repos.Supplier, kpiSvc),
		ScoringConfig: NewScoringConfigService(repos.ScoringConfig),
		Kpi:           kpiSvc,
		Attachment:    NewAttachmentService(repos.Evaluation, minioClient, cfg.MinIO.Bucket),
	}
}
