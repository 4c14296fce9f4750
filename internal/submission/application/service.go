package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vividmgmt/vividbackend/internal/submission/domain"
	"github.com/vividmgmt/vividbackend/pkg/i18n"
	"github.com/vividmgmt/vividbackend/pkg/logger"
	"github.com/vividmgmt/vividbackend/pkg/metrics"
)

// ValidationError 校验聚合器产出的违规集合，拼成一段用户可见文案
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string { return strings.Join(e.Violations, " ") }

// WriteError 上传全部成功之后入库失败，存储层报错原样透出
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return e.Err.Error() }

func (e *WriteError) Unwrap() error { return e.Err }

// SubmissionService 报名提交管道：校验 -> 顺序上传 -> 归一化 -> 单次入库 -> 发事件
type SubmissionService struct {
	repo      domain.SubmissionRepository
	uploader  *Uploader
	validator *Validator
	publisher domain.EventPublisher
	catalog   *i18n.Catalog
	metrics   *metrics.Metrics
	topic     string
	minPhotos int
}

// NewSubmissionService 创建提交服务
func NewSubmissionService(
	repo domain.SubmissionRepository,
	uploader *Uploader,
	validator *Validator,
	publisher domain.EventPublisher,
	catalog *i18n.Catalog,
	m *metrics.Metrics,
	topic string,
	minPhotos int,
) *SubmissionService {
	return &SubmissionService{
		repo:      repo,
		uploader:  uploader,
		validator: validator,
		publisher: publisher,
		catalog:   catalog,
		metrics:   m,
		topic:     topic,
		minPhotos: minPhotos,
	}
}

// MinPhotos 校验所需最少照片数
func (s *SubmissionService) MinPhotos() int { return s.minPhotos }

// Submit 执行一次完整的提交尝试。
// 失败是可恢复的：调用方重新提交即从校验阶段重跑整个序列。
func (s *SubmissionService) Submit(ctx context.Context, loc i18n.Locale, form domain.FormState, files *domain.FileSet) (*domain.Submission, error) {
	s.metrics.SubmissionsTotal.Inc()

	if violations := s.validator.Validate(loc, form, files); len(violations) > 0 {
		s.metrics.SubmissionValidationFailures.Inc()
		return nil, &ValidationError{Violations: violations}
	}

	logger.Info(ctx, s.catalog.T(loc, i18n.KeyUploadStarting), "email", form.Email, "files", files.Count())

	batchStart := time.Now()
	urls, err := s.uploader.UploadBatch(ctx, form.Email, batchStart, files.Files(), func(current, total int) {
		s.metrics.UploadProgress.Set(float64(current))
		logger.Info(ctx, s.catalog.Tf(loc, i18n.KeyUploadProgress, current, total))
	})
	s.metrics.UploadBatchDuration.Observe(time.Since(batchStart).Seconds())
	if err != nil {
		s.metrics.UploadFailures.Inc()
		return nil, err
	}
	s.metrics.UploadsTotal.Add(float64(len(urls)))
	s.metrics.UploadsSkipped.Add(float64(skippedCount(files.Files())))

	logger.Info(ctx, s.catalog.T(loc, i18n.KeyUploadFinishing), "urls", len(urls))

	sub, err := form.Record(urls)
	if err != nil {
		s.metrics.SubmissionWriteFailures.Inc()
		return nil, &WriteError{Err: fmt.Errorf("assemble record: %w", err)}
	}

	if err := s.repo.Insert(ctx, sub); err != nil {
		s.metrics.SubmissionWriteFailures.Inc()
		return nil, &WriteError{Err: err}
	}

	// 事件发布失败不影响提交结果
	if s.publisher != nil {
		event := domain.SubmissionReceived{
			SubmissionID: sub.ID,
			Email:        sub.Email,
			ImageCount:   len(urls),
			ReceivedAt:   time.Now(),
		}
		if err := s.publisher.Publish(ctx, s.topic, sub.ID, event); err != nil {
			logger.Warn(ctx, "Failed to publish submission event", "submission_id", sub.ID, "error", err)
		}
	}

	logger.Info(ctx, "Submission stored", "submission_id", sub.ID, "images", len(urls))
	return sub, nil
}

func skippedCount(files []domain.File) int {
	n := 0
	for _, f := range files {
		if !strings.HasPrefix(f.ContentType, "image/") {
			n++
		}
	}
	return n
}
