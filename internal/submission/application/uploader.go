package application

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/vividmgmt/vividbackend/internal/submission/domain"
	"github.com/vividmgmt/vividbackend/pkg/logger"
)

// ObjectStore 对象存储边界
type ObjectStore interface {
	Upload(ctx context.Context, bucket, key, contentType string, data []byte) error
	// PublicURL 解析对象的公开地址；无法解析时第二个返回值为 false
	PublicURL(bucket, key string) (string, bool)
}

// UploadError 某个文件上传失败，批次在该文件处中止
type UploadError struct {
	FileName string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("failed to upload file %s: %v", e.FileName, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// ProgressFunc 每个文件开始处理前回调一次（含被跳过的文件）
type ProgressFunc func(current, total int)

var identifierPattern = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Uploader 上传编排器：按列表顺序逐个上传，首个失败立即中止剩余批次。
type Uploader struct {
	store  ObjectStore
	bucket string
}

// NewUploader 创建上传编排器
func NewUploader(store ObjectStore, bucket string) *Uploader {
	return &Uploader{store: store, bucket: bucket}
}

// ObjectKey 生成确定性对象键。标识串中非字母数字一律替换为下划线，文件名原样保留。
func ObjectKey(identifier string, batchTime time.Time, fileName string) string {
	sanitized := identifierPattern.ReplaceAllString(identifier, "_")
	return fmt.Sprintf("public/%s_%d_%s", sanitized, batchTime.UnixMilli(), fileName)
}

// UploadBatch 顺序上传整批文件。
// 非图片类型静默跳过；上传成功但解析不到公开地址只记日志不报错；
// 任一文件上传失败立即返回 UploadError，其后的文件不再尝试。
// 返回的地址列表可能比输入短（跳过的文件不计入）。
func (u *Uploader) UploadBatch(ctx context.Context, identifier string, batchTime time.Time, files []domain.File, progress ProgressFunc) ([]string, error) {
	total := len(files)
	urls := make([]string, 0, total)
	var uploadedKeys []string

	for i, file := range files {
		if progress != nil {
			progress(i+1, total)
		}

		if !strings.HasPrefix(file.ContentType, "image/") {
			logger.Warn(ctx, "Skipping non-image file", "file", file.Name, "content_type", file.ContentType)
			continue
		}

		key := ObjectKey(identifier, batchTime, file.Name)
		if err := u.store.Upload(ctx, u.bucket, key, file.ContentType, file.Data); err != nil {
			// 已写入的对象不回滚，记下键名便于人工清理
			logger.Error(ctx, "Upload failed, aborting remaining batch",
				"file", file.Name,
				"uploaded_keys", uploadedKeys,
				"error", err,
			)
			return nil, &UploadError{FileName: file.Name, Err: err}
		}
		uploadedKeys = append(uploadedKeys, key)

		url, ok := u.store.PublicURL(u.bucket, key)
		if !ok {
			logger.Warn(ctx, "Could not resolve public URL", "key", key)
			continue
		}
		urls = append(urls, url)
	}

	return urls, nil
}
