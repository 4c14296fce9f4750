// Package metrics 提供 Prometheus helper，包含本项目常用的 counter/gauge/histogram
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 指标集合
type Metrics struct {
	// 提交请求计数
	SubmissionsTotal prometheus.Counter
	// 校验失败计数
	SubmissionValidationFailures prometheus.Counter
	// 入库失败计数
	SubmissionWriteFailures prometheus.Counter
	// 上传成功计数
	UploadsTotal prometheus.Counter
	// 上传失败计数
	UploadFailures prometheus.Counter
	// 非图片文件跳过计数
	UploadsSkipped prometheus.Counter
	// 整批上传耗时
	UploadBatchDuration prometheus.Histogram
	// 当前批次进度（第 i 个文件）
	UploadProgress prometheus.Gauge

	registry *prometheus.Registry
}

// New 创建指标实例并注册到独立 registry
func New(serviceName string) *Metrics {
	m := &Metrics{
		SubmissionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vivid",
			Subsystem: serviceName,
			Name:      "submissions_total",
			Help:      "Total submission attempts",
		}),
		SubmissionValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vivid",
			Subsystem: serviceName,
			Name:      "submission_validation_failures_total",
			Help:      "Submissions rejected by the validation aggregator",
		}),
		SubmissionWriteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vivid",
			Subsystem: serviceName,
			Name:      "submission_write_failures_total",
			Help:      "Submissions that failed at the record-store insert",
		}),
		UploadsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vivid",
			Subsystem: serviceName,
			Name:      "uploads_total",
			Help:      "Files uploaded to object storage",
		}),
		UploadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vivid",
			Subsystem: serviceName,
			Name:      "upload_failures_total",
			Help:      "Upload batches aborted by a failing file",
		}),
		UploadsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vivid",
			Subsystem: serviceName,
			Name:      "uploads_skipped_total",
			Help:      "Non-image files skipped without an upload attempt",
		}),
		UploadBatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "vivid",
			Subsystem: serviceName,
			Name:      "upload_batch_duration_seconds",
			Help:      "Wall time of a full sequential upload batch",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
		UploadProgress: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vivid",
			Subsystem: serviceName,
			Name:      "upload_progress",
			Help:      "Index of the file currently being uploaded in the active batch",
		}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.SubmissionsTotal,
		m.SubmissionValidationFailures,
		m.SubmissionWriteFailures,
		m.UploadsTotal,
		m.UploadFailures,
		m.UploadsSkipped,
		m.UploadBatchDuration,
		m.UploadProgress,
	)

	return m
}

// Handler 返回可挂载到 Gin 的 /metrics 处理器
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
