package domain

import (
	"context"
	"time"
)

// EventPublisher 领域事件发布
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}

// SubmissionReceived 报名写入成功后发布
type SubmissionReceived struct {
	SubmissionID string    `json:"submission_id"`
	Email        string    `json:"email"`
	ImageCount   int       `json:"image_count"`
	ReceivedAt   time.Time `json:"received_at"`
}

// OnboardingCompleted 管理端补录 onboarding 字段后发布
type OnboardingCompleted struct {
	SubmissionID string    `json:"submission_id"`
	AdminID      uint      `json:"admin_id"`
	CompletedAt  time.Time `json:"completed_at"`
}
