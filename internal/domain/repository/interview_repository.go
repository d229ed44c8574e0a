// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"card-studio-ai-api/internal/domain/entity"
)

type InterviewSessionRepository interface {
	Save(ctx context.Context, session *entity.InterviewSession) error
	// GetByID 未找到时返回 (nil, nil)
	GetByID(ctx context.Context, id string) (*entity.InterviewSession, error)
	Delete(ctx context.Context, id string) error
}
