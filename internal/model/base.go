package model

import (
	"time"
)

// GORM이 CreatedAt, UpdatedAt을 자동으로 관리
// 인증이 없는 시스템이므로 작성자/수정자 컬럼은 두지 않는다
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}
