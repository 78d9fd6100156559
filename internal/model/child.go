// internal/model/child.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Child は支援対象の子どもを表します。
// セラピストが先に作成する場合 (ParentID が未設定) と、保護者が先に作成する場合
// (TherapistID が未設定) の両方があり、後からのリンクはマージとして扱います。
// 既に別のアクターがリンク済みのスロットへの上書きは ErrConflict になります。
type Child struct {
	ChildID     uuid.UUID      `gorm:"type:uuid;primaryKey" json:"child_id"`
	NationalID  string         `gorm:"type:varchar(64);unique;not null" json:"national_id"` // 初回設定後は不変
	Name        string         `gorm:"not null" json:"name"`
	ParentID    *uuid.UUID     `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	TherapistID *uuid.UUID     `gorm:"type:uuid;index" json:"therapist_id,omitempty"`
	// 保護者がリンクする際に提示するアクセスコード (bcryptハッシュ)
	AccessCodeHash string         `gorm:"not null" json:"-"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Child) TableName() string {
	return "children"
}

// CreateChildRequest は子ども作成APIのリクエストボディ (DTO)
type CreateChildRequest struct {
	NationalID string `json:"national_id" validate:"required,min=4,max=64"`
	Name       string `json:"name" validate:"required,min=1,max=100"`
	AccessCode string `json:"access_code" validate:"required,min=6,max=72"`
}

// LinkChildRequest は既存の子どもへのリンクAPIのリクエストボディ
type LinkChildRequest struct {
	NationalID string `json:"national_id" validate:"required,min=4,max=64"`
	AccessCode string `json:"access_code" validate:"required,min=6,max=72"`
}
