package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Job is the single table backing the board. Posters are anonymous: the
// only credential tied to a row is its modification code, handed out once
// at creation time.
type Job struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string `gorm:"size:100;not null;index" json:"title"`
	CompanyName string `gorm:"size:100;not null;index" json:"company_name"`
	Location    string `gorm:"size:100" json:"location,omitempty"`
	Description string `gorm:"type:text;not null" json:"description"`

	// Application link (URL) or email address.
	ApplicationInfo string `gorm:"size:255;not null" json:"application_info"`

	JobType string `gorm:"size:50" json:"job_type,omitempty"`

	SalaryMin      *int   `json:"salary_min,omitempty"`
	SalaryMax      *int   `json:"salary_max,omitempty"`
	SalaryCurrency string `gorm:"size:10" json:"salary_currency,omitempty"`

	PosterUsername string         `gorm:"size:50;not null;index" json:"poster_username"`
	Tags           pq.StringArray `gorm:"type:text[]" json:"tags"`

	// 8-char uppercase alphanumeric secret. Never serialized; the create
	// response exposes it explicitly via dtos.JobWithModificationCode.
	ModificationCode string `gorm:"size:8;not null;uniqueIndex" json:"-"`
}

func (Job) TableName() string { return "jobs" }

// BeforeCreate assigns the UUID primary key server-side.
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
