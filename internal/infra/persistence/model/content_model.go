package model

import (
	"time"

	"github.com/google/uuid"
)

// Boolean columns must not carry a GORM default tag: an explicit false would be
// skipped on insert and replaced by the column default.

// ProgramModel mirrors the 'programs' table.
type ProgramModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	AgeGroup    string    `gorm:"type:varchar(100)"`
	Schedule    string    `gorm:"type:varchar(255)"`
	Duration    string    `gorm:"type:varchar(100)"`
	Price       float64   `gorm:"type:numeric(10,2)"`
	MaxStudents int
	ImageURL    string `gorm:"column:image_url;type:varchar(500)"`
	IsActive    bool   `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProgramModel) TableName() string {
	return "programs"
}

// CoachModel mirrors the 'coaches' table.
type CoachModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Title           string    `gorm:"type:varchar(255)"`
	Bio             string    `gorm:"type:text"`
	Specialization  string    `gorm:"type:varchar(255)"`
	ExperienceYears int
	ImageURL        string `gorm:"column:image_url;type:varchar(500)"`
	Email           string `gorm:"type:varchar(255)"`
	Phone           string `gorm:"type:varchar(50)"`
	IsActive        bool   `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CoachModel) TableName() string {
	return "coaches"
}

// TestimonialModel mirrors the 'testimonials' table.
type TestimonialModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentName string    `gorm:"type:varchar(255);not null"`
	ParentName  string    `gorm:"type:varchar(255)"`
	ProgramName string    `gorm:"type:varchar(255)"`
	Content     string    `gorm:"type:text;not null"`
	Rating      int       `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	ImageURL    string    `gorm:"column:image_url;type:varchar(500)"`
	IsApproved  bool      `gorm:"not null"`
	IsFeatured  bool      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TestimonialModel) TableName() string {
	return "testimonials"
}

// FacilityModel mirrors the 'facilities' table.
type FacilityModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	ImageURL     string    `gorm:"column:image_url;type:varchar(500)"`
	DisplayOrder int       `gorm:"not null"`
	IsActive     bool      `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FacilityModel) TableName() string {
	return "facilities"
}

// GalleryImageModel mirrors the 'gallery_images' table.
type GalleryImageModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	ImageURL     string    `gorm:"column:image_url;type:varchar(500);not null"`
	Category     string    `gorm:"type:varchar(100)"`
	DisplayOrder int       `gorm:"not null"`
	IsActive     bool      `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (GalleryImageModel) TableName() string {
	return "gallery_images"
}

// ContactMessageModel mirrors the 'contact_messages' table.
type ContactMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(50)"`
	Subject   string    `gorm:"type:varchar(255)"`
	Message   string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactMessageModel) TableName() string {
	return "contact_messages"
}

// StudentModel mirrors the 'students' table. ProgramID references programs.id.
type StudentModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string     `gorm:"type:varchar(255);not null"`
	DateOfBirth *time.Time `gorm:"type:date"`
	ParentName  string     `gorm:"type:varchar(255);not null"`
	ParentPhone string     `gorm:"type:varchar(50);not null"`
	ParentEmail string     `gorm:"type:varchar(255)"`
	ProgramID   *uuid.UUID `gorm:"type:uuid;index"`
	Notes       string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "students"
}

// SettingModel mirrors the 'settings' table. KeyName is unique.
type SettingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	KeyName     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	KeyValue    string    `gorm:"type:text;not null"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingModel) TableName() string {
	return "settings"
}
