package repository

// Column names shared by filters, policies and schemas.
const (
	ColumnIsActive       = "is_active"
	ColumnIsApproved     = "is_approved"
	ColumnIsFeatured     = "is_featured"
	ColumnIsRead         = "is_read"
	ColumnAgeGroup       = "age_group"
	ColumnSpecialization = "specialization"
	ColumnCategory       = "category"
	ColumnStatus         = "status"
	ColumnProgramID      = "program_id"
)

var (
	ProgramSchema = ResourceSchema{
		Table:         "programs",
		FilterColumns: []string{ColumnIsActive, ColumnAgeGroup},
		UpdatableColumns: []string{
			"title", "description", "age_group", "schedule", "duration",
			"price", "max_students", "image_url", ColumnIsActive,
		},
		DefaultOrder: "created_at DESC",
		DeleteMode:   SoftDelete,
		ActiveColumn: ColumnIsActive,
	}

	CoachSchema = ResourceSchema{
		Table:         "coaches",
		FilterColumns: []string{ColumnIsActive, ColumnSpecialization},
		UpdatableColumns: []string{
			"name", "title", "bio", "specialization", "experience_years",
			"image_url", "email", "phone", ColumnIsActive,
		},
		DefaultOrder: "name ASC",
		DeleteMode:   SoftDelete,
		ActiveColumn: ColumnIsActive,
	}

	TestimonialSchema = ResourceSchema{
		Table:         "testimonials",
		FilterColumns: []string{ColumnIsApproved, ColumnIsFeatured},
		UpdatableColumns: []string{
			"student_name", "parent_name", "program_name", "content", "rating",
			"image_url", ColumnIsApproved, ColumnIsFeatured,
		},
		DefaultOrder: "is_featured DESC, created_at DESC",
		DeleteMode:   HardDelete,
	}

	FacilitySchema = ResourceSchema{
		Table:            "facilities",
		FilterColumns:    []string{ColumnIsActive},
		UpdatableColumns: []string{"name", "description", "image_url", "display_order", ColumnIsActive},
		DefaultOrder:     "display_order ASC, name ASC",
		DeleteMode:       HardDelete,
	}

	GallerySchema = ResourceSchema{
		Table:         "gallery_images",
		FilterColumns: []string{ColumnIsActive, ColumnCategory},
		UpdatableColumns: []string{
			"title", "description", "image_url", "category", "display_order", ColumnIsActive,
		},
		DefaultOrder: "display_order ASC, created_at DESC",
		DeleteMode:   HardDelete,
	}

	ContactSchema = ResourceSchema{
		Table:            "contact_messages",
		FilterColumns:    []string{ColumnIsRead},
		UpdatableColumns: []string{ColumnIsRead},
		DefaultOrder:     "created_at DESC",
		DeleteMode:       HardDelete,
	}

	StudentSchema = ResourceSchema{
		Table:         "students",
		FilterColumns: []string{ColumnStatus, ColumnProgramID},
		UpdatableColumns: []string{
			"name", "date_of_birth", "parent_name", "parent_phone", "parent_email",
			ColumnProgramID, "notes", ColumnStatus,
		},
		DefaultOrder: "created_at DESC",
		DeleteMode:   HardDelete,
	}
)
