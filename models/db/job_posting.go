package dbmodels

type JobPosting struct {
	BaseModel
	Title          string `gorm:"type:varchar(255);index"`
	Department     string `gorm:"type:varchar(255)"`
	EmploymentType string `gorm:"type:varchar(100)"`
	Description    string
	// Opaque knowledge documents, passed to the generation backend as-is.
	Requirements    string `gorm:"type:jsonb;default:'{}'"`
	PreferredSkills string `gorm:"type:jsonb;default:'[]'"`
	CompanyValues   string `gorm:"type:jsonb;default:'[]'"`
	OwnerEmail      string `gorm:"type:varchar(255)"` // notified when an evaluation completes
	IsActive        bool   `gorm:"default:true"`

	SelectionStages []SelectionStage `gorm:"foreignKey:JobPostingID"`
	Candidates      []Candidate      `gorm:"foreignKey:JobPostingID"`
}
