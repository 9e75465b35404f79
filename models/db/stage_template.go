package dbmodels

// StageTemplate is the organization-wide definition of one step in the
// hiring pipeline. Mutating a template does not touch stage progress
// records already instantiated from it.
type StageTemplate struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	Description string
	StageOrder  int
	// expected duration in days
	Duration int
}
