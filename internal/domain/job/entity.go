package job

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	StatusLive    = "live"
	StatusExpired = "expired"
	StatusDraft   = "draft"
)

// DateLayout is the wire format of end_date and application_deadline.
// Lexical order on this layout matches chronological order, which the
// store-side filters rely on.
const DateLayout = "2006-01-02"

// Job is one posting as stored in the jobs collection. The collection is
// schemaless and carries two generations of field names (the admin form
// writes company_name/job_location, older documents have location/category),
// so most fields are optional.
type Job struct {
	ID bson.ObjectID `bson:"_id,omitempty" json:"id"`

	Title           string `bson:"title,omitempty" json:"title,omitempty"`
	CompanyName     string `bson:"company_name,omitempty" json:"company_name,omitempty"`
	CompanyOverview string `bson:"company_overview,omitempty" json:"company_overview,omitempty"`

	RoleSummary         string `bson:"role_summary,omitempty" json:"role_summary,omitempty"`
	KeyResponsibilities string `bson:"key_responsibilities,omitempty" json:"key_responsibilities,omitempty"`
	Description         string `bson:"description,omitempty" json:"description,omitempty"`

	RequiredSkills        string `bson:"required_skills,omitempty" json:"required_skills,omitempty"`
	EducationRequirements string `bson:"education_requirements,omitempty" json:"education_requirements,omitempty"`
	ExperienceLevel       string `bson:"experience_level,omitempty" json:"experience_level,omitempty"`

	SalaryRange string `bson:"salary_range,omitempty" json:"salary_range,omitempty"`
	Benefits    string `bson:"benefits,omitempty" json:"benefits,omitempty"`

	JobLocation  string `bson:"job_location,omitempty" json:"job_location,omitempty"`
	Location     string `bson:"location,omitempty" json:"location,omitempty"`
	WorkType     string `bson:"work_type,omitempty" json:"work_type,omitempty"`
	WorkSchedule string `bson:"work_schedule,omitempty" json:"work_schedule,omitempty"`

	Department string `bson:"department,omitempty" json:"department,omitempty"`
	Category   string `bson:"category,omitempty" json:"category,omitempty"`

	ApplicationInstructions string `bson:"application_instructions,omitempty" json:"application_instructions,omitempty"`
	ApplicationDeadline     string `bson:"application_deadline,omitempty" json:"application_deadline,omitempty"`
	ApplicationLink         string `bson:"application_link,omitempty" json:"application_link,omitempty"`
	NotificationPDF         string `bson:"notification_pdf,omitempty" json:"notification_pdf,omitempty"`

	ContactEmail string `bson:"contact_email,omitempty" json:"contact_email,omitempty"`
	ContactPhone string `bson:"contact_phone,omitempty" json:"contact_phone,omitempty"`

	EndDate string `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Status  string `bson:"status,omitempty" json:"status,omitempty"`
	Views   int64  `bson:"views" json:"views"`
	Pinned  bool   `bson:"pinned" json:"pinned"`

	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// OverviewDetail is the narrow projection served by the overview detail
// endpoint, distinct from the full administrative record.
type OverviewDetail struct {
	ID              bson.ObjectID `bson:"_id" json:"id"`
	Title           string        `bson:"title,omitempty" json:"title,omitempty"`
	Department      string        `bson:"department,omitempty" json:"department,omitempty"`
	Location        string        `bson:"location,omitempty" json:"location,omitempty"`
	Description     string        `bson:"description,omitempty" json:"description,omitempty"`
	ApplicationLink string        `bson:"application_link,omitempty" json:"application_link,omitempty"`
	Views           int64         `bson:"views" json:"views"`
}

// DeriveStatus resolves a missing status field from end_date. A job with no
// end_date, or whose end_date is today or later, is live; otherwise expired.
//
// Note the threshold: derivation treats a job ending today as live (>=),
// while the store-side live filter requires end_date strictly after today
// (>). The two thresholds are kept separate for compatibility with documents
// already classified under the old rules; do not unify them.
func DeriveStatus(endDate, today string) string {
	if endDate == "" || endDate >= today {
		return StatusLive
	}
	return StatusExpired
}

// Normalize backfills the computed fields every read path presents: status
// derived from end_date when absent, department copied from the legacy
// category field when absent. Nothing Normalize writes is persisted.
func (j *Job) Normalize(today string) {
	if j.Status == "" {
		j.Status = DeriveStatus(j.EndDate, today)
	}
	if j.Department == "" && j.Category != "" {
		j.Department = j.Category
	}
}

// Today formats a wall-clock instant as a DateLayout day string.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}
