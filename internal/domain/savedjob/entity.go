package savedjob

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// SavedJob links one user to one posting they bookmarked. The job reference
// is by value and non-owning: deleting a job leaves its associations behind,
// and resolution tolerates the dangling ids.
type SavedJob struct {
	ID      bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID  string        `bson:"user_id" json:"user_id"`
	JobID   string        `bson:"job_id" json:"job_id"`
	SavedAt time.Time     `bson:"saved_at" json:"saved_at"`
}
