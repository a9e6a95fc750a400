package material

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	TypeJob     = "job"
	TypeExam    = "exam"
	TypeCentral = "central"
)

// Content holds the material body. At most one of the three carriers is
// typically set; file uploads are stored elsewhere and referenced by URL.
type Content struct {
	Text    string `bson:"text,omitempty" json:"text,omitempty"`
	YouTube string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	FileURL string `bson:"file_url,omitempty" json:"file_url,omitempty"`
}

type Material struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string        `bson:"title" json:"title"`
	Type      string        `bson:"type,omitempty" json:"type,omitempty"`
	Category  string        `bson:"category,omitempty" json:"category,omitempty"`
	Content   Content       `bson:"content" json:"content"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}

// ValidType reports whether t is one of the known material types.
func ValidType(t string) bool {
	switch t {
	case TypeJob, TypeExam, TypeCentral:
		return true
	}
	return false
}
