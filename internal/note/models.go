package note

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Defaults applied when a create request omits the optional display fields.
const (
	DefaultColor    = "#fff9e6"
	DefaultCategory = "general"
)

// Note is the persistent note document. A note is either active or trashed:
// Deleted is true exactly when DeletedAt is set.
type Note struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	Color     string             `json:"color" bson:"color"`
	Category  string             `json:"category" bson:"category"`
	Tags      []string           `json:"tags" bson:"tags"`
	Pinned    bool               `json:"pinned" bson:"pinned"`
	Deleted   bool               `json:"deleted" bson:"deleted"`
	DeletedAt *time.Time         `json:"deletedAt" bson:"deletedAt"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
