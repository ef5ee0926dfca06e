package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lesson is embedded in its course document; lessons are external video
// links, never uploaded media.
type Lesson struct {
	Title       string `bson:"title" json:"title"`
	YoutubeURL  string `bson:"youtube_url" json:"youtube_url"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Duration    string `bson:"duration,omitempty" json:"duration,omitempty"`
}

type Course struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Thumbnail   string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Lessons     []Lesson           `bson:"lessons" json:"lessons"`
	Duration    string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Level       string             `bson:"level,omitempty" json:"level,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
