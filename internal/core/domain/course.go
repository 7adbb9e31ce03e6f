package domain

// Course is a catalogue entry.
type Course struct {
	ID      string `json:"id" bson:"_id,omitempty"`
	Title   string `json:"title" bson:"title"`
	Lessons int    `json:"lessons" bson:"lessons"`
	Hours   int    `json:"hours" bson:"hours"`
}

// CourseUpdate carries a partial course update. Nil fields are left untouched.
type CourseUpdate struct {
	Title   *string
	Lessons *int
	Hours   *int
}
