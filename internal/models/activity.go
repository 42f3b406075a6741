package models

import "time"

type Activity struct {
	ID         int64     `json:"id"`
	SessionID  int64     `json:"session_id"`
	ExerciseID int64     `json:"exercise_id"`
	Sets       int       `json:"sets"`
	Repetition int       `json:"repetition"`
	Rest       int       `json:"rest"`
	Weight     float64   `json:"weight"`
	CreatedAt  time.Time `json:"created_at"`
}

// ActivityDetail is the activity row joined with the exercise it references.
type ActivityDetail struct {
	Activity
	ExerciseName string `json:"exercise_name"`
}

type Exercise struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ContactMessage struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
