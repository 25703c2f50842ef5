package models

import "time"

type Lesson struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Duration    int        `json:"duration"` // minutes
	Category    string     `json:"category"` // nutrition | psychology | exercise | lifestyle
	Order       int        `json:"order"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
