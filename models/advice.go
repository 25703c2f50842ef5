package models

type Advice struct {
	ID          string   `json:"id"`
	Date        Date     `json:"date"`
	Type        string   `json:"type"`     // meal | exercise | lifestyle | motivation
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Priority    string   `json:"priority"` // low | medium | high
	ActionItems []string `json:"action_items,omitempty"`
}
