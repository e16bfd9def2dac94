package models

import "time"

type Message struct {
	ID                 string    `json:"id" db:"id"`
	SessionID          string    `json:"session_id" db:"session_id"`
	Content            string    `json:"content" db:"content"`
	IsUser             bool      `json:"is_user" db:"is_user"`
	ComparisonResponse *string   `json:"comparison_response" db:"comparison_response"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}
