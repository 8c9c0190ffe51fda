package utils

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"eduportal/config"
)

// CompletionEvent is the payload posted to the completion webhook.
type CompletionEvent struct {
	UserID      uint   `json:"user_id"`
	UserEmail   string `json:"user_email"`
	CourseID    uint   `json:"course_id"`
	CourseTitle string `json:"course_title"`
	CompletedAt string `json:"completed_at"`
}

// NotifyCourseCompletion posts a completion event to the configured webhook.
// A missing webhook URL disables the integration.
func NotifyCourseCompletion(event CompletionEvent) {
	webhookURL := config.AppConfig.CompletionWebhookURL
	if webhookURL == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(event).
		Post(webhookURL)
	if err != nil {
		log.Printf("[WEBHOOK] Error posting completion event: %v", err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("[WEBHOOK] Completion webhook returned %d: %s", resp.StatusCode(), resp.String())
	}
}
