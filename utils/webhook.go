package utils

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"stagingcourse/config"
	courseModels "stagingcourse/models/course"
)

// NotifyCoursePublished pings the configured webhook when a course goes live
// so downstream consumers (marketing site cache, announcement bots) can react.
// Failures are logged and never surfaced to the admin who published.
func NotifyCoursePublished(course courseModels.Course) {
	url := config.AppConfig.PublishWebhookURL
	if url == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":     "course.published",
			"course_id": course.ID,
			"title":     course.Title,
			"slug":      course.Slug,
		}).
		Post(url)
	if err != nil {
		log.Printf("Publish webhook call failed for course %d: %v", course.ID, err)
		return
	}
	if resp.StatusCode() >= 400 {
		log.Printf("Publish webhook rejected course %d: %d %s", course.ID, resp.StatusCode(), resp.String())
	}
}
