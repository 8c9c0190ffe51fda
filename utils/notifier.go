package utils

import (
	"time"

	"eduportal/models"
	"eduportal/models/portal"
)

// CourseNotifier sends the learner-facing notifications for course
// completion: a congratulation email and a webhook event.
type CourseNotifier struct{}

func NewCourseNotifier() *CourseNotifier {
	return &CourseNotifier{}
}

func (n *CourseNotifier) CourseCompleted(user models.User, course portal.Course) {
	SendCourseCompletionEmail(user.Email, user.Name, course.Title)
	go NotifyCourseCompletion(CompletionEvent{
		UserID:      user.ID,
		UserEmail:   user.Email,
		CourseID:    course.ID,
		CourseTitle: course.Title,
		CompletedAt: time.Now().UTC().Format(time.RFC3339),
	})
}
