package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"eduportal/database"
	"eduportal/models"
	"eduportal/models/portal"
	"eduportal/repository"
	"eduportal/services"
)

type recordingNotifier struct {
	completed []string // "userID/courseTitle"
}

func (n *recordingNotifier) CourseCompleted(user models.User, course portal.Course) {
	n.completed = append(n.completed, fmt.Sprintf("%d/%s", user.ID, course.Title))
}

type fixture struct {
	db          *gorm.DB
	store       *repository.GormStore
	statuses    services.StatusSet
	courses     *services.CourseService
	materials   *services.MaterialService
	skills      *services.SkillService
	enrollments *services.EnrollmentService
	profiles    *services.ProfileService
	notifier    *recordingNotifier
}

func setup(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("setup() failed to open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("setup() migration failed: %v", err)
	}

	store := repository.NewGormStore(db)
	statuses, err := services.ResolveStatusSet(context.Background(), store)
	if err != nil {
		t.Fatalf("setup() status resolution failed: %v", err)
	}

	notifier := &recordingNotifier{}
	enrollments := services.NewEnrollmentService(store, statuses)
	enrollments.SetNotifier(notifier)

	return &fixture{
		db:          db,
		store:       store,
		statuses:    statuses,
		courses:     services.NewCourseService(store),
		materials:   services.NewMaterialService(store),
		skills:      services.NewSkillService(store),
		enrollments: enrollments,
		profiles:    services.NewProfileService(store, statuses),
		notifier:    notifier,
	}
}

func (f *fixture) createUser(t *testing.T, email string) models.User {
	t.Helper()
	user := models.User{Name: "Test Learner", Email: email, Password: "x"}
	if err := f.db.Create(&user).Error; err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return user
}

// createCourse creates a course with n video materials and links them all.
func (f *fixture) createCourse(t *testing.T, title string, materialCount int) (portal.Course, []uint) {
	t.Helper()
	ctx := context.Background()

	course := portal.Course{Title: title, Description: "d"}
	if err := f.courses.Create(ctx, &course); err != nil {
		t.Fatalf("createCourse() failed: %v", err)
	}

	materialIDs := make([]uint, 0, materialCount)
	for i := 0; i < materialCount; i++ {
		material, err := f.materials.CreateVideo(ctx, fmt.Sprintf("%s video %d", title, i+1), "d", 60, 1280, 720)
		if err != nil {
			t.Fatalf("createCourse() material failed: %v", err)
		}
		materialIDs = append(materialIDs, material.ID)
	}

	if len(materialIDs) > 0 {
		if err := f.courses.UpdateCourseMaterials(ctx, course.ID, materialIDs); err != nil {
			t.Fatalf("createCourse() link failed: %v", err)
		}
	}
	return course, materialIDs
}

func (f *fixture) grantSkill(t *testing.T, courseID uint, skillIDs ...uint) {
	t.Helper()
	if err := f.courses.UpdateCourseSkills(context.Background(), courseID, skillIDs); err != nil {
		t.Fatalf("grantSkill() failed: %v", err)
	}
}

func (f *fixture) enrollment(t *testing.T, userID, courseID uint) portal.Enrollment {
	t.Helper()
	enrollment, err := f.store.Enrollment(context.Background(), userID, courseID)
	if err != nil {
		t.Fatalf("enrollment() fetch failed: %v", err)
	}
	return enrollment
}

func TestEnroll(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	user := f.createUser(t, "enroll@test.test")
	course, _ := f.createCourse(t, "Go Basics", 4)

	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, course.ID))

	enrollment := f.enrollment(t, user.ID, course.ID)
	assert.Equal(t, f.statuses.InProgressID, enrollment.StatusID)
	assert.Equal(t, 0, enrollment.ProgressPercent)

	// re-enrolling keeps a single row
	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, course.ID))
	var count int64
	f.db.Model(&portal.Enrollment{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestEnrollUnknownCourse(t *testing.T) {
	f := setup(t)
	user := f.createUser(t, "nocourse@test.test")

	err := f.enrollments.Enroll(context.Background(), user.ID, 9999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestEnrollPicksUpPriorCompletions(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	user := f.createUser(t, "prior@test.test")
	courseA, materialsA := f.createCourse(t, "Course A", 2)
	courseB, _ := f.createCourse(t, "Course B", 2)

	// share the first material of A into B
	assert.NoError(t, f.materials.UpdateMaterialCourses(ctx, materialsA[0], []uint{courseA.ID, courseB.ID}))

	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, courseA.ID))
	assert.NoError(t, f.enrollments.MarkMaterialComplete(ctx, user.ID, materialsA[0]))

	// enrolling into B counts the already completed shared material
	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, courseB.ID))
	enrollment := f.enrollment(t, user.ID, courseB.ID)
	assert.Equal(t, 33, enrollment.ProgressPercent) // 1 of 3 linked materials
}

func TestMarkMaterialCompleteProgress(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	user := f.createUser(t, "progress@test.test")
	course, materialIDs := f.createCourse(t, "Progress Course", 4)

	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, course.ID))
	assert.NoError(t, f.enrollments.MarkMaterialComplete(ctx, user.ID, materialIDs[0]))

	enrollment := f.enrollment(t, user.ID, course.ID)
	assert.Equal(t, 25, enrollment.ProgressPercent)
	assert.Equal(t, f.statuses.InProgressID, enrollment.StatusID)

	// repeating a completion changes nothing
	assert.NoError(t, f.enrollments.MarkMaterialComplete(ctx, user.ID, materialIDs[0]))
	enrollment = f.enrollment(t, user.ID, course.ID)
	assert.Equal(t, 25, enrollment.ProgressPercent)
}

func TestMarkMaterialCompleteFinishesCourse(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	user := f.createUser(t, "finish@test.test")
	course, materialIDs := f.createCourse(t, "Finish Course", 3)

	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, course.ID))
	for _, id := range materialIDs {
		assert.NoError(t, f.enrollments.MarkMaterialComplete(ctx, user.ID, id))
	}

	enrollment := f.enrollment(t, user.ID, course.ID)
	assert.Equal(t, 100, enrollment.ProgressPercent)
	assert.Equal(t, f.statuses.CompletedID, enrollment.StatusID)

	// completion triggered the notifier and a certificate
	assert.Equal(t, []string{fmt.Sprintf("%d/Finish Course", user.ID)}, f.notifier.completed)
	var certificates int64
	f.db.Model(&portal.Certificate{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&certificates)
	assert.EqualValues(t, 1, certificates)

	// completed enrollments never regress
	assert.NoError(t, f.enrollments.MarkMaterialComplete(ctx, user.ID, materialIDs[0]))
	enrollment = f.enrollment(t, user.ID, course.ID)
	assert.Equal(t, f.statuses.CompletedID, enrollment.StatusID)
	assert.Equal(t, 100, enrollment.ProgressPercent)
}

func TestMarkMaterialCompleteUnlinkedMaterial(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	user := f.createUser(t, "unlinked@test.test")
	course, _ := f.createCourse(t, "Some Course", 2)
	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, course.ID))

	orphan, err := f.materials.CreateVideo(ctx, "Orphan", "d", 30, 640, 480)
	assert.NoError(t, err)

	assert.NoError(t, f.enrollments.MarkMaterialComplete(ctx, user.ID, orphan.ID))

	// the completion is recorded but no enrollment moved
	ids, err := f.enrollments.GetCompletedMaterialIDs(ctx, user.ID)
	assert.NoError(t, err)
	assert.Contains(t, ids, orphan.ID)

	enrollment := f.enrollment(t, user.ID, course.ID)
	assert.Equal(t, 0, enrollment.ProgressPercent)
}

func TestSkillLevelAccumulation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	user := f.createUser(t, "skills@test.test")

	skill := portal.Skill{Name: "Testing", Description: "d"}
	assert.NoError(t, f.skills.Create(ctx, &skill))

	courseA, materialsA := f.createCourse(t, "Skill Course A", 1)
	courseB, materialsB := f.createCourse(t, "Skill Course B", 1)
	f.grantSkill(t, courseA.ID, skill.ID)
	f.grantSkill(t, courseB.ID, skill.ID)

	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, courseA.ID))
	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, courseB.ID))

	assert.NoError(t, f.enrollments.MarkMaterialComplete(ctx, user.ID, materialsA[0]))
	award, err := f.store.SkillAward(ctx, user.ID, skill.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, award.Level)

	assert.NoError(t, f.enrollments.MarkMaterialComplete(ctx, user.ID, materialsB[0]))
	award, err = f.store.SkillAward(ctx, user.ID, skill.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, award.Level)
}

func TestCompleteCourseForcesFullProgress(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	user := f.createUser(t, "force@test.test")
	course, materialIDs := f.createCourse(t, "Force Course", 4)

	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, course.ID))
	assert.NoError(t, f.enrollments.MarkMaterialComplete(ctx, user.ID, materialIDs[0]))

	assert.NoError(t, f.enrollments.CompleteCourse(ctx, user.ID, course.ID))

	enrollment := f.enrollment(t, user.ID, course.ID)
	assert.Equal(t, f.statuses.CompletedID, enrollment.StatusID)
	assert.Equal(t, 100, enrollment.ProgressPercent)

	// completing again is a silent no-op, no write at all
	before := f.enrollment(t, user.ID, course.ID)
	assert.NoError(t, f.enrollments.CompleteCourse(ctx, user.ID, course.ID))
	after := f.enrollment(t, user.ID, course.ID)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
	var certificates int64
	f.db.Model(&portal.Certificate{}).Where("user_id = ?", user.ID).Count(&certificates)
	assert.EqualValues(t, 1, certificates)
	assert.Len(t, f.notifier.completed, 1)
}

func TestCompleteCourseWithoutEnrollment(t *testing.T) {
	f := setup(t)

	user := f.createUser(t, "noenroll@test.test")
	course, _ := f.createCourse(t, "Lonely Course", 1)

	err := f.enrollments.CompleteCourse(context.Background(), user.ID, course.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetStatus(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	user := f.createUser(t, "status@test.test")
	course, _ := f.createCourse(t, "Status Course", 1)

	state, err := f.enrollments.GetStatus(ctx, user.ID, course.ID)
	assert.NoError(t, err)
	assert.Equal(t, services.StateNotEnrolled, state)

	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, course.ID))
	state, err = f.enrollments.GetStatus(ctx, user.ID, course.ID)
	assert.NoError(t, err)
	assert.Equal(t, services.StateInProgress, state)

	assert.NoError(t, f.enrollments.CompleteCourse(ctx, user.ID, course.ID))
	state, err = f.enrollments.GetStatus(ctx, user.ID, course.ID)
	assert.NoError(t, err)
	assert.Equal(t, services.StateCompleted, state)
}

func TestRefreshInProgressEnrollments(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	user := f.createUser(t, "refresh@test.test")
	course, materialIDs := f.createCourse(t, "Refresh Course", 2)

	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, course.ID))
	assert.NoError(t, f.enrollments.MarkMaterialComplete(ctx, user.ID, materialIDs[0]))
	assert.Equal(t, 50, f.enrollment(t, user.ID, course.ID).ProgressPercent)

	// retiring the incomplete material makes the enrollment stale at 50%
	assert.NoError(t, f.courses.UpdateCourseMaterials(ctx, course.ID, []uint{materialIDs[0]}))

	updated, err := f.enrollments.RefreshInProgressEnrollments(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, updated)

	enrollment := f.enrollment(t, user.ID, course.ID)
	assert.Equal(t, 100, enrollment.ProgressPercent)
	assert.Equal(t, f.statuses.CompletedID, enrollment.StatusID)
}

func TestResolveStatusSetMissingSeed(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:unseeded?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if err := db.AutoMigrate(&portal.CourseStatus{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	_, err = services.ResolveStatusSet(context.Background(), repository.NewGormStore(db))
	assert.ErrorIs(t, err, services.ErrIntegrity)
}
