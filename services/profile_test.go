package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"eduportal/models/portal"
	"eduportal/services"
)

func TestGetProfile(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	user := f.createUser(t, "profile@test.test")

	skill := portal.Skill{Name: "Profiling", Description: "d"}
	assert.NoError(t, f.skills.Create(ctx, &skill))

	done, doneMaterials := f.createCourse(t, "Done Course", 1)
	f.grantSkill(t, done.ID, skill.ID)
	open, _ := f.createCourse(t, "Open Course", 2)

	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, done.ID))
	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, open.ID))
	assert.NoError(t, f.enrollments.MarkMaterialComplete(ctx, user.ID, doneMaterials[0]))

	profile, err := f.profiles.GetProfile(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)
	assert.Equal(t, 1, profile.CoursesCompleted)
	assert.Equal(t, 1, profile.CoursesInProgress)
	assert.Equal(t, 1, profile.SkillCount)
}

func TestProfileCourseLists(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	user := f.createUser(t, "courselists@test.test")
	done, doneMaterials := f.createCourse(t, "Finished", 1)
	open, openMaterials := f.createCourse(t, "Halfway", 2)

	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, done.ID))
	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, open.ID))
	assert.NoError(t, f.enrollments.MarkMaterialComplete(ctx, user.ID, doneMaterials[0]))
	assert.NoError(t, f.enrollments.MarkMaterialComplete(ctx, user.ID, openMaterials[0]))

	inProgress, err := f.profiles.GetCoursesInProgress(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, []services.UserCourseItem{
		{CourseID: open.ID, CourseTitle: "Halfway", ProgressPercent: 50},
	}, inProgress)

	completed, err := f.profiles.GetCompletedCourses(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, []services.UserCourseItem{
		{CourseID: done.ID, CourseTitle: "Finished", ProgressPercent: 100},
	}, completed)
}

func TestProfileSkills(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	user := f.createUser(t, "profileskills@test.test")

	skill := portal.Skill{Name: "Persistence", Description: "d"}
	assert.NoError(t, f.skills.Create(ctx, &skill))

	courseA, materialsA := f.createCourse(t, "Award A", 1)
	courseB, materialsB := f.createCourse(t, "Award B", 1)
	f.grantSkill(t, courseA.ID, skill.ID)
	f.grantSkill(t, courseB.ID, skill.ID)

	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, courseA.ID))
	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, courseB.ID))
	assert.NoError(t, f.enrollments.MarkMaterialComplete(ctx, user.ID, materialsA[0]))
	assert.NoError(t, f.enrollments.MarkMaterialComplete(ctx, user.ID, materialsB[0]))

	items, err := f.profiles.GetSkills(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, []services.UserSkillItem{
		{SkillID: skill.ID, SkillName: "Persistence", Level: 2},
	}, items)
}

func TestProfileEmptyUser(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	user := f.createUser(t, "empty@test.test")

	items, err := f.profiles.GetSkills(ctx, user.ID)
	assert.NoError(t, err)
	assert.Empty(t, items)

	inProgress, err := f.profiles.GetCoursesInProgress(ctx, user.ID)
	assert.NoError(t, err)
	assert.Empty(t, inProgress)

	_, err = f.profiles.GetProfile(ctx, 9999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
