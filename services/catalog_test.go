package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"eduportal/models/portal"
	"eduportal/services"
)

func TestCourseDeleteGuard(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	user := f.createUser(t, "courseguard@test.test")
	course, _ := f.createCourse(t, "Guarded Course", 1)
	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, course.ID))

	err := f.courses.Delete(ctx, course.ID)
	assert.ErrorIs(t, err, services.ErrInvalidOperation)

	// the course is untouched
	got, err := f.courses.GetDetails(ctx, course.ID)
	assert.NoError(t, err)
	assert.Equal(t, portal.RecordActive, got.RecordStatus)
}

func TestCourseDeleteRetires(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	course, _ := f.createCourse(t, "Retirable Course", 1)
	assert.NoError(t, f.courses.Delete(ctx, course.ID))

	got, err := f.courses.GetDetails(ctx, course.ID)
	assert.NoError(t, err)
	assert.Equal(t, portal.RecordRetired, got.RecordStatus)

	// retired courses drop out of the listing
	list, err := f.courses.GetAll(ctx)
	assert.NoError(t, err)
	for _, c := range list {
		assert.NotEqual(t, course.ID, c.ID)
	}
}

func TestMaterialDeleteGuard(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	user := f.createUser(t, "materialguard@test.test")
	course, materialIDs := f.createCourse(t, "Material Guard Course", 1)
	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, course.ID))
	assert.NoError(t, f.enrollments.MarkMaterialComplete(ctx, user.ID, materialIDs[0]))

	err := f.materials.Delete(ctx, materialIDs[0])
	assert.ErrorIs(t, err, services.ErrInvalidOperation)
}

func TestSkillDeleteGuard(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	user := f.createUser(t, "skillguard@test.test")

	skill := portal.Skill{Name: "Guarded", Description: "d"}
	assert.NoError(t, f.skills.Create(ctx, &skill))

	course, materialIDs := f.createCourse(t, "Skill Guard Course", 1)
	f.grantSkill(t, course.ID, skill.ID)

	assert.NoError(t, f.enrollments.Enroll(ctx, user.ID, course.ID))
	assert.NoError(t, f.enrollments.MarkMaterialComplete(ctx, user.ID, materialIDs[0]))

	err := f.skills.Delete(ctx, skill.ID)
	assert.ErrorIs(t, err, services.ErrInvalidOperation)
}

func TestUpdateCourseMaterialsRejectsUnknownID(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	course, materialIDs := f.createCourse(t, "Strict Course", 1)

	err := f.courses.UpdateCourseMaterials(ctx, course.ID, []uint{materialIDs[0], 9999})
	assert.ErrorIs(t, err, services.ErrNotFound)

	// the existing link set is unchanged
	ids, err := f.courses.ActiveMaterialIDs(ctx, course.ID)
	assert.NoError(t, err)
	assert.Equal(t, materialIDs, ids)
}

func TestUpdateCourseMaterialsRetireAndReactivate(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	course, materialIDs := f.createCourse(t, "Toggle Course", 2)

	// drop the second material, then bring it back
	assert.NoError(t, f.courses.UpdateCourseMaterials(ctx, course.ID, []uint{materialIDs[0]}))
	ids, err := f.courses.ActiveMaterialIDs(ctx, course.ID)
	assert.NoError(t, err)
	assert.Equal(t, []uint{materialIDs[0]}, ids)

	assert.NoError(t, f.courses.UpdateCourseMaterials(ctx, course.ID, materialIDs))
	ids, err = f.courses.ActiveMaterialIDs(ctx, course.ID)
	assert.NoError(t, err)
	assert.ElementsMatch(t, materialIDs, ids)

	// no duplicate rows after the round trip
	var rows int64
	f.db.Model(&portal.CourseMaterial{}).Where("course_id = ?", course.ID).Count(&rows)
	assert.EqualValues(t, len(materialIDs), rows)
}

func TestUpdateSkillCoursesBothSides(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	skill := portal.Skill{Name: "Symmetric", Description: "d"}
	assert.NoError(t, f.skills.Create(ctx, &skill))

	courseA, _ := f.createCourse(t, "Side A", 0)
	courseB, _ := f.createCourse(t, "Side B", 0)

	// assign from the skill side
	assert.NoError(t, f.skills.UpdateSkillCourses(ctx, skill.ID, []uint{courseA.ID, courseB.ID}))
	ids, err := f.skills.GetAssignedCourseIDs(ctx, skill.ID)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []uint{courseA.ID, courseB.ID}, ids)

	// retire one from the course side, the skill side sees it
	assert.NoError(t, f.courses.UpdateCourseSkills(ctx, courseB.ID, nil))
	ids, err = f.skills.GetAssignedCourseIDs(ctx, skill.ID)
	assert.NoError(t, err)
	assert.Equal(t, []uint{courseA.ID}, ids)
}

func TestUpdateMaterialWrongVariant(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	video, err := f.materials.CreateVideo(ctx, "A Video", "d", 60, 1280, 720)
	assert.NoError(t, err)

	_, err = f.materials.UpdateBook(ctx, video.ID, "Not a book", "d", "n/a", 10, 1, 2020)
	assert.ErrorIs(t, err, services.ErrInvalidOperation)
}

func TestMaterialVariantsRoundTrip(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	formats, err := f.materials.GetBookFormats(ctx)
	assert.NoError(t, err)
	assert.NotEmpty(t, formats)

	book, err := f.materials.CreateBook(ctx, "Go in Practice", "d", "Butcher, Farina", 312, formats[0].ID, 2016)
	assert.NoError(t, err)
	assert.Equal(t, portal.MaterialBook, book.MaterialType)

	article, err := f.materials.CreateArticle(ctx, "Errors are values", "d", datatypes.Date{}, "https://go.dev/blog/errors-are-values")
	assert.NoError(t, err)
	assert.Equal(t, portal.MaterialArticle, article.MaterialType)

	got, err := f.materials.GetDetails(ctx, book.ID)
	assert.NoError(t, err)
	assert.Equal(t, 312, got.Pages)
	assert.Equal(t, formats[0].ID, *got.FormatID)
}
