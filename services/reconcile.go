package services

import "eduportal/models/portal"

// LinkFuncs adapts one of the link row types (course-material, course-skill)
// to the generic reconciler.
type LinkFuncs[L any] struct {
	CounterpartID func(L) uint
	Status        func(L) string
	SetStatus     func(*L, string)
	NewLink       func(counterpartID uint) L
}

// ReconcileLinks converges an owner's link rows to exactly the desired
// counterpart id set without losing history: links whose counterpart is no
// longer desired are RETIRED, retired links that are desired again are
// re-activated, and desired ids with no row at all get a new ACTIVE row
// appended. Rows are never removed and never duplicated; re-running with the
// same desired set is a no-op. The desired slice may contain duplicates.
func ReconcileLinks[L any](links []L, desiredIDs []uint, f LinkFuncs[L]) []L {
	desired := make(map[uint]bool, len(desiredIDs))
	for _, id := range desiredIDs {
		desired[id] = true
	}

	existing := make(map[uint]bool, len(links))
	for i := range links {
		id := f.CounterpartID(links[i])
		existing[id] = true

		shouldBeActive := desired[id]
		isActive := f.Status(links[i]) == portal.RecordActive

		switch {
		case isActive && !shouldBeActive:
			f.SetStatus(&links[i], portal.RecordRetired)
		case !isActive && shouldBeActive:
			f.SetStatus(&links[i], portal.RecordActive)
		}
	}

	for _, id := range desiredIDs {
		if existing[id] {
			continue
		}
		existing[id] = true
		links = append(links, f.NewLink(id))
	}

	return links
}

// CourseMaterialLinkFuncs reconciles a course's material links.
func CourseMaterialLinkFuncs(courseID uint) LinkFuncs[portal.CourseMaterial] {
	return LinkFuncs[portal.CourseMaterial]{
		CounterpartID: func(l portal.CourseMaterial) uint { return l.MaterialID },
		Status:        func(l portal.CourseMaterial) string { return l.RecordStatus },
		SetStatus:     func(l *portal.CourseMaterial, s string) { l.RecordStatus = s },
		NewLink: func(materialID uint) portal.CourseMaterial {
			return portal.CourseMaterial{CourseID: courseID, MaterialID: materialID, RecordStatus: portal.RecordActive}
		},
	}
}

// MaterialCourseLinkFuncs reconciles the same rows from the material side.
func MaterialCourseLinkFuncs(materialID uint) LinkFuncs[portal.CourseMaterial] {
	return LinkFuncs[portal.CourseMaterial]{
		CounterpartID: func(l portal.CourseMaterial) uint { return l.CourseID },
		Status:        func(l portal.CourseMaterial) string { return l.RecordStatus },
		SetStatus:     func(l *portal.CourseMaterial, s string) { l.RecordStatus = s },
		NewLink: func(courseID uint) portal.CourseMaterial {
			return portal.CourseMaterial{CourseID: courseID, MaterialID: materialID, RecordStatus: portal.RecordActive}
		},
	}
}

// CourseSkillLinkFuncs reconciles a course's skill links.
func CourseSkillLinkFuncs(courseID uint) LinkFuncs[portal.CourseSkill] {
	return LinkFuncs[portal.CourseSkill]{
		CounterpartID: func(l portal.CourseSkill) uint { return l.SkillID },
		Status:        func(l portal.CourseSkill) string { return l.RecordStatus },
		SetStatus:     func(l *portal.CourseSkill, s string) { l.RecordStatus = s },
		NewLink: func(skillID uint) portal.CourseSkill {
			return portal.CourseSkill{CourseID: courseID, SkillID: skillID, RecordStatus: portal.RecordActive}
		},
	}
}

// SkillCourseLinkFuncs reconciles the same rows from the skill side.
func SkillCourseLinkFuncs(skillID uint) LinkFuncs[portal.CourseSkill] {
	return LinkFuncs[portal.CourseSkill]{
		CounterpartID: func(l portal.CourseSkill) uint { return l.CourseID },
		Status:        func(l portal.CourseSkill) string { return l.RecordStatus },
		SetStatus:     func(l *portal.CourseSkill, s string) { l.RecordStatus = s },
		NewLink: func(courseID uint) portal.CourseSkill {
			return portal.CourseSkill{CourseID: courseID, SkillID: skillID, RecordStatus: portal.RecordActive}
		},
	}
}
