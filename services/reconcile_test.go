package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eduportal/models/portal"
)

func materialLinks(statusByMaterialID map[uint]string) []portal.CourseMaterial {
	links := make([]portal.CourseMaterial, 0, len(statusByMaterialID))
	for id, status := range statusByMaterialID {
		links = append(links, portal.CourseMaterial{CourseID: 1, MaterialID: id, RecordStatus: status})
	}
	return links
}

func statusByMaterial(links []portal.CourseMaterial) map[uint]string {
	out := make(map[uint]string, len(links))
	for _, l := range links {
		out[l.MaterialID] = l.RecordStatus
	}
	return out
}

func TestReconcileLinks(t *testing.T) {
	tests := []struct {
		name    string
		links   map[uint]string
		desired []uint
		want    map[uint]string
	}{
		{
			name:    "add to empty",
			links:   map[uint]string{},
			desired: []uint{1, 2},
			want:    map[uint]string{1: portal.RecordActive, 2: portal.RecordActive},
		},
		{
			name:    "retire removed",
			links:   map[uint]string{1: portal.RecordActive, 2: portal.RecordActive},
			desired: []uint{1},
			want:    map[uint]string{1: portal.RecordActive, 2: portal.RecordRetired},
		},
		{
			name:    "reactivate retired",
			links:   map[uint]string{1: portal.RecordRetired},
			desired: []uint{1},
			want:    map[uint]string{1: portal.RecordActive},
		},
		{
			name:    "empty desired retires everything",
			links:   map[uint]string{1: portal.RecordActive, 2: portal.RecordActive},
			desired: nil,
			want:    map[uint]string{1: portal.RecordRetired, 2: portal.RecordRetired},
		},
		{
			name:    "mixed add retire reactivate",
			links:   map[uint]string{1: portal.RecordActive, 2: portal.RecordRetired, 3: portal.RecordActive},
			desired: []uint{2, 4},
			want: map[uint]string{
				1: portal.RecordRetired,
				2: portal.RecordActive,
				3: portal.RecordRetired,
				4: portal.RecordActive,
			},
		},
		{
			name:    "duplicate desired ids add one row",
			links:   map[uint]string{},
			desired: []uint{5, 5, 5},
			want:    map[uint]string{5: portal.RecordActive},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReconcileLinks(materialLinks(tt.links), tt.desired, CourseMaterialLinkFuncs(1))

			assert.Equal(t, tt.want, statusByMaterial(got))
			// rows are never dropped, one row per counterpart
			assert.Len(t, got, len(tt.want))
		})
	}
}

func TestReconcileLinksIdempotent(t *testing.T) {
	links := materialLinks(map[uint]string{1: portal.RecordActive, 2: portal.RecordRetired})
	desired := []uint{1, 3}

	first := ReconcileLinks(links, desired, CourseMaterialLinkFuncs(1))
	second := ReconcileLinks(first, desired, CourseMaterialLinkFuncs(1))

	assert.Equal(t, statusByMaterial(first), statusByMaterial(second))
	assert.Len(t, second, len(first))
}

func TestReconcileLinksNewRowsCarryOwner(t *testing.T) {
	got := ReconcileLinks(nil, []uint{7}, CourseSkillLinkFuncs(42))

	assert.Len(t, got, 1)
	assert.Equal(t, uint(42), got[0].CourseID)
	assert.Equal(t, uint(7), got[0].SkillID)
	assert.Equal(t, portal.RecordActive, got[0].RecordStatus)
}

func TestReconcileLinksFromCounterpartSide(t *testing.T) {
	// same rows, reconciled from the material side against course ids
	links := []portal.CourseMaterial{
		{CourseID: 1, MaterialID: 9, RecordStatus: portal.RecordActive},
		{CourseID: 2, MaterialID: 9, RecordStatus: portal.RecordRetired},
	}

	got := ReconcileLinks(links, []uint{2, 3}, MaterialCourseLinkFuncs(9))

	byCourse := make(map[uint]string, len(got))
	for _, l := range got {
		assert.Equal(t, uint(9), l.MaterialID)
		byCourse[l.CourseID] = l.RecordStatus
	}
	assert.Equal(t, map[uint]string{
		1: portal.RecordRetired,
		2: portal.RecordActive,
		3: portal.RecordActive,
	}, byCourse)
}
