package catalog

import (
	"testing"

	"github.com/bhiohub/bhiohub/internal/geo"
	"github.com/bhiohub/bhiohub/internal/talent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpertiseFilterUsesBadgeNames(t *testing.T) {
	dir := talent.NewDirectory(Talents(), ExpertiseBadges())
	got := dir.Apply(talent.Filter{Expertise: "auditoria", Level: talent.All})
	require.Len(t, got, 2)
	assert.Equal(t, "Enf. Bruno Costa", got[0].Name)
	assert.Equal(t, "Dr. Marcos Oliveira", got[1].Name)

	got = dir.Apply(talent.Filter{Expertise: "procedimentos", Level: string(talent.LevelGold)})
	assert.Len(t, got, 2)
}

func TestLocationsFitBrazil(t *testing.T) {
	v := geo.Fit(Locations())
	assert.Equal(t, 4, v.Zoom)
	assert.InDelta(t, -21.503, v.Center.Lat, 0.001)
}

func TestSeedArticles(t *testing.T) {
	seed := SeedArticles()
	require.Len(t, seed, 3)
	assert.Equal(t, 2025, seed[0].UploadedAt.Year())
}

func TestCoursesIn(t *testing.T) {
	all := Courses()
	assert.Len(t, CoursesIn(all, AllCategories), 4)
	got := CoursesIn(all, "quality")
	require.Len(t, got, 1)
	assert.Equal(t, "Controle de Qualidade em Laboratórios", got[0].Title)
	assert.Empty(t, CoursesIn(all, "unknown"))
}

func TestXPPercent(t *testing.T) {
	assert.Equal(t, 81, Stats().XPPercent())
	assert.Equal(t, 0, UserStats{}.XPPercent())
}
