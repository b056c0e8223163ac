package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionDegree(t *testing.T) {
	tests := []struct {
		name  string
		badge string
		want  string
		ok    bool
	}{
		{"first degree", "• 1st", "1st", true},
		{"second degree", "• 2nd", "2nd", true},
		{"third degree", "• 3rd", "3rd", true},
		{"fourth degree", "• 4th", "4th", true},
		{"no ordinal", "Follow", "", false},
		{"empty badge", "", "", false},
		{"bare number without suffix", "• 2", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ConnectionDegree(tt.badge)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConnectionDegree_Idempotent(t *testing.T) {
	first, ok1 := ConnectionDegree("• 2nd")
	second, ok2 := ConnectionDegree("• 2nd")
	assert.Equal(t, first, second)
	assert.Equal(t, ok1, ok2)
}

func TestPremiumFlag(t *testing.T) {
	assert.True(t, PremiumFlag("IMG_PREMIUM_BUG_GOLD_48DP"))
	assert.False(t, PremiumFlag("IMG_VERIFIED_48DP"))
	// a missing icon is false, never unknown
	assert.False(t, PremiumFlag(""))
}

func TestMutualConnections(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  int
		ok    bool
	}{
		{"many connections", "55 mutual connections", 55, true},
		{"single connection", "1 mutual connection", 1, true},
		{"case insensitive", "12 Mutual Connections", 12, true},
		{"no count", "mutual connections", 0, false},
		{"empty", "", 0, false},
		{"plus suffix is a miss", "500+ mutual connections", 0, false},
		{"unrelated insight", "Works at Acme", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MutualConnections(tt.title)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPublicIdentifier(t *testing.T) {
	id, ok := PublicIdentifier("https://www.linkedin.com/in/katie-oberle-37a64a278?miniProfileUrn=x")
	require.True(t, ok)
	assert.Equal(t, "katie-oberle-37a64a278", id)

	id, ok = PublicIdentifier("https://www.linkedin.com/in/jdoe")
	require.True(t, ok)
	assert.Equal(t, "jdoe", id)

	_, ok = PublicIdentifier("https://www.linkedin.com/company/google")
	assert.False(t, ok)

	_, ok = PublicIdentifier("")
	assert.False(t, ok)
}

func TestCompanyFromTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
		ok    bool
	}{
		{"at separator", "Senior Recruiting Professional at CentralSquare Technologies", "CentralSquare Technologies", true},
		{"at-sign separator", "Engineer @ Google", "Google", true},
		{"capital At", "Recruiter At Acme Corp", "Acme Corp", true},
		{"all caps AT", "Engineer AT IBM", "IBM", true},
		{"no separator", "Assistant Director of Engineering", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CompanyFromTitle(tt.title)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompanyID(t *testing.T) {
	id, ok := CompanyID("https://www.linkedin.com/company/143650/")
	require.True(t, ok)
	assert.Equal(t, "143650", id)

	_, ok = CompanyID("https://www.linkedin.com/in/jdoe")
	assert.False(t, ok)

	_, ok = CompanyID("")
	assert.False(t, ok)
}

func TestSchoolID(t *testing.T) {
	id, ok := SchoolID("https://www.linkedin.com/school/18190/")
	require.True(t, ok)
	assert.Equal(t, "18190", id)

	_, ok = SchoolID("https://www.linkedin.com/company/18190/")
	assert.False(t, ok)
}

func TestMemberID(t *testing.T) {
	id, ok := MemberID("urn:li:member:1136267662")
	require.True(t, ok)
	assert.Equal(t, int64(1136267662), id)

	_, ok = MemberID("urn:li:fsd_profile:ACoAA")
	assert.False(t, ok)

	_, ok = MemberID("")
	assert.False(t, ok)
}

func TestRingFromStatus(t *testing.T) {
	hiring := RingFromStatus("HIRING")
	assert.True(t, hiring.IsHiring)
	assert.False(t, hiring.IsOpenToWork)

	otw := RingFromStatus("OPEN_TO_WORK")
	assert.False(t, otw.IsHiring)
	assert.True(t, otw.IsOpenToWork)

	// any other value leaves both booleans false
	for _, status := range []string{"", "UNKNOWN_STATE", "hiring"} {
		ring := RingFromStatus(status)
		assert.False(t, ring.IsHiring)
		assert.False(t, ring.IsOpenToWork)
	}
}

func TestCleanCompanyName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Menlo Security Inc. · Full-time", "Menlo Security Inc."},
		{"Skyhigh Security · Full-time", "Skyhigh Security"},
		{"EVOTEK · Part-time", "EVOTEK"},
		{"Forcepoint", "Forcepoint"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanCompanyName(tt.in))
	}
}

func TestSkillsLine(t *testing.T) {
	skills, ok := SkillsLine("Skills: Go · Kubernetes · PostgreSQL")
	require.True(t, ok)
	assert.Equal(t, []string{"Go", "Kubernetes", "PostgreSQL"}, skills)

	skills, ok = SkillsLine("Skills: Python")
	require.True(t, ok)
	assert.Equal(t, []string{"Python"}, skills)

	_, ok = SkillsLine("Built the ingestion pipeline")
	assert.False(t, ok)

	skills, ok = SkillsLine("Skills:")
	require.True(t, ok)
	assert.Empty(t, skills)
}

func TestLooksLikeDescription(t *testing.T) {
	long := "Led a team of five engineers building the data ingestion platform for enterprise customers."
	assert.True(t, LooksLikeDescription(long))

	// date-like text is never a description
	assert.False(t, LooksLikeDescription("Jun 2020 - Present · this caption is padded to be quite long indeed"))
	// skills lines are never descriptions
	assert.False(t, LooksLikeDescription("Skills: Go · Kubernetes · PostgreSQL · Terraform · AWS · GCP"))
	// short text is never a description
	assert.False(t, LooksLikeDescription("San Francisco Bay Area"))
}
