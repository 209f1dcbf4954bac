package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"latin words", "Fully Funded Scholarship 2025", "fully-funded-scholarship-2025"},
		{"punctuation dropped", "Master's in A.I. (UK)!", "masters-in-ai-uk"},
		{"whitespace runs", "  Study   in\tGermany \n", "study-in-germany"},
		{"repeated hyphens", "a -- b---c", "a-b-c"},
		{"arabic kept", "منحة دراسية في تركيا", "منحة-دراسية-في-تركيا"},
		{"arabic-indic digits", "منحة ٢٠٢٥", "منحة-٢٠٢٥"},
		{"mixed scripts", "منحة Erasmus+ 2025", "منحة-erasmus-2025"},
		{"accented latin dropped", "Bourse Études", "bourse-tudes"},
		{"nothing left", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.title))
		})
	}
}

func TestGenerateSlugIsIdempotent(t *testing.T) {
	for _, title := range []string{"Hello World", "منحة دراسية", "a--b", "-x-"} {
		once := GenerateSlug(title)
		assert.Equal(t, once, GenerateSlug(once), title)
	}
}

func TestIsSlug(t *testing.T) {
	assert.True(t, IsSlug("study-in-germany"))
	assert.True(t, IsSlug("منحة-٢٠٢٥"))
	assert.False(t, IsSlug(""))
	assert.False(t, IsSlug("Study-In-Germany"))
	assert.False(t, IsSlug("study in germany"))
	assert.False(t, IsSlug("-leading"))
}

func TestParseObjectID(t *testing.T) {
	_, err := ParseObjectID("not-an-id")
	assert.Error(t, err)

	oid, err := ParseObjectID("64b7f0c2a1b2c3d4e5f60718")
	assert.NoError(t, err)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", oid.Hex())
}
