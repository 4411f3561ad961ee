package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "skills", wantErr: false},
		{name: "kebab", input: "development-software", wantErr: false},
		{name: "with digits", input: "web3-tools", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "slash", input: "skills/go", wantErr: true},
		{name: "uppercase", input: "Skills", wantErr: true},
		{name: "underscore", input: "learn_skills", wantErr: true},
		{name: "spaces", input: "data science", wantErr: true},
		{name: "leading dash", input: "-skills", wantErr: true},
		{name: "double dash", input: "data--science", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentifier(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParsePath(t *testing.T) {
	p, err := ParsePath("skills/development-software/go")
	assert.NoError(t, err)
	assert.Equal(t, "go", p.Name())
	assert.Equal(t, "development-software", p.Parent())

	_, err = ParsePath("skills//go")
	assert.Error(t, err)

	_, err = ParsePath("skills/Go")
	assert.Error(t, err)
}

func TestPathSingleElement(t *testing.T) {
	p := JoinPath("skills")
	assert.Equal(t, "skills", p.Name())
	assert.Equal(t, "", p.Parent())
}

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, ValidateTitle("Development Software"))
	assert.Error(t, ValidateTitle(" Development Software"))
	assert.Error(t, ValidateTitle("Development Software "))
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "development software", want: "Development Software"},
		{input: "maps of the world", want: "Maps of the World"},
		{input: "The Art of War", want: "The Art of War"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TitleCase(tt.input))
	}

	assert.True(t, IsTitleCase("Civic Tech"))
	assert.False(t, IsTitleCase("civic tech"))
}
