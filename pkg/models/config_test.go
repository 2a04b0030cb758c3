package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxt-gen-cli/nxt-gen/pkg/models"
)

func TestParseUILibrary(t *testing.T) {
	tests := []struct {
		in      string
		want    models.UILibrary
		wantErr bool
	}{
		{"none", models.UINone, false},
		{"shadcn", models.UIShadcn, false},
		{"HeroUI", models.UIHeroUI, false},
		{" both ", models.UIBoth, false},
		{"bootstrap", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := models.ParseUILibrary(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "shadcn, heroui, both, none")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExamples(t *testing.T) {
	got, err := models.ParseExamples("CRUD")
	require.NoError(t, err)
	assert.Equal(t, models.ExamplesCRUD, got)

	_, err = models.ParseExamples("blog")
	assert.Error(t, err)
}

func TestUILibraryMembership(t *testing.T) {
	assert.True(t, models.UIBoth.HasShadcn())
	assert.True(t, models.UIBoth.HasHeroUI())
	assert.True(t, models.UIShadcn.HasShadcn())
	assert.False(t, models.UIShadcn.HasHeroUI())
	assert.False(t, models.UINone.HasShadcn())
	assert.False(t, models.UINone.HasHeroUI())
}

func TestExamplesMembership(t *testing.T) {
	assert.True(t, models.ExamplesBoth.HasCRUD())
	assert.True(t, models.ExamplesBoth.HasAuth())
	assert.False(t, models.ExamplesCRUD.HasAuth())
	assert.False(t, models.ExamplesAuth.HasCRUD())
	assert.False(t, models.ExamplesNone.HasCRUD())
}
