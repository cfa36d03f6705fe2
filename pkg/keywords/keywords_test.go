package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "empty content",
			content: "",
			want:    []string{},
		},
		{
			name:    "short and stop words dropped",
			content: "le la et un de avec pour",
			want:    []string{},
		},
		{
			name:    "keeps long meaningful tokens",
			content: "La radio communautaire prépare une émission spéciale",
			want:    []string{"radio", "communautaire", "prepare", "emission", "speciale"},
		},
		{
			name:    "accents folded",
			content: "Élections générales précédées de débats",
			want:    []string{"elections", "generales", "precedees", "debats"},
		},
		{
			name:    "punctuation splits tokens",
			content: "budget:2024, croissance; développement!",
			want:    []string{"budget", "2024", "croissance", "developpement"},
		},
		{
			name:    "duplicates removed keeping first occurrence",
			content: "musique danse musique danse musique",
			want:    []string{"musique", "danse"},
		},
		{
			name:    "ceci is not a stop word",
			content: "ceci restera dans les mots extraits",
			want:    []string{"ceci", "restera", "mots", "extraits"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.content))
		})
	}
}

func TestExtractDeterministic(t *testing.T) {
	content := "Une émission spéciale consacrée aux élections générales du pays"
	first := Extract(content)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Extract(content))
	}
}

func TestExtractCapped(t *testing.T) {
	content := ""
	words := []string{
		"alpha1", "bravo2", "charlie3", "delta4", "echo5", "foxtrot6",
		"golf7", "hotel8", "india9", "juliet10", "kilo11", "lima12",
		"mike13", "november14", "oscar15", "papa16", "quebec17", "romeo18",
		"sierra19", "tango20", "uniform21", "victor22", "whiskey23",
	}
	for _, w := range words {
		content += w + " "
	}

	got := Extract(content)
	assert.Len(t, got, MaxKeywords)
	assert.Equal(t, "alpha1", got[0])
	assert.Equal(t, "tango20", got[MaxKeywords-1])
}
