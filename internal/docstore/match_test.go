package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValuesEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b interface{}
		want bool
	}{
		{"equal strings", "42", "42", true},
		{"different strings", "42", "43", false},
		{"equal numbers across types", float64(42), int(42), true},
		{"string never equals number", "42", float64(42), false},
		{"number never equals string", float64(42), "42", false},
		{"bools", true, true, true},
		{"nil against nil", nil, nil, true},
		{"nil against string", nil, "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValuesEqual(tt.a, tt.b))
		})
	}
}

func TestValueAtPath(t *testing.T) {
	data := map[string]interface{}{
		"context": map[string]interface{}{
			"showPlanId": "sp1",
		},
		"content": "texte",
	}

	v, ok := ValueAtPath(data, "context.showPlanId")
	assert.True(t, ok)
	assert.Equal(t, "sp1", v)

	_, ok = ValueAtPath(data, "context.missing")
	assert.False(t, ok)

	_, ok = ValueAtPath(data, "content.nested")
	assert.False(t, ok)
}

func TestSetAtPathCreatesIntermediates(t *testing.T) {
	data := map[string]interface{}{}

	SetAtPath(data, "metadata.keywords", []interface{}{"mot"})
	SetAtPath(data, "metadata.category", "sport")

	metadata := data["metadata"].(map[string]interface{})
	assert.Equal(t, []interface{}{"mot"}, metadata["keywords"])
	assert.Equal(t, "sport", metadata["category"])
}

func TestDeepCopyDataIsolation(t *testing.T) {
	original := map[string]interface{}{
		"metadata": map[string]interface{}{
			"tags": []interface{}{"a"},
		},
	}

	clone := DeepCopyData(original)
	clone["metadata"].(map[string]interface{})["tags"].([]interface{})[0] = "b"

	assert.Equal(t, "a", original["metadata"].(map[string]interface{})["tags"].([]interface{})[0])
}
