package gjson_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/gjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stylingJSON = `{"docs":[` +
	`{"location":"#A","page":"Home","title":"Styling","text":"","category":"section"},` +
	`{"location":"#B","page":"Home","title":"Intro","text":"styling basics","category":"section"}]}`

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	t.Run("decodes bare JSON container", func(t *testing.T) {
		t.Parallel()

		records, err := gjson.NewDecoder().Decode([]byte(stylingJSON))

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, docindex.Record{
			Location: "#A",
			Page:     "Home",
			Title:    "Styling",
			Text:     "",
			Category: docindex.CategorySection,
		}, records[0])
		assert.Equal(t, "styling basics", records[1].Text)
	})

	t.Run("decodes script assignment", func(t *testing.T) {
		t.Parallel()

		data := "var documenterSearchIndex = " + stylingJSON + ";\n"

		records, err := gjson.NewDecoder().Decode([]byte(data))

		require.NoError(t, err)
		bare, err := gjson.NewDecoder().Decode([]byte(stylingJSON))
		require.NoError(t, err)
		assert.Equal(t, bare, records)
	})

	t.Run("decodes script assignment with newline before array", func(t *testing.T) {
		t.Parallel()

		data := "var documenterSearchIndex = {\"docs\":\n[{\"location\":\"\",\"page\":\"Home\",\"title\":\"Home\",\"text\":\"a\\nb\",\"category\":\"page\"}]}\n"

		records, err := gjson.NewDecoder().Decode([]byte(data))

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "", records[0].Location)
		assert.Equal(t, "a\nb", records[0].Text)
		assert.Equal(t, docindex.CategoryPage, records[0].Category)
	})

	t.Run("decodes empty record sequence", func(t *testing.T) {
		t.Parallel()

		records, err := gjson.NewDecoder().Decode([]byte(`{"docs":[]}`))

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		dec := gjson.NewDecoder()
		first, err := dec.Decode([]byte(stylingJSON))
		require.NoError(t, err)
		second, err := dec.Decode([]byte(stylingJSON))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("decodes the sample artifact", func(t *testing.T) {
		t.Parallel()

		data, err := os.ReadFile(filepath.Join("testdata", "search_index.js"))
		require.NoError(t, err)

		records, err := gjson.NewDecoder().Decode(data)

		require.NoError(t, err)
		require.NotEmpty(t, records)
		assert.Equal(t, "#How-to-use-JSServe-WGLMakie", records[0].Location)
		assert.Equal(t, docindex.CategorySection, records[0].Category)
		assert.Equal(t, []string{"Home"}, docindex.Pages(records))
	})
}

func TestDecoder_Decode_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		message string
	}{
		{"empty input", "", "artifact is empty"},
		{"invalid JSON", `{"docs": [`, "artifact is not valid JSON"},
		{"top-level array", `[]`, `artifact must be an object with a "docs" field`},
		{"missing docs", `{"records": []}`, `artifact is missing "docs"`},
		{"docs not an array", `{"docs": {}}`, `artifact "docs" must be an array`},
		{"record not an object", `{"docs": ["x"]}`, "record 0 must be an object"},
		{
			"missing location",
			`{"docs":[{"page":"Home","title":"Styling","text":"","category":"section"}]}`,
			`record 0: missing "location"`,
		},
		{
			"missing category in second record",
			`{"docs":[{"location":"","page":"Home","title":"Home","text":"","category":"page"},` +
				`{"location":"#x","page":"Home","title":"X","text":""}]}`,
			`record 1: missing "category"`,
		},
		{
			"non-string title",
			`{"docs":[{"location":"#x","page":"Home","title":1,"text":"","category":"section"}]}`,
			`record 0: "title" must be a string`,
		},
		{
			"null text",
			`{"docs":[{"location":"#x","page":"Home","title":"X","text":null,"category":"section"}]}`,
			`record 0: "text" must be a string`,
		},
		{
			"unknown category",
			`{"docs":[{"location":"#x","page":"Home","title":"X","text":"","category":"chapter"}]}`,
			`record 0: unknown category "chapter"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			records, err := gjson.NewDecoder().Decode([]byte(tt.data))

			require.Error(t, err)
			assert.Nil(t, records)
			assert.Equal(t, docindex.EMALFORMED, docindex.ErrorCode(err))
			assert.Equal(t, tt.message, docindex.ErrorMessage(err))
		})
	}
}
