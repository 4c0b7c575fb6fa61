// Package gjson decodes search index artifacts using tidwall/gjson.
package gjson

import (
	"bytes"
	"regexp"

	"github.com/fwojciec/docindex"
	"github.com/tidwall/gjson"
)

// Ensure Decoder implements docindex.ArtifactDecoder at compile time.
var _ docindex.ArtifactDecoder = (*Decoder)(nil)

// DocsKey is the top-level key holding the record sequence.
const DocsKey = "docs"

// recordKeys lists the keys every record object must carry.
var recordKeys = []string{"location", "page", "title", "text", "category"}

// assignmentRe matches a JavaScript assignment prefix such as
// "var documenterSearchIndex = ".
var assignmentRe = regexp.MustCompile(`^(?:(?:var|let|const)\s+)?[A-Za-z_$][\w$.]*\s*=\s*`)

var bom = []byte("\xef\xbb\xbf")

// Decoder decodes artifacts stored either as a bare JSON object or as a
// script assigning that object to a variable.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode implements docindex.ArtifactDecoder.
func (d *Decoder) Decode(data []byte) ([]docindex.Record, error) {
	data = unwrap(data)
	if len(data) == 0 {
		return nil, docindex.Malformedf("artifact is empty")
	}
	if !gjson.ValidBytes(data) {
		return nil, docindex.Malformedf("artifact is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, docindex.Malformedf("artifact must be an object with a %q field", DocsKey)
	}

	docs := root.Get(DocsKey)
	if !docs.Exists() {
		return nil, docindex.Malformedf("artifact is missing %q", DocsKey)
	}
	if !docs.IsArray() {
		return nil, docindex.Malformedf("artifact %q must be an array", DocsKey)
	}

	elems := docs.Array()
	records := make([]docindex.Record, 0, len(elems))
	for i, elem := range elems {
		r, err := decodeRecord(i, elem)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func decodeRecord(i int, elem gjson.Result) (docindex.Record, error) {
	if !elem.IsObject() {
		return docindex.Record{}, docindex.Malformedf("record %d must be an object", i)
	}

	values := make(map[string]string, len(recordKeys))
	for _, key := range recordKeys {
		v := elem.Get(key)
		if !v.Exists() {
			return docindex.Record{}, docindex.Malformedf("record %d: missing %q", i, key)
		}
		if v.Type != gjson.String {
			return docindex.Record{}, docindex.Malformedf("record %d: %q must be a string", i, key)
		}
		values[key] = v.Str
	}

	r := docindex.Record{
		Location: values["location"],
		Page:     values["page"],
		Title:    values["title"],
		Text:     values["text"],
		Category: docindex.Category(values["category"]),
	}
	if !r.Category.Valid() {
		return docindex.Record{}, docindex.Malformedf("record %d: unknown category %q", i, r.Category)
	}
	return r, nil
}

// unwrap strips a byte order mark, a leading variable assignment and a
// trailing semicolon, leaving the JSON value.
func unwrap(data []byte) []byte {
	data = bytes.TrimPrefix(data, bom)
	data = bytes.TrimSpace(data)
	if loc := assignmentRe.FindIndex(data); loc != nil {
		data = data[loc[1]:]
	}
	data = bytes.TrimSuffix(data, []byte(";"))
	return bytes.TrimSpace(data)
}
