package docindex

// Category distinguishes whole-page records from sub-section records.
type Category string

// Record categories emitted by the generator.
const (
	CategoryPage    Category = "page"
	CategorySection Category = "section"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c == CategoryPage || c == CategorySection
}

// Record is one addressable unit of documentation content: a page or a
// named section within a page.
type Record struct {
	// Location is the page URL with an optional anchor. Page-root records
	// use an empty location.
	Location string   `json:"location"`
	Page     string   `json:"page"`
	Title    string   `json:"title"`
	Text     string   `json:"text"`
	Category Category `json:"category"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if !r.Category.Valid() {
		return Errorf(EINVALID, "record category %q must be %q or %q", r.Category, CategoryPage, CategorySection)
	}
	return nil
}

// Link returns the record location for display. Page-root records, whose
// location is empty, are shown as "/".
func (r *Record) Link() string {
	if r.Location == "" {
		return "/"
	}
	return r.Location
}

// Pages returns the distinct page names of records in first-seen order.
func Pages(records []Record) []string {
	seen := make(map[string]struct{})
	var pages []string
	for _, r := range records {
		if _, ok := seen[r.Page]; ok {
			continue
		}
		seen[r.Page] = struct{}{}
		pages = append(pages, r.Page)
	}
	return pages
}
