package pagetext

// Extractor turns raw HTML into readable plain text.
type Extractor interface {
	// Extract returns the readable text of the page.
	// An empty string means the page had nothing worth keeping; it is not an error.
	Extract(html string) (string, error)
}

// ContentResult holds the main content of an HTML page.
type ContentResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// ContentExtractor isolates the main content of an HTML page, removing boilerplate.
type ContentExtractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ContentResult, error)
}
