// ABOUTME: Path-based page dispatch for the web view
// ABOUTME: Unknown paths fall back to the articles page rather than a 404

package present

// Page identifies one of the site's pages.
type Page int

const (
	PageArticles Page = iota
	PagePress
	PageWordCloud
)

// Page paths
const (
	PathArticles  = "/articles"
	PathPress     = "/press-releases"
	PathWordCloud = "/word-cloud"
)

var pagesByPath = map[string]Page{
	PathArticles:  PageArticles,
	PathPress:     PagePress,
	PathWordCloud: PageWordCloud,
}

// Route maps a request path to a page. Anything unmapped, including "/", is the articles page.
func Route(path string) Page {
	if page, ok := pagesByPath[path]; ok {
		return page
	}
	return PageArticles
}

// Path returns the canonical path of the page.
func (p Page) Path() string {
	switch p {
	case PagePress:
		return PathPress
	case PageWordCloud:
		return PathWordCloud
	default:
		return PathArticles
	}
}

// NavTitle returns the navigation label of the page.
func (p Page) NavTitle() string {
	switch p {
	case PagePress:
		return "Latest Press Releases"
	case PageWordCloud:
		return "Word Cloud"
	default:
		return "Latest Articles"
	}
}

func (p Page) String() string {
	switch p {
	case PagePress:
		return "press"
	case PageWordCloud:
		return "wordcloud"
	default:
		return "articles"
	}
}

// Pages lists every page in navigation order.
func Pages() []Page {
	return []Page{PageArticles, PagePress, PageWordCloud}
}
