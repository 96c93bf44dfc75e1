package extract

// resolvePages normalizes the caller's page list against the document's page
// count. An empty request means all pages. Out-of-range entries are dropped
// silently; order and duplicates are preserved as requested.
func resolvePages(requested []int, totalPages int) []int {
	if len(requested) == 0 {
		pages := make([]int, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			pages = append(pages, p)
		}
		return pages
	}

	resolved := make([]int, 0, len(requested))
	for _, p := range requested {
		if p >= 1 && p <= totalPages {
			resolved = append(resolved, p)
		}
	}
	return resolved
}
