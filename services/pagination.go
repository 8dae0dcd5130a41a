package services

// Page sizes offered by the dashboard selector.
var pageSizes = []int{10, 20, 50}

const DefaultPageSize = 10

func NormalizePageSize(n int) int {
	for _, s := range pageSizes {
		if n == s {
			return n
		}
	}
	return DefaultPageSize
}

// TotalPages is max(1, ceil(total/pageSize)); an empty list still has one
// valid page.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
