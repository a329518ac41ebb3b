package domain

// KeyPrefix namespaces every key shopsearch writes to the shared store.
const KeyPrefix = "shopsearch:"

// HistoryKey is the storage key name the storefront used for recent searches.
const HistoryKey = "searchHistory"

// MaxHistory caps the recent-search list.
const MaxHistory = 10

// DefaultPopularSearches are the curated dropdown searches shown next to
// catalog completions.
func DefaultPopularSearches() []string {
	return []string{
		"wireless headphones",
		"smart watch",
		"running shoes",
		"casual shirt",
		"gaming mouse",
		"yoga mat",
		"designer handbag",
		"rose gold earrings",
	}
}

// DefaultHistorySeed is stored as history on first start when nothing exists yet.
func DefaultHistorySeed() []string {
	return []string{"wireless headphones", "smart watch"}
}
