//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// Dataset - one flattened record of the catalog
type Dataset struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Modified    string   `json:"modified,omitempty"`
	Publisher   string   `json:"publisher,omitempty"`
}

// KeywordRow - (id, keyword)
type KeywordRow struct {
	ID      string `json:"id"`
	Keyword string `json:"keyword"`
}

// CatalogSummary - what got fetched and what survived flattening
type CatalogSummary struct {
	Source     string
	Raw        int
	Kept       int
	Duplicates int
	Empty      int
	Keywords   int
	Publishers int
	FromCache  bool
}
