//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ctlg

import (
	"encoding/json"
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/gen"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"io"
	"strings"
)

// rawcatalog - the parts of a DCAT-US "data.json" that we care about
type rawcatalog struct {
	Dataset []rawdataset `json:"dataset"`
}

type rawdataset struct {
	Identifier json.RawMessage `json:"identifier"`
	OID        struct {
		OID string `json:"$oid"`
	} `json:"_id"`
	AtID        string          `json:"@id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Keyword     json.RawMessage `json:"keyword"`
	Modified    string          `json:"modified"`
	Publisher   struct {
		Name string `json:"name"`
	} `json:"publisher"`
}

// Decode - parse the catalog and flatten it into Dataset records
func Decode(r io.Reader) ([]str.Dataset, str.CatalogSummary, error) {
	var sum str.CatalogSummary
	var rc rawcatalog
	if err := json.NewDecoder(r).Decode(&rc); err != nil {
		return nil, sum, err
	}

	sum.Raw = len(rc.Dataset)

	seen := make(map[string]bool, len(rc.Dataset))
	pubs := make(map[string]bool)
	kws := make(map[string]bool)

	dd := make([]str.Dataset, 0, len(rc.Dataset))
	for i, rd := range rc.Dataset {
		d := str.Dataset{
			ID:          pickid(rd, i),
			Title:       strings.TrimSpace(rd.Title),
			Description: strings.TrimSpace(rd.Description),
			Keywords:    NormalizeKeywords(stringlist(rd.Keyword)),
			Modified:    rd.Modified,
			Publisher:   strings.TrimSpace(rd.Publisher.Name),
		}

		if d.Title == "" && d.Description == "" && len(d.Keywords) == 0 {
			sum.Empty++
			continue
		}
		if seen[d.ID] {
			sum.Duplicates++
			continue
		}
		seen[d.ID] = true

		if d.Publisher != "" {
			pubs[d.Publisher] = true
		}
		for _, k := range d.Keywords {
			kws[k] = true
		}
		dd = append(dd, d)
	}

	sum.Kept = len(dd)
	sum.Keywords = len(kws)
	sum.Publishers = len(pubs)
	return dd, sum, nil
}

// NormalizeKeywords - trim, upper-case, drop empties and repeats; order of first appearance is kept
func NormalizeKeywords(kk []string) []string {
	up := cases.Upper(language.Und)
	nk := make([]string, 0, len(kk))
	for _, k := range kk {
		k = up.String(strings.Join(strings.Fields(k), " "))
		if k != "" {
			nk = append(nk, k)
		}
	}
	return gen.Unique(nk)
}

func pickid(rd rawdataset, i int) string {
	if id := rawstring(rd.Identifier); id != "" {
		return id
	}
	if rd.OID.OID != "" {
		return rd.OID.OID
	}
	if rd.AtID != "" {
		return rd.AtID
	}
	return fmt.Sprintf("dataset-%06d", i)
}

// rawstring - identifiers are usually strings but a few catalogs use numbers
func rawstring(rm json.RawMessage) string {
	if len(rm) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(rm, &s) == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if json.Unmarshal(rm, &n) == nil {
		return n.String()
	}
	return ""
}

// stringlist - "keyword" is a list of strings; tolerate a bare string
func stringlist(rm json.RawMessage) []string {
	if len(rm) == 0 {
		return nil
	}
	var ss []string
	if json.Unmarshal(rm, &ss) == nil {
		return ss
	}
	var s string
	if json.Unmarshal(rm, &s) == nil {
		return []string{s}
	}
	return nil
}

// Summarize - the CatalogSummary of records that were flattened earlier (e.g., a cached copy)
func Summarize(src string, dd []str.Dataset) str.CatalogSummary {
	pubs := make(map[string]bool)
	kws := make(map[string]bool)
	for _, d := range dd {
		if d.Publisher != "" {
			pubs[d.Publisher] = true
		}
		for _, k := range d.Keywords {
			kws[k] = true
		}
	}
	return str.CatalogSummary{
		Source:     src,
		Raw:        len(dd),
		Kept:       len(dd),
		Keywords:   len(kws),
		Publishers: len(pubs),
	}
}
