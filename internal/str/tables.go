//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

//
// TIDY TABLES: every analysis yields a slice of one of these
//

// TokenCount - (document, token, count)
type TokenCount struct {
	ID    string `json:"id"`
	Word  string `json:"word"`
	Count int    `json:"n"`
}

// WordCount - a word and its total across the collection
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"n"`
}

// WordPair - two items that co-occur in N documents; Item1 < Item2
type WordPair struct {
	Item1 string `json:"item1"`
	Item2 string `json:"item2"`
	N     int    `json:"n"`
}

// CorPair - phi coefficient of two items' presence across documents
type CorPair struct {
	Item1       string  `json:"item1"`
	Item2       string  `json:"item2"`
	Correlation float64 `json:"correlation"`
}

// TfIdfRow - (document, term, n, tf, idf, tf_idf)
type TfIdfRow struct {
	ID    string  `json:"id"`
	Word  string  `json:"word"`
	N     int     `json:"n"`
	TF    float64 `json:"tf"`
	IDF   float64 `json:"idf"`
	TfIdf float64 `json:"tf_idf"`
}

// KeywordTerm - mean tf-idf of a term within the datasets tagged with a keyword
type KeywordTerm struct {
	Keyword string  `json:"keyword"`
	Word    string  `json:"word"`
	TfIdf   float64 `json:"tf_idf"`
}

// BetaRow - per-topic term probability
type BetaRow struct {
	Topic int     `json:"topic"`
	Term  string  `json:"term"`
	Beta  float64 `json:"beta"`
}

// GammaRow - per-document topic probability
type GammaRow struct {
	Document string  `json:"document"`
	Topic    int     `json:"topic"`
	Gamma    float64 `json:"gamma"`
}

// TopicKeyword - how many well-fitted (gamma > threshold) documents of a topic carry a keyword
type TopicKeyword struct {
	Topic   int    `json:"topic"`
	Keyword string `json:"keyword"`
	N       int    `json:"n"`
}

// TopicWeight - documents per dominant topic and the accumulated gamma of each topic
type TopicWeight struct {
	Topic    int     `json:"topic"`
	Dominant int     `json:"dominant"`
	Weight   float64 `json:"weight"`
}

// PerplexityScore - one fitted topic count and its perplexity
type PerplexityScore struct {
	Topics     int     `json:"topics"`
	Perplexity float64 `json:"perplexity"`
}

// DocPoint - a document placed in two dimensions, labeled with its dominant topic
type DocPoint struct {
	Document string  `json:"document"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Topic    int     `json:"topic"`
}

// Neighbor - a nearby word in an embedding space
type Neighbor struct {
	Probe      string  `json:"probe"`
	Word       string  `json:"word"`
	Similarity float64 `json:"similarity"`
}
