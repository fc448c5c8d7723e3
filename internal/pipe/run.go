//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package pipe

import (
	"context"
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/cooc"
	"github.com/e-gun/CatalogTopicMiner/internal/lnch"
	"github.com/e-gun/CatalogTopicMiner/internal/rpt"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/e-gun/CatalogTopicMiner/internal/tfidf"
	"github.com/e-gun/CatalogTopicMiner/internal/topics"
	"github.com/e-gun/CatalogTopicMiner/internal/txt"
	"github.com/e-gun/CatalogTopicMiner/internal/vec"
	"github.com/e-gun/CatalogTopicMiner/internal/vlt"
	"github.com/e-gun/CatalogTopicMiner/internal/vv"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"os"
	"time"
)

var Msg = lnch.Msg

const (
	STAGEFETCH  = "fetch"
	STAGETOKENS = "tokenize"
	STAGECOOC   = "cooccurrence"
	STAGETFIDF  = "tfidf"
	STAGETOPICS = "topics"
	STAGEVEC    = "embeddings"
)

// Progress - told about each stage as it starts
type Progress func(stage string, msg string)

// corpus - what the tokenizer hands to the analyses
type corpus struct {
	data   []str.Dataset
	titles []str.TokenCount
	descs  []str.TokenCount
	kwrows []str.KeywordRow
	stops  *txt.StopWords
	unnest txt.Unnester
}

// Run - fetch, tokenize, then the co-occurrence, tf-idf, and topic analyses side by side, then (maybe) embeddings
func Run(ctx context.Context, cfg str.CurrentConfiguration, progress Progress) (*rpt.Report, error) {
	const (
		MSG1 = "Run(): %d datasets; %d title tokens; %d description tokens; %d keyword rows"
	)

	if progress == nil {
		progress = func(string, string) {}
	}

	start := time.Now()
	previous := start

	step := func(stage string, msg string) error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: %w", stage, err)
		}
		progress(stage, msg)
		return nil
	}

	r := &rpt.Report{
		RunID:     vlt.NewRunID(),
		Generated: time.Now(),
		Settings: rpt.Settings{
			Source:     cfg.CatalogURL,
			Topics:     cfg.LdaTopics,
			Seed:       cfg.LdaSeed,
			Iterations: cfg.LdaIterations,
			Stemmed:    cfg.Stem,
			TopN:       cfg.TopN,
		},
	}

	// [A] the catalog

	if err := step(STAGEFETCH, cfg.CatalogURL); err != nil {
		return nil, err
	}
	dd, sum, err := LoadCatalog(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", STAGEFETCH, err)
	}
	r.Summary = sum
	Msg.Timer("P1", "catalog loaded", start, previous)
	previous = time.Now()

	// [B] tokens

	if err = step(STAGETOKENS, "titles, descriptions, and keywords"); err != nil {
		return nil, err
	}
	c := tokenize(dd, cfg)
	r.TitleWords = txt.CountWords(c.titles)
	r.DescWords = txt.CountWords(c.descs)
	r.Keywords = txt.CountKeywords(c.kwrows)

	p := message.NewPrinter(language.English)
	Msg.PEEK(p.Sprintf(MSG1, len(dd), len(c.titles), len(c.descs), len(c.kwrows)))
	Msg.Timer("P2", "tokenized", start, previous)
	previous = time.Now()

	// [C] three independent analyses

	eg, egctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := step(STAGECOOC, "pairs and correlations"); err != nil {
			return err
		}
		cooccurrence(r, c)
		return nil
	})

	eg.Go(func() error {
		if err := step(STAGETFIDF, "weighting description words"); err != nil {
			return err
		}
		weighting(r, c, cfg)
		return nil
	})

	if !cfg.LdaSkip {
		eg.Go(func() error {
			if err := step(STAGETOPICS, fmt.Sprintf("fitting %d topics", cfg.LdaTopics)); err != nil {
				return err
			}
			if err := modeltopics(egctx, r, c, cfg); err != nil {
				return fmt.Errorf("%s: %w", STAGETOPICS, err)
			}
			return nil
		})
	}

	if err = eg.Wait(); err != nil {
		return nil, err
	}
	Msg.Timer("P3", "analyses complete", start, previous)
	previous = time.Now()

	// [D] embeddings

	if cfg.Neighbors {
		if err = step(STAGEVEC, "training word2vec"); err != nil {
			return nil, err
		}
		if err = neighbors(r, c, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", STAGEVEC, err)
		}
		Msg.Timer("P4", "embeddings trained", start, previous)
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	return r, nil
}

func tokenize(dd []str.Dataset, cfg str.CurrentConfiguration) corpus {
	stops := txt.UserStopWords()
	u := txt.Unnester{Stops: stops, Stem: cfg.Stem, Workers: cfg.WorkerCount}
	return corpus{
		data:   dd,
		titles: u.Unnest(dd, txt.FieldTitle),
		descs:  u.Unnest(dd, txt.FieldDescription),
		kwrows: txt.KeywordTable(dd),
		stops:  stops,
		unnest: u,
	}
}

// pairfloor - the pair thresholds suit the full catalog; a smaller one gets proportionally smaller thresholds
func pairfloor(base int, ndocs int) int {
	if ndocs >= vv.PAIRSCALEDOCS {
		return base
	}
	return max(vv.MINPAIRFLOOR, base*ndocs/vv.PAIRSCALEDOCS)
}

func cooccurrence(r *rpt.Report, c corpus) {
	n := len(c.data)
	kt := txt.KeywordRowsAsTokens(c.kwrows)
	r.TitlePairs = cooc.FilterPairs(cooc.PairwiseCount(c.titles), pairfloor(vv.TITLEMINPAIR, n))
	r.DescPairs = cooc.FilterPairs(cooc.PairwiseCount(c.descs), pairfloor(vv.DESCMINPAIR, n))
	r.KeywordPairs = cooc.FilterPairs(cooc.PairwiseCount(kt), pairfloor(vv.KEYWORDMINPAIR, n))
	r.KeywordCor = cooc.FilterCor(cooc.PairwiseCor(kt, pairfloor(vv.KEYWORDMINDOCS, n)), vv.KEYWORDMINCOR)
}

func weighting(r *rpt.Report, c corpus, cfg str.CurrentConfiguration) {
	rows := tfidf.Bind(c.descs)
	r.TfIdf = rows
	r.TfIdfTop = tfidf.Top(rows, max(cfg.TopN, 1))

	chosen := cfg.TfIdfKeywords
	if len(chosen) == 0 {
		for i := 0; i < len(r.Keywords) && i < vv.TFIDFKEYWORDCOUNT; i++ {
			chosen = append(chosen, r.Keywords[i].Word)
		}
	}
	r.TfIdfByKeyword = tfidf.ByKeyword(rows, c.kwrows, chosen, vv.TFIDFPERKEYWORD)
}

func modeltopics(ctx context.Context, r *rpt.Report, c corpus, cfg str.CurrentConfiguration) error {
	dtm, err := topics.BuildDTM(c.descs)
	if err != nil {
		return err
	}

	o := topics.FitOptions{
		Topics:     cfg.LdaTopics,
		Seed:       cfg.LdaSeed,
		Iterations: cfg.LdaIterations,
		Processes:  cfg.WorkerCount,
	}

	m, err := topics.Fit(dtm, o)
	if err != nil {
		return err
	}

	r.Beta = m.Beta()
	r.Gamma = m.Gamma()
	r.TopTerms = m.TopTerms(vv.TOPTERMSPERTOPIC)
	r.TopicWeights = m.DominantTopics()
	r.TopicKeywords = topics.KeywordsByTopic(r.Gamma, c.kwrows, vv.GAMMATHRESHOLD, vv.KEYWORDSPERTOPIC)
	r.GammaHist = m.GammaDistribution(vv.GAMMAHISTBINS)
	r.Perplexity = m.Perplexity()

	if cfg.LdaTSNE {
		r.Points = m.Embed2D(vv.TSNEMAXDOCS)
	}

	if len(cfg.LdaSweep) > 0 {
		r.Sweep, err = topics.Sweep(ctx, dtm, cfg.LdaSweep, o)
		if err != nil {
			return err
		}
	}
	return nil
}

func neighbors(r *rpt.Report, c corpus, cfg str.CurrentConfiguration) error {
	text := vec.BuildTextBlock(c.unnest, c.data)
	embs, err := vec.GenerateEmbeddings(text, vec.W2VConfig(configdir(), cfg.WorkerCount))
	if err != nil {
		return err
	}

	probes := cfg.NeighborProbes
	if len(probes) == 0 {
		probes = vec.DefaultProbes(r.Keywords, c.stops, vv.NNPROBES)
	}

	r.Neighbors, err = vec.Neighbors(embs, probes, vv.NNNEIGHBORS)
	return err
}

// configdir - "~/.config/"; the working directory if there is no home
func configdir() string {
	h, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return fmt.Sprintf(vv.CONFIGALTAPTH, h)
}
