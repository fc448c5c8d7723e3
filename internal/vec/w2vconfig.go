//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"encoding/json"
	"github.com/e-gun/CatalogTopicMiner/internal/vv"
	"github.com/e-gun/wego/pkg/model/word2vec"
	"os"
	"path/filepath"
)

//
// WEGO NOTES AND DEFAULTS
//

// DefaultW2VVectors - catalog descriptions are short: a smaller model than wego's default
var DefaultW2VVectors = word2vec.Options{
	BatchSize:          1024,
	Dim:                vv.NNDIM,
	DocInMemory:        true,
	Goroutines:         4,
	Initlr:             0.025,
	Iter:               vv.NNITER,
	LogBatch:           100000,
	MaxCount:           -1,
	MaxDepth:           150,
	MinCount:           vv.NNMINCOUNT,
	MinLR:              0.0000025,
	ModelType:          "skipgram", // "cbow" and "skipgram" available
	NegativeSampleSize: 5,
	OptimizerType:      "hs",
	SubsampleThreshold: 0.001,
	ToLower:            false,
	UpdateLRBatch:      100000,
	Verbose:            false,
	Window:             vv.NNWINDOW,
}

// W2VConfig - read the vv.CONFIGW2V file in dir and return word2vec.Options; if it does not exist, generate it
func W2VConfig(dir string, workers int) word2vec.Options {
	const (
		ERR1 = "W2VConfig() failed to parse "
		MSG1 = "wrote default vector configuration file "
		MSG2 = "read vector configuration from "
	)

	cfg := DefaultW2VVectors
	cfg.Goroutines = max(workers, 1)

	fn := filepath.Join(dir, vv.CONFIGW2V)
	_, missing := os.Stat(fn)

	if missing != nil {
		content, err := json.MarshalIndent(cfg, "", vv.JSONINDENT)
		Msg.EC(err)
		err = os.WriteFile(fn, content, vv.WRITEPERMS)
		Msg.EC(err)
		if err == nil {
			Msg.PEEK(MSG1 + fn)
		}
		return cfg
	}

	content, err := os.ReadFile(fn)
	vc := DefaultW2VVectors
	if err == nil {
		err = json.Unmarshal(content, &vc)
	}
	if err != nil {
		Msg.CRIT(ERR1 + fn)
		return cfg
	}
	Msg.TMI(MSG2 + fn)
	return vc
}
