//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

const (
	MYNAME    = "Catalog Topic Miner"
	SHORTNAME = "CTM"
	VERSION   = "0.4.2"

	BLACKANDWHITE  = false
	CONFIGALTAPTH  = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC    = "ctm-conf.json"
	CONFIGSTOPS    = "ctm-stops.json"
	CONFIGW2V      = "ctm-w2v.json"
	CACHEFOLDER    = "ctm"
	CACHEFILE      = "catalog.sqlite"
	DEFAULTCATALOG = "https://data.nasa.gov/data.json"
	DEFAULTOUTDIR  = "ctm-report"
	REPORTFILE     = "report.html"
	JSONINDENT     = "  "
	WRITEPERMS     = 0644
	DIRPERMS       = 0755

	DEFAULTGOLOGLEVEL   = 0
	DEFAULTECHOLOGLEVEL = 0
	FETCHTIMEOUT        = 120 * time.Second
	MAXCATALOGBYTES     = 512 << 20 // data.json is c. 100MB; do not read anything absurd

	// 24 topics, seed 1234: the usual fit for the NASA catalog
	DEFAULTTOPICS     = 24
	DEFAULTSEED       = 1234
	LDAITERATIONS     = 50
	LDATRANSFORMPASS  = LDAITERATIONS / 2
	TOPTERMSPERTOPIC  = 10
	GAMMATHRESHOLD    = 0.9
	KEYWORDSPERTOPIC  = 5
	GAMMAHISTBINS     = 20
	TSNEMAXDOCS       = 2000
	TSNEPERPLEX       = 30
	TSNELEARNRT       = 100
	TSNEMAXITER       = 300
	LDAMAXTOPICS      = 64
	LDAMAXITERATIONS  = 500
	LDAMAXSWEEPFITS   = 6
	MAXTOPN           = 100
	DEFAULTSWEEP      = "" // e.g. "8,16,24,32"
	DEFAULTTOPN       = 15
	DEFAULTTFIDFKW    = "" // empty: use the most frequent keywords
	TFIDFKEYWORDCOUNT = 6
	TFIDFPERKEYWORD   = 10

	// pair thresholds as used for the network plots
	TITLEMINPAIR   = 250
	DESCMINPAIR    = 5000
	KEYWORDMINPAIR = 700
	KEYWORDMINCOR  = 0.15
	KEYWORDMINDOCS = 50
	MAXNETWORKEDGE = 150
	PAIRSCALEDOCS  = 32089 // catalog size those thresholds suit; smaller catalogs scale them down
	MINPAIRFLOOR   = 2

	// word embeddings
	NNDIM       = 100
	NNITER      = 10
	NNWINDOW    = 8
	NNMINCOUNT  = 10
	NNNEIGHBORS = 8
	NNPROBES    = 6

	DEFAULTPSQLHOST = "127.0.0.1"
	DEFAULTPSQLUSER = "ctm_wr"
	DEFAULTPSQLPORT = 5432
	DEFAULTPSQLDB   = "ctmDB"

	SERVEDFROMHOST           = "127.0.0.1"
	SERVEDFROMPORT           = 8000
	TIMEOUTRD                = 15 * time.Second
	TIMEOUTWR                = 120 * time.Second
	USEGZIP                  = false
	WSPOLLINGPAUSE           = 250 * time.Millisecond
	MAXECHOREQPERSECONDPERIP = 60
	MAXACTIVERUNS            = 1
	MAXRUNSKEPT              = 8
)
