//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	BlackAndWhite  bool
	CacheCatalog   bool
	CatalogURL     string
	EchoLog        int // 0: "none", 1: "terse", 2: "prolix", 3: "prolix+remoteip"
	Gzip           bool
	HostIP         string
	HostPort       int
	LdaIterations  int
	LdaSeed        int
	LdaSkip        bool
	LdaSweep       []int
	LdaTopics      int
	LdaTSNE        bool
	LogLevel       int
	NeighborProbes []string
	Neighbors      bool
	OutDir         string
	PGLogin        PostgresLogin
	ProfileCPU     bool
	ProfileMEM     bool
	QuietStart     bool
	Refetch        bool
	Serve          bool
	Stem           bool
	TfIdfKeywords  []string
	TopN           int
	WorkerCount    int
}

// UsePostgres - a PostgresLogin with a password means the catalog cache lives in PostgreSQL instead of SQLite
func (c CurrentConfiguration) UsePostgres() bool {
	return c.PGLogin.Pass != ""
}
