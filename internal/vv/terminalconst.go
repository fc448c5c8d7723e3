//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	TERMINALTEXT = `Copyright (C) %s / %s
      %s

      This program comes with ABSOLUTELY NO WARRANTY; without even the
      implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.

      This is free software, and you are welcome to redistribute it and/or
      modify it under the terms of the GNU General Public License version 3.`

	PROJYEAR = "2024"
	PROJAUTH = "E. Gunderson"
	PROJURL  = "https://github.com/e-gun/CatalogTopicMiner"

	HELPTEXTTEMPLATE = `S3command line optionsS0:
   C1-bwC0          disable color output in the console
   C1-caC0          use the local catalog cache; fetch and store only if the cache is empty
   C1-ctC0 C2{string}C0 catalog url or file [C6currentC0: C3{{.catalog}}C0]
   C1-elC0 C2{num}C0    set echo server log level (C10-3C0) [C6currentC0: C3{{.echoll}}C0]
   C1-glC0 C2{num}C0    set golang log level (C10-5C0) [C6currentC0: C3{{.ctmll}}C0]
   C1-gzC0          enable gzip compression of the server's output
   C1-hC0           print this help information
   C1-itC0 C2{num}C0    LDA iterations [C6currentC0: C3{{.iter}}C0]
   C1-ktC0 C2{string}C0 comma-separated keywords for the tf-idf by keyword charts [C6currentC0: C3{{.tfkw}}C0]
   C1-ldC0          skip topic modeling
   C1-nnC0          train word embeddings and report nearest neighbors
   C1-odC0 C2{string}C0 output folder for the report [C6currentC0: C3{{.outdir}}C0]
   C1-pcC0          enable CPU profiling run
   C1-pgC0 C2{string}C0 supply full PostgreSQL credentials and cache the catalog there C4(*)C0
   C1-pmC0          enable MEM profiling run
   C1-qC0           quiet startup: suppress copyright notice
   C1-rfC0          refetch the catalog even if a cached copy exists
   C1-saC0 C2{string}C0 server IP address [C6currentC0: C3{{.host}}C0]
   C1-sdC0 C2{num}C0    LDA random seed [C6currentC0: C3{{.seed}}C0]
   C1-spC0 C2{num}C0    server port [C6currentC0: C3{{.port}}C0]
   C1-stC0          stem tokens
   C1-svC0          serve the report via http instead of exiting
   C1-swC0 C2{string}C0 comma-separated topic counts to compare by perplexity, e.g. C38,16,24C0
   C1-tnC0 C2{num}C0    number of topics [C6currentC0: C3{{.topics}}C0]
   C1-tsC0          draw a t-SNE map of the document topic mixtures
   C1-vC0           print version info and exit
   C1-vvC0          print full version info and exit
   C1-wcC0 C2{int}C0    number of workers [C1cpu_countC0 is C3{{.cpus}}C0][C6currentC0: C3{{.workers}}C0]
     (*) S3exampleS0:
         C4"{\"Pass\": \"YOURPASSWORDHERE\" ,\"Host\": \"127.0.0.1\", \"Port\": 5432, \"DBName\": \"ctmDB\" ,\"User\": \"ctm_wr\"}"C0

     S1NB:S0 a properly formatted version of "C3{{.conffile}}C0" in "C3{{.home}}C0" configures everything for you.
`
)
