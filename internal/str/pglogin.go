//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"fmt"
	"net/url"
)

// PostgresLogin - where the catalog cache lives when it is kept in PostgreSQL; "-pg" takes it as JSON
type PostgresLogin struct {
	Host   string `json:"Host"`
	Port   int    `json:"Port"`
	User   string `json:"User"`
	Pass   string `json:"Pass"`
	DBName string `json:"DBName"`
}

// URL - a pgx connection string; user and password are escaped
func (l PostgresLogin) URL(minconns int, maxconns int) string {
	q := url.Values{}
	q.Set("pool_min_conns", fmt.Sprintf("%d", minconns))
	q.Set("pool_max_conns", fmt.Sprintf("%d", maxconns))
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(l.User, l.Pass),
		Host:     fmt.Sprintf("%s:%d", l.Host, l.Port),
		Path:     "/" + l.DBName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// Redacted - "ctm_wr@127.0.0.1:5432/ctmDB": safe for the terminal
func (l PostgresLogin) Redacted() string {
	return fmt.Sprintf("%s@%s:%d/%s", l.User, l.Host, l.Port, l.DBName)
}
