//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/url"
	"testing"
)

func TestPostgresLoginURL(t *testing.T) {
	l := PostgresLogin{Host: "db.local", Port: 5433, User: "ctm_wr", Pass: "p@ss/w:rd?", DBName: "ctmDB"}

	u, err := url.Parse(l.URL(1, 4))
	require.NoError(t, err)
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db.local:5433", u.Host)
	assert.Equal(t, "/ctmDB", u.Path)
	assert.Equal(t, "ctm_wr", u.User.Username())
	pw, ok := u.User.Password()
	assert.True(t, ok)
	assert.Equal(t, "p@ss/w:rd?", pw)
	assert.Equal(t, "1", u.Query().Get("pool_min_conns"))
	assert.Equal(t, "4", u.Query().Get("pool_max_conns"))
}

func TestPostgresLoginRedacted(t *testing.T) {
	l := PostgresLogin{Host: "127.0.0.1", Port: 5432, User: "ctm_wr", Pass: "secret", DBName: "ctmDB"}
	assert.Equal(t, "ctm_wr@127.0.0.1:5432/ctmDB", l.Redacted())
	assert.NotContains(t, l.Redacted(), "secret")
}
