//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"github.com/e-gun/CatalogTopicMiner/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestApplyArgsOverridesDefaults(t *testing.T) {
	cfg := BuildDefaultConfig()
	args := []string{"-tn", "12", "-sd", "99", "-sw", "4,8", "-kt", "earth science, ozone", "-st", "-ca", "-od", "/tmp/x"}

	act, err := ApplyArgs(cfg, args)
	require.NoError(t, err)
	assert.Equal(t, LaunchRun, act)
	assert.Equal(t, 12, cfg.LdaTopics)
	assert.Equal(t, 99, cfg.LdaSeed)
	assert.Equal(t, []int{4, 8}, cfg.LdaSweep)
	assert.Equal(t, []string{"earth science", "ozone"}, cfg.TfIdfKeywords)
	assert.True(t, cfg.Stem)
	assert.True(t, cfg.CacheCatalog)
	assert.Equal(t, "/tmp/x", cfg.OutDir)
}

func TestApplyArgsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing value", []string{"-tn"}},
		{"not a number", []string{"-sp", "eighty"}},
		{"bad credentials", []string{"-pg", "{not json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ApplyArgs(BuildDefaultConfig(), tt.args)
			assert.Error(t, err)
		})
	}
}

func TestApplyArgsActionsAndPostgres(t *testing.T) {
	cfg := BuildDefaultConfig()
	act, err := ApplyArgs(cfg, []string{"-pg", `{"Pass": "pw", "Host": "db", "Port": 5433, "DBName": "x", "User": "u"}`, "-vv"})
	require.NoError(t, err)
	assert.Equal(t, LaunchVersionVerbose, act)
	assert.True(t, cfg.UsePostgres())
	assert.Equal(t, 5433, cfg.PGLogin.Port)
	assert.True(t, cfg.CacheCatalog)

	act, err = ApplyArgs(BuildDefaultConfig(), []string{"-h"})
	require.NoError(t, err)
	assert.Equal(t, LaunchHelp, act)
}

func TestApplyArgsRejectsSillyTopicCounts(t *testing.T) {
	cfg := BuildDefaultConfig()
	_, err := ApplyArgs(cfg, []string{"-tn", "1", "-it", "0"})
	require.NoError(t, err)
	assert.Equal(t, vv.DEFAULTTOPICS, cfg.LdaTopics)
	assert.Equal(t, vv.LDAITERATIONS, cfg.LdaIterations)
}

func TestBoundModelSettings(t *testing.T) {
	tests := []struct {
		name   string
		topics int
		iter   int
		sweep  []int
		topn   int
		want   [3]int
		wantsw []int
	}{
		{"inside the bounds", 12, 40, []int{4, 8}, 10, [3]int{12, 40, 10}, []int{4, 8}},
		{"too small", 1, 0, nil, 0, [3]int{vv.DEFAULTTOPICS, vv.LDAITERATIONS, vv.DEFAULTTOPN}, nil},
		{"too large", 100000, 1000000, []int{4, 4, 1, 500, 8}, 5000, [3]int{vv.LDAMAXTOPICS, vv.LDAMAXITERATIONS, vv.MAXTOPN}, []int{4, 8}},
		{"long sweep", 8, 10, []int{2, 3, 4, 5, 6, 7, 8, 9}, 5, [3]int{8, 10, 5}, []int{2, 3, 4, 5, 6, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := BuildDefaultConfig()
			cfg.LdaTopics = tt.topics
			cfg.LdaIterations = tt.iter
			cfg.LdaSweep = tt.sweep
			cfg.TopN = tt.topn
			BoundModelSettings(cfg)
			assert.Equal(t, tt.want, [3]int{cfg.LdaTopics, cfg.LdaIterations, cfg.TopN})
			assert.Equal(t, tt.wantsw, cfg.LdaSweep)
		})
	}

	cfg := BuildDefaultConfig()
	_, err := ApplyArgs(cfg, []string{"-tn", "100000", "-it", "1000000"})
	require.NoError(t, err)
	assert.Equal(t, vv.LDAMAXTOPICS, cfg.LdaTopics)
	assert.Equal(t, vv.LDAMAXITERATIONS, cfg.LdaIterations)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()

	cfg := BuildDefaultConfig()
	ok, err := LoadConfigFile(filepath.Join(dir, "absent.json"), cfg)
	require.NoError(t, err)
	assert.False(t, ok)

	fn := filepath.Join(dir, vv.CONFIGBASIC)
	require.NoError(t, os.WriteFile(fn, []byte(`{"LdaTopics": 8, "CatalogURL": "file:///tmp/data.json"}`), 0644))
	ok, err = LoadConfigFile(fn, cfg)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 8, cfg.LdaTopics)
	assert.Equal(t, "file:///tmp/data.json", cfg.CatalogURL)
	assert.Equal(t, vv.DEFAULTSEED, cfg.LdaSeed)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"LdaTopics": "eight"`), 0644))
	_, err = LoadConfigFile(bad, cfg)
	assert.Error(t, err)
	assert.Equal(t, 8, cfg.LdaTopics)
}

func TestHelpTextFillsTemplate(t *testing.T) {
	Msg.SetLevel(0, true)
	h, err := HelpText(BuildDefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, h, vv.DEFAULTCATALOG)
	assert.NotContains(t, h, "{{")
}
