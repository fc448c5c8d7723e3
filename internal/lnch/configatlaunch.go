//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/gen"
	"github.com/e-gun/CatalogTopicMiner/internal/mm"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/e-gun/CatalogTopicMiner/internal/vv"
	"os"
	"runtime"
	"strconv"
	"text/template"
)

var (
	Config = BuildDefaultConfig()
	Msg    = mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION)
)

// LaunchAction - what main() should do after the flags are read
type LaunchAction int

const (
	LaunchRun LaunchAction = iota
	LaunchHelp
	LaunchVersion
	LaunchVersionVerbose
)

// ConfigAtLaunch - read the configuration values from JSON and/or command line
func ConfigAtLaunch() LaunchAction {
	const (
		FAIL1 = "Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead."
		FAIL2 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
		MSG1  = "'%s'%s loaded"
	)

	Config = BuildDefaultConfig()

	cfgfile := ConfigFilePath()
	loaded, err := LoadConfigFile(cfgfile, Config)
	if err != nil {
		Msg.CRIT(fmt.Sprintf(FAIL1, cfgfile))
	}

	act, err := ApplyArgs(Config, os.Args[1:])
	if err != nil {
		Msg.Fatal(err)
	}

	UpdateMessageMakerWithConfig(Msg)

	y := ""
	if !loaded {
		y = " *not*"
	}
	Msg.TMI(fmt.Sprintf(MSG1, cfgfile, y))

	if Config.WorkerCount > runtime.NumCPU() {
		Msg.CRIT(fmt.Sprintf(FAIL2, Config.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		Config.WorkerCount = runtime.NumCPU()
	}
	if Config.WorkerCount < 1 {
		Config.WorkerCount = 1
	}
	return act
}

// ConfigFilePath - "~/.config/ctm-conf.json"
func ConfigFilePath() string {
	uh, _ := os.UserHomeDir()
	return fmt.Sprintf(vv.CONFIGALTAPTH, uh) + vv.CONFIGBASIC
}

// LoadConfigFile - decode the JSON file on top of cfg; a missing file is not an error
func LoadConfigFile(fn string, cfg *str.CurrentConfiguration) (bool, error) {
	f, err := os.Open(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	// decode into a copy so that a half-parsed file does not leave cfg in a strange state
	c := *cfg
	if err = json.NewDecoder(f).Decode(&c); err != nil {
		return false, fmt.Errorf("config file '%s': %w", fn, err)
	}
	*cfg = c
	return true, nil
}

// ApplyArgs - let the command line override the defaults and the config file
func ApplyArgs(cfg *str.CurrentConfiguration, args []string) (LaunchAction, error) {
	const (
		FAIL1 = "flag %s needs a value"
		FAIL2 = "flag %s: '%s' is not a number"
		FAIL3 = "could not parse your information as a valid collection of credentials: %w"
	)

	act := LaunchRun

	next := func(i int) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf(FAIL1, args[i])
		}
		return args[i+1], nil
	}

	nextint := func(i int) (int, error) {
		v, err := next(i)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf(FAIL2, args[i], v)
		}
		return n, nil
	}

	for i := 0; i < len(args); i++ {
		var err error
		var s string
		var n int

		switch args[i] {
		case "-vv":
			act = LaunchVersionVerbose
		case "-v":
			act = LaunchVersion
		case "-h":
			act = LaunchHelp
		case "-bw":
			cfg.BlackAndWhite = true
		case "-ca":
			cfg.CacheCatalog = true
		case "-ct":
			if s, err = next(i); err == nil {
				cfg.CatalogURL = s
				i++
			}
		case "-el":
			if n, err = nextint(i); err == nil {
				cfg.EchoLog = n
				i++
			}
		case "-gl":
			if n, err = nextint(i); err == nil {
				cfg.LogLevel = n
				i++
			}
		case "-gz":
			cfg.Gzip = true
		case "-it":
			if n, err = nextint(i); err == nil {
				cfg.LdaIterations = n
				i++
			}
		case "-kt":
			if s, err = next(i); err == nil {
				cfg.TfIdfKeywords = gen.SplitCSV(s)
				i++
			}
		case "-ld":
			cfg.LdaSkip = true
		case "-nn":
			cfg.Neighbors = true
		case "-od":
			if s, err = next(i); err == nil {
				cfg.OutDir = s
				i++
			}
		case "-pc":
			cfg.ProfileCPU = true
		case "-pg":
			if s, err = next(i); err == nil {
				var pl str.PostgresLogin
				if e := json.Unmarshal([]byte(s), &pl); e != nil {
					return act, fmt.Errorf(FAIL3, e)
				}
				cfg.PGLogin = pl
				cfg.CacheCatalog = true
				i++
			}
		case "-pm":
			cfg.ProfileMEM = true
		case "-q":
			cfg.QuietStart = true
		case "-rf":
			cfg.Refetch = true
		case "-sa":
			if s, err = next(i); err == nil {
				cfg.HostIP = s
				i++
			}
		case "-sd":
			if n, err = nextint(i); err == nil {
				cfg.LdaSeed = n
				i++
			}
		case "-sp":
			if n, err = nextint(i); err == nil {
				cfg.HostPort = n
				i++
			}
		case "-st":
			cfg.Stem = true
		case "-sv":
			cfg.Serve = true
		case "-sw":
			if s, err = next(i); err == nil {
				cfg.LdaSweep = gen.SplitCSVInts(s)
				i++
			}
		case "-tn":
			if n, err = nextint(i); err == nil {
				cfg.LdaTopics = n
				i++
			}
		case "-ts":
			cfg.LdaTSNE = true
		case "-wc":
			if n, err = nextint(i); err == nil {
				cfg.WorkerCount = n
				i++
			}
		default:
			// do nothing
		}
		if err != nil {
			return act, err
		}
	}

	BoundModelSettings(cfg)
	return act, nil
}

// BoundModelSettings - pull topics, iterations, sweep, and top n back inside what a run can afford
func BoundModelSettings(cfg *str.CurrentConfiguration) {
	if cfg.LdaTopics < 2 {
		cfg.LdaTopics = vv.DEFAULTTOPICS
	} else if cfg.LdaTopics > vv.LDAMAXTOPICS {
		cfg.LdaTopics = vv.LDAMAXTOPICS
	}

	if cfg.LdaIterations < 1 {
		cfg.LdaIterations = vv.LDAITERATIONS
	} else if cfg.LdaIterations > vv.LDAMAXITERATIONS {
		cfg.LdaIterations = vv.LDAMAXITERATIONS
	}

	var sw []int
	for _, k := range gen.Unique(cfg.LdaSweep) {
		if k >= 2 && k <= vv.LDAMAXTOPICS && len(sw) < vv.LDAMAXSWEEPFITS {
			sw = append(sw, k)
		}
	}
	cfg.LdaSweep = sw

	if cfg.TopN < 1 {
		cfg.TopN = vv.DEFAULTTOPN
	} else if cfg.TopN > vv.MAXTOPN {
		cfg.TopN = vv.MAXTOPN
	}
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BlackAndWhite = vv.BLACKANDWHITE
	c.CacheCatalog = false
	c.CatalogURL = vv.DEFAULTCATALOG
	c.EchoLog = vv.DEFAULTECHOLOGLEVEL
	c.Gzip = vv.USEGZIP
	c.HostIP = vv.SERVEDFROMHOST
	c.HostPort = vv.SERVEDFROMPORT
	c.LdaIterations = vv.LDAITERATIONS
	c.LdaSeed = vv.DEFAULTSEED
	c.LdaSkip = false
	c.LdaSweep = gen.SplitCSVInts(vv.DEFAULTSWEEP)
	c.LdaTopics = vv.DEFAULTTOPICS
	c.LdaTSNE = false
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.Neighbors = false
	c.OutDir = vv.DEFAULTOUTDIR
	c.ProfileCPU = false
	c.ProfileMEM = false
	c.QuietStart = false
	c.Refetch = false
	c.Serve = false
	c.Stem = false
	c.TfIdfKeywords = gen.SplitCSV(vv.DEFAULTTFIDFKW)
	c.TopN = vv.DEFAULTTOPN
	c.WorkerCount = runtime.NumCPU()

	c.PGLogin = str.PostgresLogin{
		Host:   vv.DEFAULTPSQLHOST,
		Port:   vv.DEFAULTPSQLPORT,
		User:   vv.DEFAULTPSQLUSER,
		Pass:   "",
		DBName: vv.DEFAULTPSQLDB,
	}

	return &c
}

// HelpText - the -h output with the current values filled in
func HelpText(cfg *str.CurrentConfiguration) (string, error) {
	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)

	m := map[string]interface{}{
		"catalog":  cfg.CatalogURL,
		"conffile": vv.CONFIGBASIC,
		"cpus":     runtime.NumCPU(),
		"echoll":   cfg.EchoLog,
		"ctmll":    cfg.LogLevel,
		"home":     h,
		"host":     cfg.HostIP,
		"iter":     cfg.LdaIterations,
		"outdir":   cfg.OutDir,
		"port":     cfg.HostPort,
		"seed":     cfg.LdaSeed,
		"tfkw":     cfg.TfIdfKeywords,
		"topics":   cfg.LdaTopics,
		"workers":  cfg.WorkerCount,
	}

	t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

	var b bytes.Buffer
	if err := t.Execute(&b, m); err != nil {
		return "", err
	}
	return Msg.ColStyle(b.String()), nil
}
