//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/viper"

	"github.com/dhgloss/topictools/internal/vv"
)

// CurrentConfiguration - the settings the pipeline runs with
type CurrentConfiguration struct {
	BlackAndWhite bool
	CorpusDir     string
	CorpusGlob    string
	DropHapax     bool
	DropStops     int    // remove the N most frequent types; 0 disables
	ExtraStops    string // path to a JSON array of additional stopwords
	Iterations    int
	LogLevel      int
	NamePattern   string
	OutputDir     string
	Profiling     bool
	QuietStart    bool
	SparseMatrix  bool
	StopLanguage  string // pull in a built-in language stopword list; "" disables
	TopicCount    int
	TopicKeyCount int
	WorkerCount   int
}

var (
	Config = BuildDefaultConfig()
)

// BuildDefaultConfig - a CurrentConfiguration filled out with the stock values
func BuildDefaultConfig() CurrentConfiguration {
	var c CurrentConfiguration
	c.BlackAndWhite = false
	c.CorpusDir = vv.DEFAULTCORPUSDIR
	c.CorpusGlob = vv.DEFAULTCORPUSGLOB
	c.DropHapax = true
	c.DropStops = vv.DEFAULTSTOPCOUNT
	c.ExtraStops = ""
	c.Iterations = vv.DEFAULTITERATIONS
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.NamePattern = vv.DEFAULTNAMEPATTERN
	c.OutputDir = vv.DEFAULTOUTPUTDIR
	c.Profiling = false
	c.QuietStart = false
	c.SparseMatrix = false
	c.StopLanguage = ""
	c.TopicCount = vv.DEFAULTTOPICCOUNT
	c.TopicKeyCount = vv.DEFAULTTOPICKEYCOUNT
	c.WorkerCount = runtime.NumCPU()
	return c
}

// ConfigAtLaunch - merge the config file (if any) over the defaults; flags are layered on later by the cli
func ConfigAtLaunch() {
	const (
		FAIL1 = `Could not parse '%s'. Skipping it and using the built-in defaults instead.`
		FYI1  = "'%s' loaded"
		FNF   = "no '%s.%s' found: running on the built-in defaults"
	)

	Config = BuildDefaultConfig()

	v := viper.New()
	v.SetConfigName(vv.CONFIGNAME)
	v.SetConfigType(vv.CONFIGTYPE)
	v.AddConfigPath(vv.CONFIGLOCATION)
	if h, e := os.UserHomeDir(); e == nil {
		v.AddConfigPath(fmt.Sprintf(vv.CONFIGALTAPTH, h))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			Msg.TMI(fmt.Sprintf(FNF, vv.CONFIGNAME, vv.CONFIGTYPE))
		} else {
			Msg.CRIT(fmt.Sprintf(FAIL1, v.ConfigFileUsed()))
		}
		return
	}

	if err := v.Unmarshal(&Config); err != nil {
		Msg.CRIT(fmt.Sprintf(FAIL1, v.ConfigFileUsed()))
		Config = BuildDefaultConfig()
		return
	}

	Msg.TMI(fmt.Sprintf(FYI1, v.ConfigFileUsed()))
}

// DefaultExtraStops - the standing extra-stopwords file in the user config
// directory, if one exists
func DefaultExtraStops() string {
	h, e := os.UserHomeDir()
	if e != nil {
		return ""
	}
	fn := fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGSTOPS
	if _, err := os.Stat(fn); err != nil {
		return ""
	}
	return fn
}

// ReadExtraStops - load the user-supplied feature list: a JSON array of strings
func ReadExtraStops(fn string) ([]string, error) {
	const (
		ERR = "ReadExtraStops() failed to parse '%s': %w"
	)

	if fn == "" {
		return nil, nil
	}

	content, err := os.ReadFile(fn)
	if err != nil {
		return nil, fmt.Errorf(ERR, fn, err)
	}

	var stops []string
	if err := json.Unmarshal(content, &stops); err != nil {
		return nil, fmt.Errorf(ERR, fn, err)
	}
	return stops, nil
}
