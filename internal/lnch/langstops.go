//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/dhgloss/topictools/internal/features"
	"github.com/dhgloss/topictools/internal/vv"
)

// ReadLanguageStops - the built-in stopword list for a language, with a per-user override
//
// on first use the stock list is written to the user config directory so it can
// be edited; afterwards the edited file wins over the built-in one
func ReadLanguageStops(lang string) []string {
	const (
		ERR1 = "ReadLanguageStops() cannot find UserHomeDir"
		ERR2 = "ReadLanguageStops() failed to parse "
		MSG1 = "ReadLanguageStops() wrote stopword configuration file: "
	)

	if lang == "" {
		return nil
	}

	stops := features.BuiltinStopwords(lang)

	h, e := os.UserHomeDir()
	if e != nil {
		Msg.MAND(ERR1)
		return stops
	}

	cfgdir := fmt.Sprintf(vv.CONFIGALTAPTH, h)
	cfg := cfgdir + fmt.Sprintf(vv.CONFIGLANGSTOP, lang)

	if _, absent := os.Stat(cfg); absent != nil {
		if len(stops) == 0 {
			return nil
		}
		sort.Strings(stops)
		content, err := json.MarshalIndent(stops, "", vv.JSONINDENT)
		Msg.EC(err)
		Msg.EC(os.MkdirAll(cfgdir, vv.DIRPERMS))
		Msg.EC(os.WriteFile(cfg, content, vv.WRITEPERMS))
		Msg.PEEK(MSG1 + cfg)
		return stops
	}

	content, err := os.ReadFile(cfg)
	if err != nil {
		Msg.CRIT(ERR2 + cfg)
		return stops
	}

	var stp []string
	if err := json.Unmarshal(content, &stp); err != nil {
		Msg.CRIT(ERR2 + cfg)
		return stops
	}
	return stp
}
