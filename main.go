//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"os"

	"github.com/dhgloss/topictools/internal/lnch"
	"github.com/dhgloss/topictools/internal/vv"
)

// Msg - the one messenger every command shares; reconfigured after flags settle
var Msg = lnch.NewMessageMakerWithDefaults()

func main() {
	if err := Execute(); err != nil {
		// cobra already printed the usage complaint; anything else landed via Msg
		os.Exit(1)
	}
}

// launchbanner - the version line printed at the top of a noisy launch
func launchbanner() {
	const (
		BANNER = "S1%sS0 (C2v.%sC0)"
	)
	if lnch.Config.QuietStart {
		return
	}
	Msg.MAND(Msg.ColStyle(fmt.Sprintf(BANNER, vv.MYNAME, vv.VERSION)))
}
