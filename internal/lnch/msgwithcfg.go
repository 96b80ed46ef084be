//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"github.com/dhgloss/topictools/internal/mm"
	"github.com/dhgloss/topictools/internal/vv"
)

// Msg - the messenger the launch code itself uses; reconfigured once the config is settled
var Msg = NewMessageMakerWithDefaults()

func NewMessageMakerConfigured() *mm.MessageMaker {
	return mm.New(vv.MYNAME, vv.SHORTNAME, vv.VERSION, Config.LogLevel, Config.BlackAndWhite)
}

func NewMessageMakerWithDefaults() *mm.MessageMaker {
	return mm.New(vv.MYNAME, vv.SHORTNAME, vv.VERSION, vv.DEFAULTGOLOGLEVEL, false)
}

func UpdateMessageMakerWithConfig(m *mm.MessageMaker) {
	m.BW = Config.BlackAndWhite
	m.LLvl = Config.LogLevel
}
