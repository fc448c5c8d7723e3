//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"github.com/e-gun/CatalogTopicMiner/internal/lnch"
	"github.com/e-gun/CatalogTopicMiner/internal/vv"
)

var (
	Msg             = lnch.Msg
	AllRuns         = MakeRunVault(vv.MAXRUNSKEPT)
	WebsocketPool   = WSFillNewPool()
	EchoServerStats = NewEchoResponseStats()
)
