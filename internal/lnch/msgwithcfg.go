//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"github.com/e-gun/CatalogTopicMiner/internal/mm"
)

func UpdateMessageMakerWithConfig(m *mm.MessageMaker) {
	m.SetLevel(Config.LogLevel, Config.BlackAndWhite)
}
