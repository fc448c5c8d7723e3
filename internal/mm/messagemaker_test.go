//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"bytes"
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestEmitRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	m := NewMessageMaker("Test Maker", "TM", "0.0.1")
	m.Out = &buf
	m.SetLevel(MSGNOTE, true)

	m.TMI("too much")
	m.PEEK("peeking")
	assert.Empty(t, buf.String())

	m.NOTE("noted")
	m.MAND("always")
	assert.Equal(t, "[TM] noted\n[TM] always\n", buf.String())
}

func TestColorAndStyleInBlackAndWhite(t *testing.T) {
	m := NewMessageMaker("Test Maker", "TM", "0.0.1")
	m.SetLevel(0, true)
	assert.Equal(t, "plain bold", m.ColStyle("C1plainC0 S1boldS0"))
}

func TestColorAddsEscapes(t *testing.T) {
	m := NewMessageMaker("Test Maker", "TM", "0.0.1")
	m.Win = false
	m.SetLevel(0, false)
	out := m.Color("C4greenC0")
	assert.Contains(t, out, GREEN)
	assert.Contains(t, out, RESET)
}

func TestEFReportsFunction(t *testing.T) {
	var buf bytes.Buffer
	m := NewMessageMaker("Test Maker", "TM", "0.0.1")
	m.Out = &buf
	m.SetLevel(0, true)

	m.EF(nil, "quiet()")
	assert.Empty(t, buf.String())

	m.EF(errors.New("boom"), "loud()")
	assert.Equal(t, "[TM] (loud()) boom\n", buf.String())
}
