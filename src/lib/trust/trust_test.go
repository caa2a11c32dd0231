package trust

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryLevelPrintsByDefault(t *testing.T) {
	var sink bytes.Buffer
	l := NewLogger(&sink)
	l.Errorf("e")
	l.Warnf("w")
	l.Infof("i")
	l.Debugf("d")
	assert.Equal(t, "ERROR:e\n WARN:w\n INFO:i\nDEBUG:d\n", sink.String())
}

func TestMaskSilencesLevels(t *testing.T) {
	var sink bytes.Buffer
	l := NewLogger(&sink)
	prev := l.SetLevel(DebugMask)
	assert.Equal(t, ErrorMask|WarnMask|InfoMask|DebugMask, prev)

	l.Errorf("quiet")
	l.Infof("quiet")
	l.Debugf("loud")
	assert.Equal(t, "DEBUG:loud\n", sink.String())
}

func TestSetLevelFillsDownward(t *testing.T) {
	var sink bytes.Buffer
	l := NewLogger(&sink)
	l.SetLevel(WarnMask)
	assert.Equal(t, WarnMask|InfoMask|DebugMask, l.Level(),
		"selecting a severity keeps everything below it")
}

func TestNewlineAppendedOnlyWhenMissing(t *testing.T) {
	var sink bytes.Buffer
	l := NewLogger(&sink)
	l.Infof("already there\n")
	l.Infof("missing")
	assert.Equal(t, " INFO:already there\n INFO:missing\n", sink.String())
}

func TestSinkAccessor(t *testing.T) {
	var sink bytes.Buffer
	l := NewLogger(&sink)
	assert.Same(t, &sink, l.Sink())
}
