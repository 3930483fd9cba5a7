package external

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionErrorWraps(t *testing.T) {
	cause := errors.New("permission denied")
	err := error(ActionError{Action: "copy", Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "copy failed: permission denied", err.Error())

	var ae ActionError
	assert.True(t, errors.As(err, &ae))
	assert.Equal(t, "copy", ae.Action)
}

func TestFuncAdapters(t *testing.T) {
	var opened, copied string
	var o Opener = OpenerFunc(func(url string) error { opened = url; return nil })
	var c Clipboard = ClipboardFunc(func(text string) error { copied = text; return nil })

	assert.NoError(t, o.Open("https://topg.org"))
	assert.NoError(t, c.Copy("Steve"))
	assert.Equal(t, "https://topg.org", opened)
	assert.Equal(t, "Steve", copied)
}
