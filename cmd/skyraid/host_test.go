package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttachOverlayGatesKeyboard(t *testing.T) {
	input := &keyboardInput{}
	h := &Host{input: input}

	assert.Nil(t, input.captured)
	h.attachOverlay(nil)
	assert.NotNil(t, input.captured)
}
