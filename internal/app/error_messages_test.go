package app

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageForStatus(t *testing.T) {
	assert.Equal(t, MsgNotFound, MessageForStatus(http.StatusNotFound))
	assert.Equal(t, MsgInternalServerError, MessageForStatus(http.StatusInternalServerError))
	assert.Equal(t, MsgInternalServerError, MessageForStatus(http.StatusServiceUnavailable))
	assert.Equal(t, "Bad Request", MessageForStatus(http.StatusBadRequest))
}
