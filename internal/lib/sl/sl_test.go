package sl_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/subscription-manager/internal/lib/sl"
)

func TestErr_ReturnsCorrectAttr(t *testing.T) {
	attr := sl.Err(errors.New("something went wrong"))

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, slog.StringValue("something went wrong"), attr.Value)
}

func TestErr_NilError(t *testing.T) {
	assert.NotPanics(t, func() {
		attr := sl.Err(nil)
		assert.Equal(t, "", attr.Value.String())
	})
}

func TestOpAndRequestID(t *testing.T) {
	op := sl.Op("services.subscription.Create")
	assert.Equal(t, "op", op.Key)
	assert.Equal(t, "services.subscription.Create", op.Value.String())

	id := sl.RequestID("abc")
	assert.Equal(t, "request_id", id.Key)
	assert.Equal(t, "abc", id.Value.String())
}
