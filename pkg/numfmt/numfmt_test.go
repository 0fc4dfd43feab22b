package numfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/migrationboard/pkg/numfmt"
)

func TestInt(t *testing.T) {
	assert.Equal(t, "0", numfmt.Int(0))
	assert.Equal(t, "999", numfmt.Int(999))
	assert.Equal(t, "1,234", numfmt.Int(1234))
	assert.Equal(t, "12,345,678", numfmt.Int(12345678))
}

func TestIntOrDash(t *testing.T) {
	assert.Equal(t, "—", numfmt.IntOrDash(0))
	assert.Equal(t, "4,021", numfmt.IntOrDash(4021))
}
