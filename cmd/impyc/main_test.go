/*
File : impyc/cmd/impyc/main_test.go
Only extractConfigFlag is pure enough to unit test directly -- runFile/
startServer/main call os.Exit and open real sockets/files, which the
teacher's main_test.go avoids by testing parser/visitor behavior instead;
here the equivalent seam is the argument-parsing helper.
*/
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractConfigFlag_Absent(t *testing.T) {
	args, path := extractConfigFlag([]string{"source.impy", "out.py"})
	assert.Equal(t, []string{"source.impy", "out.py"}, args)
	assert.Equal(t, "", path)
}

func TestExtractConfigFlag_Present(t *testing.T) {
	args, path := extractConfigFlag([]string{"--config", "impyc.yaml", "source.impy", "out.py"})
	assert.Equal(t, []string{"source.impy", "out.py"}, args)
	assert.Equal(t, "impyc.yaml", path)
}

func TestExtractConfigFlag_TrailingWithoutValueIsIgnored(t *testing.T) {
	args, path := extractConfigFlag([]string{"source.impy", "--config"})
	assert.Equal(t, []string{"source.impy", "--config"}, args)
	assert.Equal(t, "", path)
}
