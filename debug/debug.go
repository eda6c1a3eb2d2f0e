package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens  bool
	Interns bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("ABX_DEBUG_TOKENS")
	d.Interns = boolEnv("ABX_DEBUG_INTERNS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Tokens reports whether the decoder should trace each token to
// stderr (ABX_DEBUG_TOKENS).
func Tokens() bool {
	return d.Tokens
}

// Interns reports whether the decoder should trace intern table
// definitions to stderr (ABX_DEBUG_INTERNS).
func Interns() bool {
	return d.Interns
}
