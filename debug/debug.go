package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Rules bool
	IO    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Rules = boolEnv("MHS_PATCH_DEBUG_RULES")
	d.IO = boolEnv("MHS_PATCH_DEBUG_IO")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Rules() bool {
	return d.Rules
}
func IO() bool {
	return d.IO
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
