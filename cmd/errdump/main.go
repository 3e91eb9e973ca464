// Command errdump reads error dumps written by errno and re-emits them
// as text, JSON, YAML or TOML, and describes status codes.
//
//	errdump parse -o json crash.log
//	errdump describe EINVAL 13
package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
