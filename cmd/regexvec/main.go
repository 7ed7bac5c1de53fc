// Command regexvec applies regex patterns element-wise to a list of strings.
//
//	regexvec detect -p 'a.*b' -p 'c+' xaab cc zzz
//	regexvec replace -p o --replacement 0 --opts '{"case_insensitive":true}' FOO
//	regexvec count -p '\d+' --input lines.txt --workers 4
//
// Patterns and haystack values are recycled to the longer of the two. A
// value of NA in an input file is a missing element.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/golang/glog"
)

func main() {
	defer glog.Flush()

	if err := newRootCmd(os.Stdout).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
