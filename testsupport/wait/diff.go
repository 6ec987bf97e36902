package wait

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Diff renders both representations one after the other followed by their line diff.
func Diff(expected, actual string) string {
	msg := &strings.Builder{}

	fmt.Fprintln(msg, "\nexpected:")
	fmt.Fprintln(msg, "----")
	fmt.Fprintln(msg, strings.TrimSuffix(expected, "\n"))
	fmt.Fprintln(msg, "----")
	fmt.Fprintln(msg, "\nactual:")
	fmt.Fprintln(msg, "----")
	fmt.Fprintln(msg, strings.TrimSuffix(actual, "\n"))
	fmt.Fprintln(msg, "----")
	fmt.Fprintln(msg, "-expected")
	fmt.Fprintln(msg, "+actual")
	msg.WriteString(cmp.Diff(expected, actual))
	return msg.String()
}
