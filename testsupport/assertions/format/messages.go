package format

import (
	"fmt"
	"strings"

	"github.com/codeready-toolchain/toolchain-assertions/testsupport/wait"
)

// The message templates below render the "actual" side first, then the expectation. Every
// rendered value is indented by two spaces on its own line(s).

func ActualIsNull() string {
	return "Expecting actual not to be nil"
}

func ShouldBeNil(actual string) string {
	return fmt.Sprintf("Expecting actual:\n%s\nto be nil", indent(actual))
}

// ShouldContain is the containment failure of a single value. The strategy names how the
// values were compared and is empty for the standard comparison.
func ShouldContain(actual, expected, strategy string) string {
	return fmt.Sprintf("Expecting actual:\n%s\nto contain:\n%s %s", indent(actual), indent(expected), strategy)
}

func ShouldNotContain(actual, unexpected, strategy string) string {
	return fmt.Sprintf("Expecting actual:\n%s\nnot to contain:\n%s %s", indent(actual), indent(unexpected), strategy)
}

// ShouldContainElements is the containment failure of a group of values.
func ShouldContainElements(typeName, actual, expected, notFound string) string {
	return fmt.Sprintf("Expecting %s:\n%s\nto contain:\n%s\nbut could not find the following element(s):\n%s\n",
		typeName, indent(actual), indent(expected), indent(notFound))
}

func ShouldNotContainElements(typeName, actual, unexpected, found string) string {
	return fmt.Sprintf("Expecting %s:\n%s\nnot to contain:\n%s\nbut found the following element(s):\n%s\n",
		typeName, indent(actual), indent(unexpected), indent(found))
}

func ShouldContainExactly(typeName, actual, expected string) string {
	return fmt.Sprintf("Expecting %s:\n%s\nto contain exactly (and in the same order):\n%s\n",
		typeName, indent(actual), indent(expected))
}

func ShouldStartWith(actual, prefix string) string {
	return fmt.Sprintf("Expecting actual:\n%s\nto start with:\n%s\n", indent(actual), indent(prefix))
}

func ShouldEndWith(actual, suffix string) string {
	return fmt.Sprintf("Expecting actual:\n%s\nto end with:\n%s\n", indent(actual), indent(suffix))
}

func ShouldMatch(actual, pattern string) string {
	return fmt.Sprintf("Expecting actual:\n%s\nto match pattern:\n%s", indent(actual), indent(pattern))
}

func ShouldBeEmpty(actual string) string {
	return fmt.Sprintf("Expecting empty but was:\n%s", indent(actual))
}

func ShouldNotBeEmpty() string {
	return "Expecting actual not to be empty"
}

func ShouldHaveSize(actual string, actualSize, expectedSize int) string {
	return fmt.Sprintf("Expected size: %d but was: %d in:\n%s", expectedSize, actualSize, indent(actual))
}

func ShouldHaveLength(actual string, actualLength, expectedLength int) string {
	return fmt.Sprintf("Expecting length of:\n%s\nto be %d but was %d", indent(actual), expectedLength, actualLength)
}

func ShouldBeBetween(actual, start, end string) string {
	return fmt.Sprintf("Expecting actual:\n%s\nto be between:\n  [%s, %s]", indent(actual), start, end)
}

func ShouldBeLess(actual, other string) string {
	return fmt.Sprintf("Expecting actual:\n%s\nto be less than:\n%s ", indent(actual), indent(other))
}

func ShouldBeLessOrEqual(actual, other string) string {
	return fmt.Sprintf("Expecting actual:\n%s\nto be less than or equal to:\n%s ", indent(actual), indent(other))
}

func ShouldBeGreater(actual, other string) string {
	return fmt.Sprintf("Expecting actual:\n%s\nto be greater than:\n%s ", indent(actual), indent(other))
}

func ShouldBeGreaterOrEqual(actual, other string) string {
	return fmt.Sprintf("Expecting actual:\n%s\nto be greater than or equal to:\n%s ", indent(actual), indent(other))
}

func ShouldBeCloseTo(actual, expected, offset string) string {
	return fmt.Sprintf("Expecting actual:\n%s\nto be close to:\n%s\nby less than %s", indent(actual), indent(expected), offset)
}

// ShouldBeEqual renders both values and, when they span several lines, the line diff between them.
func ShouldBeEqual(actual, expected string) string {
	msg := fmt.Sprintf("Expecting actual:\n%s\nto be equal to:\n%s\nbut was not.", indent(actual), indent(expected))
	if strings.Contains(actual, "\n") || strings.Contains(expected, "\n") {
		msg += "\n" + wait.Diff(expected, actual)
	}
	return msg
}

func ShouldNotBeEqual(actual, other string) string {
	return fmt.Sprintf("Expecting actual:\n%s\nnot to be equal to:\n%s", indent(actual), indent(other))
}

func ShouldBeInstance(actual, expectedType, actualType string) string {
	return fmt.Sprintf("Expecting actual:\n%s\nto be an instance of:\n  %s\nbut was instance of:\n  %s", indent(actual), expectedType, actualType)
}

func ShouldNotBeInstance(actual, unexpectedType string) string {
	return fmt.Sprintf("Expecting actual:\n%s\nnot to be an instance of:\n  %s", indent(actual), unexpectedType)
}

func ShouldSatisfy(actual, description string) string {
	return fmt.Sprintf("Expecting actual:\n%s\nto match %s", indent(actual), description)
}

// ShouldBeEmptyNullable is the failure of an absent-value check on a value that is present.
func ShouldBeEmptyNullable(typeName, value string) string {
	return fmt.Sprintf("Expecting an empty %s but was containing value: %s", typeName, value)
}

func ShouldBePresent(typeName string) string {
	return fmt.Sprintf("Expecting %s to contain a value but it was empty", typeName)
}

func ShouldHaveNullableValue(typeName, actual, expected string) string {
	return fmt.Sprintf("Expecting %s to contain:\n%s\nbut was:\n%s", typeName, indent(expected), indent(actual))
}

func indent(s string) string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
