package utils

import "fmt"

// Assert panics when the condition does not hold. Used for internal
// integrity checks that indicate a bug in this module, never for
// validating caller input.
func Assert(condition bool, message ...string) {
	if !condition {
		if len(message) == 1 {
			panic(message[0])
		}
		panic("failed assertion")
	}
}

// Assertf is Assert with a formatted message.
func Assertf(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Sprintf(format, args...))
	}
}
