package here

import (
	"fmt"
	"strconv"
	"strings"
)

// Location identifies a call site.
type Location struct {
	File   string
	Line   int
	Column int
}

// String renders the location as file:line:column.
func (l Location) String() string {
	return l.File + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Column)
}

// Here stamps the call site, optionally followed by a message.
//
// With no arguments it returns "file:line:column". With a single string argument
// it appends ": " and the string as is, without interpreting formatting verbs. With
// two or more arguments the first must be a fmt format string and the rest its
// operands; Here panics if the first argument is not a string.
func Here(args ...any) string {
	return render(locate(0), args)
}

// Loc returns "file:line:column" for the call site.
func Loc() string {
	return locate(0).String()
}

// Msg returns "file:line:column: msg". msg is not interpreted as a format.
func Msg(msg string) string {
	return locate(0).String() + ": " + msg
}

// Msgf returns "file:line:column: " followed by fmt.Sprintf(format, args...).
func Msgf(format string, args ...any) string {
	return locate(0).String() + ": " + fmt.Sprintf(format, args...)
}

// Errorf is fmt.Errorf with the call site prepended to the message. %w operands
// are wrapped as usual.
func Errorf(format string, args ...any) error {
	prefix := strings.ReplaceAll(locate(0).String(), "%", "%%")
	return fmt.Errorf(prefix+": "+format, args...)
}

// Caller returns the location of the call to the function skip frames above
// Caller's caller. Caller(0) is the site that called Caller; helpers wrapping
// this package pass 1 to report their own call site.
func Caller(skip int) Location {
	return locate(skip)
}

func render(loc Location, args []any) string {
	switch len(args) {
	case 0:
		return loc.String()
	case 1:
		if msg, ok := args[0].(string); ok {
			return loc.String() + ": " + msg
		}
		return loc.String() + ": " + fmt.Sprint(args[0])
	default:
		format, ok := args[0].(string)
		if !ok {
			panic(fmt.Sprintf("here: format must be a string, got %T", args[0]))
		}
		return loc.String() + ": " + fmt.Sprintf(format, args[1:]...)
	}
}
