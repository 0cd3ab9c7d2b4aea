package here

import (
	"os"
	"runtime"
	"strings"
	"sync"
)

type siteKey struct {
	file string
	line int
	name string
}

var (
	// sources maps a file path to its lines, or nil when it could not be read.
	sources sync.Map
	columns sync.Map
)

var readFile = os.ReadFile

// locate returns the site that called the function skip frames above locate's caller.
func locate(skip int) Location {
	var pcs [2]uintptr
	// skip runtime.Callers and locate
	n := runtime.Callers(skip+2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	callee, more := frames.Next()
	if !more {
		return Location{File: "unknown", Column: 1}
	}
	site, _ := frames.Next()
	if site.File == "" {
		return Location{File: "unknown", Column: 1}
	}

	return Location{
		File:   site.File,
		Line:   site.Line,
		Column: column(site.File, site.Line, shortName(callee.Function)),
	}
}

func column(file string, line int, name string) int {
	key := siteKey{file: file, line: line, name: name}
	if c, ok := columns.Load(key); ok {
		return c.(int)
	}

	c := 1
	if src, ok := sourceLine(file, line); ok {
		c = findColumn(src, name)
	}
	columns.Store(key, c)

	return c
}

func sourceLine(file string, line int) (string, bool) {
	v, ok := sources.Load(file)
	if !ok {
		var lines []string
		if data, err := readFile(file); err == nil {
			lines = strings.Split(string(data), "\n")
		}
		v, _ = sources.LoadOrStore(file, lines)
	}

	lines := v.([]string)
	if line < 1 || line > len(lines) {
		return "", false
	}

	return lines[line-1], true
}

// findColumn returns the 1-based byte column where the first call to name in src
// starts, including any package or receiver qualifier. It returns 1 if there is
// no such call.
func findColumn(src, name string) int {
	if name == "" {
		return 1
	}

	for off := 0; off < len(src); {
		i := strings.Index(src[off:], name)
		if i < 0 {
			break
		}
		i += off
		end := i + len(name)
		off = end

		if i > 0 && isIdentByte(src[i-1]) {
			continue
		}
		if !followedByParen(src[end:]) {
			continue
		}

		start := i
		for start > 0 && (isIdentByte(src[start-1]) || src[start-1] == '.') {
			start--
		}
		return start + 1
	}

	return 1
}

func followedByParen(s string) bool {
	s = strings.TrimLeft(s, " \t")
	return strings.HasPrefix(s, "(")
}

func isIdentByte(b byte) bool {
	return b == '_' ||
		'a' <= b && b <= 'z' ||
		'A' <= b && b <= 'Z' ||
		'0' <= b && b <= '9' ||
		b >= 0x80
}

// shortName strips the package path and receiver from a runtime function name,
// so "example.com/pkg/here.Msgf" and "example.com/pkg.(*T).Msgf" both become "Msgf".
func shortName(function string) string {
	// generic instantiations are reported as Name[...]
	if i := strings.IndexByte(function, '['); i >= 0 {
		function = function[:i]
	}
	if i := strings.LastIndexByte(function, '/'); i >= 0 {
		function = function[i+1:]
	}
	if i := strings.LastIndexByte(function, '.'); i >= 0 {
		function = function[i+1:]
	}
	return function
}
