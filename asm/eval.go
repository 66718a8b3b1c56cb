// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"regexp"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined names available inside $() expressions.
var sysDefine = starlark.StringDict{
	"ADDR_MAX": starlark.MakeInt(addressMax),
}

// parenEval does assembly-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string, lineno int) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, val := range sysDefine {
		pred[key] = val
	}
	pred["LINENO"] = starlark.MakeInt(lineno)
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// expand substitutes each $() span with its value rendered as octal
// text, so the rest of the line parses uniformly as base-8 literals.
func (asm *Assembler) expand(line string, lineno int) (out string, err error) {
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	out = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2:len(str)-1], lineno)
		if _err != nil {
			err = _err
		}
		return strconv.FormatInt(value, 8)
	})
	if err != nil {
		out = line
	}
	return
}
