package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvalExpressions(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"twld j, $(8 * 8)",
		"twst k, $(ADDR_MAX)",
		"twld k, $(LINENO)",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal([]Word{
		"0500", "0100", // decimal 64
		"0550", "7777", // decimal 4095
		"0510", "0003", // line number
	}, prog.Words())
}

func TestEvalOrigin(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader("*$(64)\nstop\n"))
	assert.NoError(err)
	assert.Equal(64, prog.Origin)
}

func TestEvalErrors(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	table := [](struct {
		prog string
		line int
	}){
		{"twld j, $(\"aaa\")\n", 1},
		{"twld j, $(nothing)\n", 1},
		{"twld j, $(more(\"aaa\"))\n", 1},
		{"stop\ntwld j, $(0x10000000000000000)\n", 2},
	}

	for _, entry := range table {
		_, err := asm.Parse(strings.NewReader(entry.prog))
		assert.NotNil(err, entry.prog)
		if err == nil {
			continue
		}

		var se *ErrSyntax
		assert.True(errors.As(err, &se), entry.prog)
		if se != nil {
			assert.Equal(entry.line, se.LineNo, entry.prog)
		}
	}

	// An out of range result is still bounded like any literal.
	_, err := asm.Parse(strings.NewReader("twld j, $(ADDR_MAX + 1)\n"))
	assert.ErrorIs(err, ErrAddressRange(4096))
}
