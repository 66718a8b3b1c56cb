package asm

import (
	"errors"

	"github.com/ezrec/twoasm/translate"
)

var f = translate.From

var (
	// Line recognition errors
	ErrInputEmpty         = errors.New(f("end of input before any source line"))
	ErrLineEmpty          = errors.New(f("empty input line"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))

	// Operand errors
	ErrSeparatorLeading = errors.New(f("separator before first operand"))
	ErrOperandExtra     = errors.New(f("excessive operands"))
	ErrOperandMissing   = errors.New(f("operand missing"))
	ErrRegisterExcess   = errors.New(f("too many registers in specification"))
	ErrRegisterRepeated = errors.New(f("same register specified multiple times"))
	ErrRegisterInvalid  = errors.New(f("register invalid"))

	// Encoder errors
	ErrEncoderInternal = errors.New(f("encoder and recognizer disagree on instruction set"))
)

type ErrOpcodeFor string

func (err ErrOpcodeFor) Error() string {
	return f("no opcode for '%v'", string(err))
}

type ErrParseOctal string

func (err ErrParseOctal) Error() string {
	return f("'%v' is not an octal number", string(err))
}

type ErrAddressRange int

func (err ErrAddressRange) Error() string {
	return f("value %v does not fit in a 12-bit address", int(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
