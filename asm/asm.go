// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"
)

// Assembler is a single pass assembler for the two-register machine.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
}

// Parse assembles an input stream into a Program of machine words.
// The first failure aborts the whole run.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	program := &Program{}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(text)

		var expanded string
		expanded, err = asm.expand(line, lineno)
		if err != nil {
			return
		}
		expanded = strings.TrimSpace(expanded)

		// Only the very first line may carry the origin directive.
		if lineno == 1 && strings.HasPrefix(expanded, "*") {
			err = asm.parseOrigin(program, expanded)
			if err != nil {
				return
			}
			continue
		}

		err = asm.parseLine(program, expanded, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if lineno == 0 {
		err = ErrInputEmpty
		return
	}

	prog = program

	return
}

// parseOrigin handles the "*" starting address directive.
func (asm *Assembler) parseOrigin(prog *Program, line string) (err error) {
	if len(line) < 2 {
		// Bare marker, starting address stays 0.
		return
	}

	addr, err := parseAddress(strings.TrimSpace(line[1:]))
	if err != nil {
		return
	}

	prog.Origin = addr

	return
}

// parseLine recognizes and encodes a single trimmed source line.
func (asm *Assembler) parseLine(prog *Program, line string, lineno int) (err error) {
	if len(line) == 0 {
		return ErrLineEmpty
	}

	lowered := strings.ToLower(line)
	for _, mn := range mnemonics {
		if strings.HasPrefix(lowered, mn.String()) {
			return asm.encode(prog, mn, line, lineno)
		}
	}

	return ErrInstructionInvalid
}

// encode validates the operand text of a recognized instruction and
// appends the resulting machine words to the program.
func (asm *Assembler) encode(prog *Program, mn Mnemonic, line string, lineno int) (err error) {
	remainder := line[len(mn.String()):]

	// A comma directly after the mnemonic means the source broke the
	// opcode/operand whitespace rules.
	if strings.HasPrefix(remainder, ",") {
		return ErrSeparatorLeading
	}

	tokens := splitOperands(remainder)
	if len(tokens) > 2 {
		return ErrOperandExtra
	}

	op := Op{LineNo: lineno, Source: line}

	switch mn {
	case MN_STOP:
		// Trailing tokens after stop are ignored.
		var word Word
		op.Key, word, err = lookupOpcode(mn, "")
		if err != nil {
			return
		}
		op.Words = []Word{word}
	case MN_TWLD, MN_TWST:
		if len(tokens) != 2 {
			return ErrOperandMissing
		}
		var regs string
		regs, err = normalizeRegisters(tokens[:1])
		if err != nil {
			return
		}
		var word Word
		op.Key, word, err = lookupOpcode(mn, regs)
		if err != nil {
			return
		}
		var addr int
		addr, err = parseAddress(tokens[1])
		if err != nil {
			return
		}
		op.Words = []Word{word, octalWord(addr)}
	case MN_AND, MN_CLR:
		var regs string
		regs, err = normalizeRegisters(tokens)
		if err != nil {
			return
		}
		var word Word
		op.Key, word, err = lookupOpcode(mn, regs)
		if err != nil {
			return
		}
		op.Words = []Word{word}
	default:
		return ErrEncoderInternal
	}

	prog.Ops = append(prog.Ops, op)

	return
}

// splitOperands tokenizes operand text on comma and space separators,
// discarding empty tokens.
func splitOperands(remainder string) []string {
	return strings.FieldsFunc(remainder, func(r rune) bool {
		return r == ',' || r == ' '
	})
}

// parseAddress converts octal address text, bounded to 12 bits.
func parseAddress(text string) (addr int, err error) {
	value, perr := strconv.ParseInt(text, 8, 32)
	if perr != nil {
		err = ErrParseOctal(text)
		return
	}

	if value < 0 || value > addressMax {
		err = ErrAddressRange(int(value))
		return
	}

	addr = int(value)

	return
}
