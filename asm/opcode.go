// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strings"
)

// Mnemonic is a hardware instruction name.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	MN_STOP = Mnemonic(0) // stop
	MN_TWLD = Mnemonic(1) // twld
	MN_TWST = Mnemonic(2) // twst
	MN_AND  = Mnemonic(3) // and
	MN_CLR  = Mnemonic(4) // clr
)

// mnemonics is the fixed recognition order. The set is prefix-disjoint,
// so order cannot change the outcome, but it must be deterministic.
var mnemonics = [...]Mnemonic{MN_STOP, MN_TWLD, MN_TWST, MN_AND, MN_CLR}

// Word is a single 12-bit unit of emitted machine code, held as a
// zero-padded 4-digit octal string.
type Word string

// opcodeTable maps a lowercase mnemonic+registers key to its machine word.
// Register ordering variation is resolved before lookup, never by
// arithmetic on opcode bits.
var opcodeTable = map[string]Word{
	"stop":  "0000",
	"twldj": "0500",
	"twldk": "0510",
	"twstj": "0540",
	"twstk": "0550",
	"andj":  "1100",
	"andk":  "1200",
	"andjk": "1300",
	"clrj":  "1510",
	"clrk":  "1610",
	"clrjk": "1710",
}

// lookupOpcode resolves a mnemonic plus canonical register spec to its
// machine word and the table key it was found under.
func lookupOpcode(mn Mnemonic, regs string) (key string, word Word, err error) {
	key = strings.ToLower(mn.String() + regs)

	word, ok := opcodeTable[key]
	if !ok {
		err = ErrOpcodeFor(mn.String() + ":" + regs)
		return
	}

	return
}
