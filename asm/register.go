package asm

import (
	"strings"
)

// normalizeRegisters reduces the register operand tokens of an
// instruction to the canonical register spec used in opcode table keys.
// Letters are always emitted j-then-k, so "kj" and "j k" and "k, j" all
// resolve to the same table key.
func normalizeRegisters(tokens []string) (regs string, err error) {
	switch len(tokens) {
	case 0:
		err = ErrOperandMissing
		return
	case 1:
		token := tokens[0]
		if len(token) == 1 {
			regs = token
			return
		}
		if len(token) > 2 {
			err = ErrRegisterExcess
			return
		}
		// A fused pair like "jk" is the same as two separate tokens.
		return normalizeRegisters(strings.Split(token, ""))
	case 2:
		// Handled below.
	default:
		err = ErrOperandExtra
		return
	}

	if strings.EqualFold(tokens[0], tokens[1]) {
		err = ErrRegisterRepeated
		return
	}

	// Membership is tested j first, then k, which fixes the output
	// order no matter which order the source wrote the registers in.
	for _, name := range []string{"j", "k"} {
		if strings.EqualFold(tokens[0], name) || strings.EqualFold(tokens[1], name) {
			regs += name
		}
	}

	if len(regs) != len(tokens) {
		regs = ""
		err = ErrRegisterInvalid
		return
	}

	return
}
