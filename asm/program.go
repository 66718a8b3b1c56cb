package asm

import (
	"fmt"
)

// addressMax bounds every load address and address operand to 12 bits.
const addressMax = 1<<12 - 1

// Op is one assembled source instruction: the machine words it emitted,
// plus where they came from.
type Op struct {
	LineNo int
	Source string
	Key    string // opcode table key for Words[0]
	Words  []Word
}

// Program is the ordered machine code image produced by a single Parse.
type Program struct {
	Origin int // starting load address, default 0
	Ops    []Op
}

// Entry is one line of the final listing: a load address and the word
// stored there.
type Entry struct {
	Addr int
	Word Word
	Key  string // opcode table key, empty for address words
}

// Words returns the flat machine word sequence in program order.
func (prog *Program) Words() (words []Word) {
	for _, op := range prog.Ops {
		words = append(words, op.Words...)
	}

	return
}

// Listing pairs each emitted word with its load address. Addresses are
// assigned sequentially from Origin; an address that cannot be
// represented in 12 bits fails here, before any reporting starts.
func (prog *Program) Listing() (entries []Entry, err error) {
	addr := prog.Origin
	for _, op := range prog.Ops {
		for n, word := range op.Words {
			if addr > addressMax {
				entries = nil
				err = ErrAddressRange(addr)
				return
			}
			entry := Entry{Addr: addr, Word: word}
			if n == 0 {
				entry.Key = op.Key
			}
			entries = append(entries, entry)
			addr += 1
		}
	}

	return
}

// octalWord renders an address value as a 4-digit octal machine word.
func octalWord(addr int) Word {
	return Word(fmt.Sprintf("%04o", addr))
}
