// Package asm implements a one-pass assembler for a small fictional
// two-register machine.
//
// The instruction set has five mnemonics (stop, twld, twst, and, clr)
// over two registers, j and k. Source is assembled line by line into
// 12-bit machine words, reported as zero-padded 4-digit octal. An
// optional leading "*" directive sets the starting load address, and
// operands may use $() Starlark expressions evaluated at assembly time.
package asm
