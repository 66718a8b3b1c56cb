package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListing(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"*100",
		"TWLD j, 17",
		"AND kj",
		"STOP",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	entries, err := prog.Listing()
	assert.NoError(err)

	expected := []Entry{
		{0o100, "0500", "twldj"},
		{0o101, "0017", ""},
		{0o102, "1300", "andjk"},
		{0o103, "0000", "stop"},
	}

	assert.Equal(expected, entries)
}

func TestListingDefaultOrigin(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader("STOP\n"))
	assert.NoError(err)

	entries, err := prog.Listing()
	assert.NoError(err)

	assert.Equal([]Entry{{0, "0000", "stop"}}, entries)
}

// A program that assembles fine can still overflow the address space
// once the origin pushes it past the 12-bit limit.
func TestListingAddressOverflow(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"*7777",
		"TWLD j, 17",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	entries, err := prog.Listing()
	assert.Nil(entries)
	assert.ErrorIs(err, ErrAddressRange(4096))

	// The last valid address is fine.
	prog, err = asm.Parse(strings.NewReader("*7777\nSTOP\n"))
	assert.NoError(err)

	entries, err = prog.Listing()
	assert.NoError(err)
	assert.Equal([]Entry{{addressMax, "0000", "stop"}}, entries)
}

func TestAddressRoundTrip(t *testing.T) {
	assert := assert.New(t)

	// Short octal text widens to the canonical 4-digit form.
	addr, err := parseAddress("7")
	assert.NoError(err)
	assert.Equal(Word("0007"), octalWord(addr))

	// Canonical text round-trips to itself.
	for _, text := range []string{"0000", "0017", "0100", "7777"} {
		addr, err := parseAddress(text)
		assert.NoError(err)
		assert.Equal(Word(text), octalWord(addr))
	}

	// Out of range values fail, never truncate.
	_, err = parseAddress("10000")
	assert.ErrorIs(err, ErrAddressRange(4096))

	_, err = parseAddress("-1")
	assert.ErrorIs(err, ErrAddressRange(-1))
}
