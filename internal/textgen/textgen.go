// Package textgen produces single lines of synthetic boot-log text: status
// messages, C-like statements, assembly instructions and shell lines.
//
// The text is cosmetic. Nothing generated here is ever parsed or executed.
package textgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/five82/phosphor/internal/entropy"
)

// Category identifies which template family a line is drawn from.
type Category int

const (
	CategoryStatus Category = iota
	CategoryC
	CategoryAsm
	CategoryShell
)

// Cumulative thresholds for the category roll.
const (
	statusThreshold = 0.18
	cThreshold      = 0.55
	asmThreshold    = 0.82
)

func (c Category) String() string {
	switch c {
	case CategoryStatus:
		return "status"
	case CategoryC:
		return "c"
	case CategoryAsm:
		return "asm"
	case CategoryShell:
		return "shell"
	default:
		return "unknown"
	}
}

// CategoryFor maps a roll in [0, 1) onto a category.
func CategoryFor(roll float64) Category {
	switch {
	case roll < statusThreshold:
		return CategoryStatus
	case roll < cThreshold:
		return CategoryC
	case roll < asmThreshold:
		return CategoryAsm
	default:
		return CategoryShell
	}
}

// Generator draws lines from a random source.
type Generator struct {
	src entropy.Source
}

// New returns a Generator backed by src.
func New(src entropy.Source) *Generator {
	return &Generator{src: src}
}

// Generate returns one line from a weighted-random category.
func (g *Generator) Generate() string {
	return g.Line(CategoryFor(g.src.Float64()))
}

// Line returns one line from the given category.
func (g *Generator) Line(c Category) string {
	switch c {
	case CategoryStatus:
		return g.statusLine()
	case CategoryC:
		return g.cLine()
	case CategoryAsm:
		return g.asmLine()
	default:
		return g.shellLine()
	}
}

func (g *Generator) statusLine() string {
	base := entropy.Pick(g.src, statuses)
	switch base {
	case statusSegfault:
		return "SEGFAULT @ " + Hex(g.src, 4)
	case statusChecksum:
		return "CHECKSUM " + Hex(g.src, 4) + " OK"
	case statusMemory:
		return "ACCESSING MEMORY " + Hex(g.src, 4)
	case statusLoading:
		return "LOADING MODULE " + strings.ToUpper(g.pick(modules))
	case statusLinking:
		return "LINKING " + g.pick(modules) + ".o"
	default:
		return base + "..."
	}
}

func (g *Generator) cLine() string {
	roll := g.src.Float64()
	switch {
	case roll < 0.35:
		return fmt.Sprintf("%s %s = %s;", g.pick(types), g.pick(variables), Hex(g.src, 4))
	case roll < 0.7:
		return fmt.Sprintf("if (%s & %s) { %s ^= %s; }",
			g.pick(variables), g.pick(flags), g.pick(variables), Hex(g.src, 2))
	default:
		return fmt.Sprintf("for (i = 0; i < %s; i++) { %s[i] ^= %s; }",
			Dec(g.src, 8, 128), g.pick(variables), Dec(g.src, 1, 255))
	}
}

func (g *Generator) asmLine() string {
	op := g.pick(opcodes)
	if op == "call" || op == "jmp" {
		return op + " " + g.pick(labels)
	}
	return fmt.Sprintf("%s %s, %s", op, g.pick(registers), Hex(g.src, 4))
}

func (g *Generator) shellLine() string {
	if g.src.Float64() < 0.5 {
		return fmt.Sprintf("if [ $ERR -ne 0 ]; then %s; fi", g.pick(labels))
	}
	return fmt.Sprintf(`echo "[ OK ] %s %s.%s"`, g.pick(modules), Dec(g.src, 1, 9), Dec(g.src, 0, 9))
}

func (g *Generator) pick(items []string) string {
	return entropy.Pick(g.src, items)
}

// Hex returns a 0x-prefixed, upper-case hexadecimal token of the given number
// of digits, drawing one digit at a time.
func Hex(src entropy.Source, digits int) string {
	var b strings.Builder
	b.Grow(2 + digits)
	b.WriteString("0x")
	for range digits {
		b.WriteString(strings.ToUpper(strconv.FormatInt(int64(entropy.Intn(src, 16)), 16)))
	}
	return b.String()
}

// Dec returns a decimal integer in [min, max) as a string.
func Dec(src entropy.Source, min, max int) string {
	return strconv.Itoa(int(entropy.Between(src, float64(min), float64(max))))
}
