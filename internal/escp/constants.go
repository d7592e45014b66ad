// Package escp is the command encoder: one pure function per ESC/P2
// command, each returning the exact byte sequence the EPSON LQ-2090II (and
// the rest of the 24-pin ESC/P2 family) expects on its input stream.
//
// Every function validates its parameters and returns an error from
// escp2render/internal/errs rather than emitting malformed bytes — no
// partial output is ever produced by a failing call.
package escp

// Single control-code bytes, grounded on the teacher's ESC_POS_COMMANDS
// table (internal/driver/epson/command.go) but generalized to the full
// ESC/P2 opcode set spec.md §4.1 names rather than the ESC/POS subset the
// teacher used.
const (
	ESC byte = 0x1B
	FS  byte = 0x1C
	GS  byte = 0x1D
	DLE byte = 0x10
	EOT byte = 0x04

	CR byte = 0x0D
	LF byte = 0x0A
	FF byte = 0x0C
	HT byte = 0x09
	VT byte = 0x0B

	CondensedOnByte  byte = 0x0F
	CondensedOffByte byte = 0x12
)

// Fixed zero-parameter command byte sequences. These never fail, so they
// are exposed as plain functions for symmetry with the parametrized
// commands below rather than as package vars — callers never need to
// distinguish "might return an error" from "can't".

// Initialize emits ESC @, resetting the printer to power-on defaults.
func Initialize() []byte { return []byte{ESC, 0x40} }

// LineSpacing18 selects 1/8-inch line spacing (ESC 0).
func LineSpacing18() []byte { return []byte{ESC, 0x30} }

// LineSpacing760 selects 7/60-inch line spacing (ESC 1).
func LineSpacing760() []byte { return []byte{ESC, 0x31} }

// LineSpacing16 selects 1/6-inch line spacing (ESC 2).
func LineSpacing16() []byte { return []byte{ESC, 0x32} }

// CarriageReturn emits CR.
func CarriageReturn() []byte { return []byte{CR} }

// LineFeed emits LF.
func LineFeed() []byte { return []byte{LF} }

// FormFeed emits FF.
func FormFeed() []byte { return []byte{FF} }

// HorizontalTab emits HT.
func HorizontalTab() []byte { return []byte{HT} }

// VerticalTab emits VT.
func VerticalTab() []byte { return []byte{VT} }

// CancelBottomMargin emits ESC O, cancelling a previously set bottom margin.
func CancelBottomMargin() []byte { return []byte{ESC, 0x4F} }

// CPI10 selects 10 characters per inch (ESC P).
func CPI10() []byte { return []byte{ESC, 0x50} }

// CPI12 selects 12 characters per inch, "elite" pitch (ESC M).
func CPI12() []byte { return []byte{ESC, 0x4D} }

// CPI15 selects 15 characters per inch (ESC g).
func CPI15() []byte { return []byte{ESC, 0x67} }

// CondensedOn emits SI (0x0F), enabling condensed printing.
func CondensedOn() []byte { return []byte{CondensedOnByte} }

// CondensedOff emits DC2 (0x12), disabling condensed printing.
func CondensedOff() []byte { return []byte{CondensedOffByte} }

// BoldOn emits ESC E, enabling emphasized (bold) printing.
func BoldOn() []byte { return []byte{ESC, 0x45} }

// BoldOff emits ESC F, disabling emphasized printing.
func BoldOff() []byte { return []byte{ESC, 0x46} }

// ItalicOn emits ESC 4, enabling italic printing.
func ItalicOn() []byte { return []byte{ESC, 0x34} }

// ItalicOff emits ESC 5, disabling italic printing.
func ItalicOff() []byte { return []byte{ESC, 0x35} }

// DoubleStrikeOn emits ESC G, enabling double-strike printing.
func DoubleStrikeOn() []byte { return []byte{ESC, 0x47} }

// DoubleStrikeOff emits ESC H, disabling double-strike printing.
func DoubleStrikeOff() []byte { return []byte{ESC, 0x48} }
