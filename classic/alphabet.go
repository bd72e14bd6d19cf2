package classic

import (
	"github.com/ezrec/lovelace/symbol"
)

// REGISTER_COUNT is the number of registers of the machine.
const REGISTER_COUNT = 25

// Registers, in register order.
var Registers = symbol.NewAlphabet(
	"🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼", "🐨", "🐯", "🦁", "🐮",
	"🕐", "🕑", "🕒", "🕓", "🕔", "🕕", "🕖", "🕗", "🕘", "🕙", "🕚", "🕛",
	"🚨",
)

// Digits 0 to 9.
var Digits = symbol.NewAlphabet(
	"🆚", "📌", "✌️", "🤟", "🤞", "🖐️", "🤘", "👌", "👍", "👊",
)

// Opcodes, in Op order.
var Opcodes = symbol.NewAlphabet(
	"🌞", "⭐", "🎲", "😀", "➕", "➖", "✖️", "➗", "➰", "🤔", "🔂", "🔁", "😐",
)
