package robot

import (
	"github.com/ezrec/lovelace/symbol"
)

// Opcodes, in Op order.
var Opcodes = symbol.NewAlphabet("🚶", "🎨", "🤔", "🔁", "🔂", "😐")

// Directions, in Direction order.
var Directions = symbol.NewAlphabet("✈️", "🚇", "🚠", "🚜")

// Colors, in Color order starting at COLOR_RED.
var Colors = symbol.NewAlphabet("🌹", "🌻", "🍀", "🍇")

// Predicates, in PredicateKind order.
var Predicates = symbol.NewAlphabet("🧱", "🛤️", "🏁", "🎯", "🌡️")

// Comparators, single symbol forms.
var Comparators = symbol.NewAlphabet("🟰", "🚫", "🔥", "🧊")

// Keycaps are the keycap digits 0 to 9.
var Keycaps = symbol.NewAlphabet(
	"0️⃣", "1️⃣", "2️⃣", "3️⃣", "4️⃣",
	"5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣",
)
