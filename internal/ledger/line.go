package ledger

import "strings"

// parseLine splits one extracted line into exactly arity field tokens.
//
// The extraction model is instructed to emit single-quoted, comma-separated
// rows, but free-text item names often contain commas of their own. When the
// split produces too many tokens, the first token (the date) and the last
// arity-2 tokens (the fixed numeric tail) are kept as positional anchors and
// everything between them is collapsed into the item name. Lines with too few
// tokens are rejected outright; padding would invent data.
func parseLine(line string, arity int) ([]string, bool) {
	line = strings.Trim(strings.TrimSpace(line), "'")

	parts := strings.Split(line, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		tokens = append(tokens, strings.Trim(strings.TrimSpace(part), `'"`))
	}

	switch {
	case len(tokens) == arity:
		return tokens, true
	case len(tokens) > arity && arity >= 3:
		anchors := arity - 2
		rebuilt := make([]string, 0, arity)
		rebuilt = append(rebuilt, tokens[0])
		rebuilt = append(rebuilt, strings.Join(tokens[1:len(tokens)-anchors], " "))
		rebuilt = append(rebuilt, tokens[len(tokens)-anchors:]...)
		return rebuilt, true
	default:
		return nil, false
	}
}
