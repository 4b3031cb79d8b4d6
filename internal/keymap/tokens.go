package keymap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
)

// ParseTokens parses press tokens into key messages. A token mixes
// <...> keys with literal characters, e.g. "<Down>jj<CR>". A leading
// backslash makes the rest of the token literal.
func ParseTokens(tokens []string) ([]tea.KeyPressMsg, error) {
	var msgs []tea.KeyPressMsg
	for _, raw := range tokens {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		if strings.HasPrefix(token, `\`) {
			msgs = append(msgs, literal(strings.TrimPrefix(token, `\`))...)
			continue
		}

		remaining := token
		for remaining != "" {
			start := strings.Index(remaining, "<")
			if start == -1 {
				msgs = append(msgs, literal(remaining)...)
				break
			}
			msgs = append(msgs, literal(remaining[:start])...)

			end := strings.Index(remaining[start:], ">")
			if end == -1 {
				msgs = append(msgs, literal(remaining[start:])...)
				break
			}
			key := remaining[start : start+end+1]
			msg, ok := keyFromToken(key)
			if !ok {
				return nil, fmt.Errorf("unknown key token %q", key)
			}
			msgs = append(msgs, msg)
			remaining = remaining[start+end+1:]
		}
	}
	return msgs, nil
}

func literal(s string) []tea.KeyPressMsg {
	var msgs []tea.KeyPressMsg
	for _, r := range s {
		msgs = append(msgs, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return msgs
}

// keyFromToken parses a Vim-like token such as "<Esc>", "<CR>", "<Down>"
// or "<C-n>".
func keyFromToken(token string) (tea.KeyPressMsg, bool) {
	if !strings.HasPrefix(token, "<") || !strings.HasSuffix(token, ">") {
		return tea.KeyPressMsg{}, false
	}
	lower := strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(token, "<"), ">"))
	switch lower {
	case "esc", "escape", "c-[":
		return tea.KeyPressMsg{Code: tea.KeyEscape}, true
	case "cr", "enter", "return":
		return tea.KeyPressMsg{Code: tea.KeyEnter}, true
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}, true
	case "space":
		return tea.KeyPressMsg{Code: ' ', Text: " "}, true
	case "bs", "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}, true
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}, true
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}, true
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}, true
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}, true
	case "home":
		return tea.KeyPressMsg{Code: tea.KeyHome}, true
	case "end":
		return tea.KeyPressMsg{Code: tea.KeyEnd}, true
	}
	if rest, ok := strings.CutPrefix(lower, "c-"); ok && len(rest) == 1 {
		return tea.KeyPressMsg{Code: rune(rest[0]), Mod: tea.ModCtrl}, true
	}
	return tea.KeyPressMsg{}, false
}
