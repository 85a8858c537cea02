package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderFooter lists the shortcuts of the active scope as "key desc" pairs,
// dropping whole pairs that would not fit.
func renderFooter(bindings []KeyBinding, width int) string {
	width = max(1, width)
	var b strings.Builder
	used := 0
	for _, kb := range bindings {
		help := kb.binding().Help()
		if help.Key == "" {
			continue
		}
		plain := help.Key + " " + help.Desc
		sep := 0
		if used > 0 {
			sep = 2
		}
		if used+sep+ansi.StringWidth(plain) > width {
			break
		}
		if sep > 0 {
			b.WriteString(footerDescStyle.Render("  "))
		}
		b.WriteString(footerKeyStyle.Render(help.Key) + footerDescStyle.Render(" "+help.Desc))
		used += sep + ansi.StringWidth(plain)
	}
	line := b.String()
	if used == 0 {
		line = footerDescStyle.Render("Sem atalhos")
	}
	return fillBar(footerStyle, line, width)
}

// renderStatusBar shows the newest toast, or the fallback text when there is
// none.
func renderStatusBar(toasts Toasts, fallback string, width int) string {
	width = max(1, width)
	t, ok := toasts.Current()
	if !ok {
		text := strings.TrimSpace(fallback)
		if text == "" {
			text = "Pronto"
		}
		return fillBar(statusStyle.Foreground(colorMuted), text, width)
	}
	look, ok := toastLook[t.Variant]
	if !ok {
		look = toastLook[ToastInfo]
	}
	return fillBar(statusStyle.Foreground(look.color), look.glyph+" "+t.Text(), width)
}

func fillBar(style lipgloss.Style, text string, width int) string {
	text = ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "…")
	return style.Width(width).MaxWidth(width).Render(text)
}

// TrimToWidth cuts s to at most width cells, keeping ANSI sequences intact.
func TrimToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "")
}

// fitHeight clips or pads s to exactly height lines.
func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) >= height {
		return strings.Join(lines[:height], "\n")
	}
	return s + strings.Repeat("\n", height-len(lines))
}
