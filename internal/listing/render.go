package listing

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles colours the parts of a rendered listing.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Bytes   lipgloss.Style
	OpCode  lipgloss.Style
	Operand lipgloss.Style
	Raw     lipgloss.Style
	Error   lipgloss.Style
	Handler lipgloss.Style
}

// NewStyles builds styles bound to w. Without colour every style renders plain text.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		Label:   r.NewStyle().Foreground(lipgloss.Color("#666666")),
		Bytes:   r.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
		OpCode:  r.NewStyle().Foreground(lipgloss.Color("#98FB98")).Bold(true),
		Operand: r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		Raw:     r.NewStyle().Foreground(lipgloss.Color("#FFB86C")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		Handler: r.NewStyle().Foreground(lipgloss.Color("#BD93F9")),
	}
}

// Render writes l as a text listing.
func Render(w io.Writer, l *Listing, color bool) error {
	s := NewStyles(w, color)
	var b strings.Builder

	b.WriteString(s.Title.Render(l.Header.Format + " method body"))
	fmt.Fprintf(&b, " code %d bytes, size %d, max stack %d", l.Header.CodeSize, l.Header.Size, l.Header.MaxStack)
	if l.Header.Locals > 0 || l.Header.LocalSignature != "" {
		fmt.Fprintf(&b, ", locals %d", l.Header.Locals)
		if l.Header.LocalSignature != "" {
			fmt.Fprintf(&b, " (%s)", l.Header.LocalSignature)
		}
	}
	if l.Header.InitLocals {
		b.WriteString(", init locals")
	}
	b.WriteString("\n\n")

	width := 0
	for _, line := range l.Instructions {
		width = max(width, len(line.Bytes))
	}
	for _, line := range l.Instructions {
		RenderLine(&b, s, line, width)
		b.WriteByte('\n')
	}

	if len(l.Handlers) > 0 {
		b.WriteByte('\n')
		for _, h := range l.Handlers {
			b.WriteString(s.Handler.Render(FormatHandler(h)))
			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderLine writes one instruction line. width pads the bytes column.
func RenderLine(b *strings.Builder, s Styles, line Line, width int) {
	b.WriteString(s.Label.Render(line.Label + ":"))
	b.WriteString("  ")
	b.WriteString(s.Bytes.Render(fmt.Sprintf("%-*s", width, line.Bytes)))
	b.WriteString("  ")
	b.WriteString(s.OpCode.Render(line.OpCode))
	if line.Operand != "" {
		b.WriteByte(' ')
		if line.Raw {
			b.WriteString(s.Raw.Render(line.Operand))
		} else {
			b.WriteString(s.Operand.Render(line.Operand))
		}
	}
	if line.Error != "" {
		b.WriteString("  ")
		b.WriteString(s.Error.Render(line.Error))
	}
}

// FormatHandler renders a clause in ilasm order.
func FormatHandler(h Handler) string {
	var b strings.Builder
	fmt.Fprintf(&b, ".try %s to %s ", h.TryStart, h.TryEnd)
	switch h.Type {
	case "catch":
		fmt.Fprintf(&b, "catch %s ", h.CatchType)
	case "filter":
		fmt.Fprintf(&b, "filter %s ", h.FilterStart)
	default:
		b.WriteString(h.Type + " ")
	}
	fmt.Fprintf(&b, "handler %s to %s", h.HandlerStart, h.HandlerEnd)
	return b.String()
}
