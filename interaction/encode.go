package interaction

import (
	"strings"
)

// FileExtension is the extension of persisted interaction files.
const FileExtension = "hif"

// Encode renders i with the names of ctx, one operand per line and one tab of
// indentation per nesting level. The output ends with a newline.
//
//	strict(
//		client -- req ->|,
//		req -> server
//	)
func Encode(ctx *Context, i *Interaction) []byte {
	var b strings.Builder
	writeTerm(&b, ctx, i, 0)
	b.WriteByte('\n')
	return []byte(b.String())
}

func writeTerm(b *strings.Builder, ctx *Context, i *Interaction, depth int) {
	indent(b, depth)
	if i == nil {
		b.WriteString("o")
		return
	}
	switch {
	case i.Kind == KindEmpty:
		b.WriteString("o")
		return
	case i.Kind == KindEmission:
		b.WriteString(ctx.LifelineName(i.Lifeline))
		b.WriteString(" -- ")
		b.WriteString(ctx.MessageName(i.Message))
		b.WriteString(" ->|")
		return
	case i.Kind == KindReception:
		b.WriteString(ctx.MessageName(i.Message))
		b.WriteString(" -> ")
		b.WriteString(ctx.LifelineName(i.Lifeline))
		return
	}

	b.WriteString(i.Kind.String())
	if i.Kind == KindCoReg {
		b.WriteByte('(')
		for k, l := range i.CoReg {
			if k > 0 {
				b.WriteByte(',')
			}
			b.WriteString(ctx.LifelineName(l))
		}
		b.WriteByte(')')
	}
	b.WriteString("(\n")
	for k, c := range i.Children {
		if k > 0 {
			b.WriteString(",\n")
		}
		writeTerm(b, ctx, c, depth+1)
	}
	b.WriteByte('\n')
	indent(b, depth)
	b.WriteByte(')')
}

func indent(b *strings.Builder, depth int) {
	for k := 0; k < depth; k++ {
		b.WriteByte('\t')
	}
}
