package packet

import (
	"fmt"
	"strings"
)

// Walk visits p and every descendant in pre-order, passing each packet's
// nesting depth (the root is 0). Returning an error from fn stops the walk
// and propagates that error. A nil packet is not visited.
func Walk(p *Packet, fn func(p *Packet, depth int) error) error {
	return walk(p, 0, fn)
}

func walk(p *Packet, depth int, fn func(*Packet, int) error) error {
	if p == nil {
		return nil
	}
	if err := fn(p, depth); err != nil {
		return err
	}
	for _, child := range p.Children {
		if err := walk(child, depth+1, fn); err != nil {
			return err
		}
	}

	return nil
}

// VersionSum adds up the version field of p and all of its descendants.
// End packets contribute 0.
func VersionSum(p *Packet) uint64 {
	var sum uint64
	_ = Walk(p, func(q *Packet, _ int) error {
		if !q.IsEnd() {
			sum += uint64(q.Version)
		}
		return nil
	})

	return sum
}

// operatorNames maps operator type IDs to their short rendering.
var operatorNames = map[uint8]string{
	TypeSum:         "sum",
	TypeProduct:     "product",
	TypeMinimum:     "min",
	TypeMaximum:     "max",
	TypeGreaterThan: "gt",
	TypeLessThan:    "lt",
	TypeEqualTo:     "eq",
}

// String renders p as a compact expression, e.g.
// "v1 lt[v6 literal(10), v2 literal(20)]".
func (p *Packet) String() string {
	var sb strings.Builder
	p.render(&sb)

	return sb.String()
}

func (p *Packet) render(sb *strings.Builder) {
	if p.IsEnd() {
		sb.WriteString("end")
		return
	}
	if p.Kind == KindLiteral {
		fmt.Fprintf(sb, "v%d literal(%d)", p.Version, p.Value)
		return
	}
	name, ok := operatorNames[p.Type]
	if !ok {
		name = fmt.Sprintf("type%d", p.Type)
	}
	fmt.Fprintf(sb, "v%d %s[", p.Version, name)
	for i, child := range p.Children {
		if i > 0 {
			sb.WriteString(", ")
		}
		child.render(sb)
	}
	sb.WriteByte(']')
}
