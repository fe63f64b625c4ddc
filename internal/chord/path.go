package chord

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// fallbackColor is used for unparsable palette entries.
const fallbackColor = "#999999"

// Blend mixes two hex colors 50/50 in RGB. The inputs are put in a fixed
// order first, so Blend(a, b) == Blend(b, a).
func Blend(a, b string) string {
	if b < a {
		a, b = b, a
	}
	ca, err := colorful.Hex(a)
	if err != nil {
		ca, _ = colorful.Hex(fallbackColor)
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		cb, _ = colorful.Hex(fallbackColor)
	}
	return ca.BlendRgb(cb, 0.5).Clamped().Hex()
}

// Point converts a polar position to canvas offsets from the center.
func Point(r, angle float64) (x, y float64) {
	return r * math.Sin(angle), -r * math.Cos(angle)
}

func largeArc(s Span) int {
	if s.Width() > math.Pi {
		return 1
	}
	return 0
}

func pt(r, angle float64) string {
	x, y := Point(r, angle)
	return fmt.Sprintf("%.2f,%.2f", x, y)
}

// Path returns the annular sector between inner and outer radius, relative
// to the diagram center.
func (a Arc) Path(inner, outer float64) string {
	var b strings.Builder
	la := largeArc(a.Span)
	fmt.Fprintf(&b, "M%s", pt(outer, a.Start))
	fmt.Fprintf(&b, "A%.2f,%.2f 0 %d 1 %s", outer, outer, la, pt(outer, a.End))
	fmt.Fprintf(&b, "L%s", pt(inner, a.End))
	fmt.Fprintf(&b, "A%.2f,%.2f 0 %d 0 %s", inner, inner, la, pt(inner, a.Start))
	b.WriteString("Z")
	return b.String()
}

// Path returns the closed ribbon outline at radius r: an arc along the source
// sub-interval, a quadratic curve through the center to the target, an arc
// along the target and a curve back.
func (rb Ribbon) Path(r float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "M%s", pt(r, rb.Source.Start))
	fmt.Fprintf(&b, "A%.2f,%.2f 0 %d 1 %s", r, r, largeArc(rb.Source), pt(r, rb.Source.End))
	fmt.Fprintf(&b, "Q0,0 %s", pt(r, rb.Target.Start))
	fmt.Fprintf(&b, "A%.2f,%.2f 0 %d 1 %s", r, r, largeArc(rb.Target), pt(r, rb.Target.End))
	fmt.Fprintf(&b, "Q0,0 %s", pt(r, rb.Source.Start))
	b.WriteString("Z")
	return b.String()
}
