package canvas

import (
	"bytes"
	"fmt"
)

const ipeHeader = `<?xml version="1.0"?>
<!DOCTYPE ipe SYSTEM "ipe.dtd">
<ipe version="70206" creator="Ipe 7.2.7">
<info created="D:20170719160807" modified="D:20170719160807"/>
<ipestyle name="basic">
</ipestyle>
<page>
<layer name="alpha"/>
<view layers="alpha" active="alpha"/>
`

// IpeRepresentation renders the canvas as the content of an Ipe file.
func (c *Canvas) IpeRepresentation() string {
	var out bytes.Buffer

	out.WriteString(ipeHeader)

	for _, mark := range c.Marks {
		out.WriteString(c.ipeCircleRepresentation(mark))
	}
	for _, path := range c.Paths {
		out.WriteString(c.ipePathRepresentation(path))
	}

	out.WriteString("</page>\n</ipe>")
	return out.String()
}

func (c *Canvas) ipePathRepresentation(path Path) string {
	if path.Empty() {
		return ""
	}

	var out bytes.Buffer
	out.WriteString("<path stroke=\"black\">\n")

	point := path.Points[0].ToEuc(c.Scale)
	fmt.Fprintf(&out, "%f %f m\n", point.X, point.Y)

	for _, p := range path.Points[1:] {
		point = p.ToEuc(c.Scale)
		fmt.Fprintf(&out, "%f %f l\n", point.X, point.Y)
	}

	if path.IsClosed {
		out.WriteString("h\n")
	}
	out.WriteString("</path>\n")
	return out.String()
}

func (c *Canvas) ipeCircleRepresentation(circle Circle) string {
	center := circle.Center.ToEuc(c.Scale)

	var out bytes.Buffer
	out.WriteString("<path stroke=\"black\"")
	if circle.IsFilled {
		out.WriteString(" fill=\"black\"")
	}
	fmt.Fprintf(&out, ">\n%f 0 0 %f %f %f e\n</path>\n",
		circle.Radius, circle.Radius, center.X, center.Y)
	return out.String()
}

// SvgRepresentation renders the canvas as the content of an SVG file.
// The y-axis is flipped so the drawing appears the way Ipe shows it.
func (c *Canvas) SvgRepresentation() string {
	var out bytes.Buffer

	out.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	out.WriteString("<svg xmlns=\"http://www.w3.org/2000/svg\">\n")

	for _, mark := range c.Marks {
		center := mark.Center.ToEuc(c.Scale)
		fill := "none"
		if mark.IsFilled {
			fill = "black"
		}
		fmt.Fprintf(&out, "<circle cx=\"%f\" cy=\"%f\" r=\"%f\" stroke=\"black\" fill=\"%s\"/>\n",
			center.X, -center.Y, mark.Radius, fill)
	}

	for _, path := range c.Paths {
		if path.Empty() {
			continue
		}
		out.WriteString("<path fill=\"none\" stroke=\"black\" d=\"")
		point := path.Points[0].ToEuc(c.Scale)
		fmt.Fprintf(&out, "M %f %f", point.X, -point.Y)
		for _, p := range path.Points[1:] {
			point = p.ToEuc(c.Scale)
			fmt.Fprintf(&out, " L %f %f", point.X, -point.Y)
		}
		if path.IsClosed {
			out.WriteString(" Z")
		}
		out.WriteString("\"/>\n")
	}

	out.WriteString("</svg>")
	return out.String()
}
