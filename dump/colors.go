package dump

import (
	"github.com/fatih/color"

	"github.com/blobfig/go-blobfig/wire"
)

// Colorable names one colorizable span of output: a value (or key, or
// separator) belonging to a value of some kind.
type Colorable struct {
	Tag  wire.Tag
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	FieldColor
	SepColor
	SummaryColor
)

// Colors maps output spans to sprint functions. Missing entries fall
// back to Default.
type Colors struct {
	Default func(...any) string
	Map     map[Colorable]func(...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(...any) string{},
	}
	for _, t := range wire.Tags() {
		colors.Map[Colorable{Tag: t, Attr: FieldColor}] = color.RGB(196, 96, 16).SprintFunc()
		colors.Map[Colorable{Tag: t, Attr: SepColor}] = color.RGB(255, 0, 196).SprintFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Tag = wire.NullTag
	colors.Map[able] = color.RGB(168, 0, 196).SprintFunc()

	able.Tag = wire.BoolTag
	colors.Map[able] = color.New(color.FgCyan).SprintFunc()

	able.Tag = wire.IntTag
	colors.Map[able] = color.RGB(128, 216, 236).SprintFunc()

	able.Tag = wire.FloatTag
	colors.Map[able] = color.RGB(128, 216, 236).SprintFunc()

	able.Tag = wire.StringTag
	colors.Map[able] = color.RGB(8, 196, 16).SprintFunc()

	able.Attr = SummaryColor
	able.Tag = wire.ArrayTag
	colors.Map[able] = color.RGB(198, 198, 46).SprintFunc()

	able.Tag = wire.FileTag
	colors.Map[able] = color.RGB(88, 158, 86).SprintFunc()
	return colors
}

func colorDefault(vs ...any) string {
	if len(vs) == 1 {
		if s, ok := vs[0].(string); ok {
			return s
		}
	}
	return color.New().Sprint(vs...)
}

func (c *Colors) Color(t wire.Tag, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t wire.Tag, a ColorAttr) func(...any) string {
	f := c.Map[Colorable{Tag: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
