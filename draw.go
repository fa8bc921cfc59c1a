// This file defines the Draw method for the model.

package main

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/ui"
)

// MapViewHeight is the number of lines of the map viewport: the screen minus
// two log lines and the status bar.
const MapViewHeight = UIHeight - 3

// cameraOrigin returns the map coordinates of the top-left cell of the
// viewport. Maps are larger than the screen, so the camera follows the
// player, or the cursor in keyboard examine mode.
func (md *model) cameraOrigin() gruid.Point {
	g := md.g
	center := g.PP()
	if md.targ.kb && md.targ.p != InvalidPos {
		center = md.targ.p
	}
	size := g.Map.Size()
	o := gruid.Point{X: center.X - UIWidth/2, Y: center.Y - MapViewHeight/2}
	if o.X > size.X-UIWidth {
		o.X = size.X - UIWidth
	}
	if o.Y > size.Y-MapViewHeight {
		o.Y = size.Y - MapViewHeight
	}
	if o.X < 0 {
		o.X = 0
	}
	if o.Y < 0 {
		o.Y = 0
	}
	return o
}

// Draw implements Draw() for gruid.Model.
func (md *model) Draw() gruid.Grid {
	md.gd.Fill(gruid.Cell{Rune: ' '})
	switch md.mode {
	case modeQuitting:
		return md.gd.Slice(gruid.Range{})
	case modePager:
		if md.pager.mode == modeDump {
			md.gd.Copy(md.pager.pg.Draw())
			return md.gd
		}
	case modeLoadGame:
		md.drawLoadGameScreen()
		return md.gd
	}
	// Log drawing.
	md.log.Content = md.DrawLog()
	md.log.Draw(md.gd.Slice(md.gd.Range().Lines(0, 2)))
	// Map drawing.
	md.drawMap(md.gd.Slice(md.gd.Range().Shift(0, 2, 0, -1)))
	// Some extra widgets may appear in some modes: they're drawn over log
	// lines and map.
	switch md.mode {
	case modeNormal:
		if md.status.focus {
			md.drawStatusDesc()
		} else if md.targ.p != InvalidPos {
			// Target description label drawing (over log lines and map).
			md.drawTargInfo()
		}
	case modePager:
		pgd := md.pager.pg.Draw()
		rg := md.pager.pg.View()
		sz := pgd.Size()
		if rg.Min.Y > 0 {
			pgd.Set(gruid.Point{X: sz.X - 1, Y: 1}, gruid.Cell{Rune: '↑'})
		}
		if rg.Max.Y < md.pager.pg.Lines() {
			pgd.Set(gruid.Point{X: sz.X - 1, Y: sz.Y - 2}, gruid.Cell{Rune: '↓'})
		}
		md.gd.Copy(pgd)
	case modeMenu:
		md.gd.Copy(md.menu.main.Draw())
		if md.desc.Content.Text() != "" {
			md.desc.Draw(md.gd.Slice(md.gd.Range().Columns(UIWidth/2, UIWidth)))
		}
	}
	// We draw the status line last: it should always be visible and no
	// other widgets should ever need that space.
	md.gd.Slice(md.gd.Range().Line(UIHeight - 1)).Copy(md.status.menu.Draw())
	return md.gd
}

func (md *model) drawMap(gd gruid.Grid) {
	g := md.g
	origin := md.cameraOrigin()
	mrg := g.Map.Terrain.Range()
	// Terrain drawing (explored tiles only).
	sz := gd.Size()
	for y := 0; y < sz.Y; y++ {
		for x := 0; x < sz.X; x++ {
			ps := gruid.Point{X: x, Y: y}
			p := ps.Add(origin)
			if !p.In(mrg) || !g.Map.Explored(p) {
				continue
			}
			drawTerrainRuneAt(gd, g, TerrainRune(g.Map.Known.At(p)), p, ps)
		}
	}
	// Stairs drawing.
	md.drawStairsAt(gd, g.StairsP, '>', origin)
	md.drawStairsAt(gd, g.UpstairsP, '<', origin)
	// Entity drawing (with rendering order).
	ents := make([]*Entity, len(g.Entities))
	copy(ents, g.Entities)
	slices.SortStableFunc(ents, func(e, f *Entity) int {
		return cmp.Compare(e.RenderOrder(), f.RenderOrder())
	})
	for _, e := range ents {
		if !g.InFOV(e.P) && !(e.AlwaysVisible && g.Map.Explored(e.P)) {
			continue
		}
		ps := e.P.Sub(origin)
		if !ps.In(gd.Range()) {
			continue
		}
		c := gd.At(ps)
		c.Rune = e.Rune
		c.Style.Fg = e.Color
		gd.Set(ps, c)
	}
	// Travel path highlighting.
	md.drawTravelPath(gd, origin)
}

func drawTerrainRuneAt(gd gruid.Grid, g *Game, r rune, p, ps gruid.Point) {
	c := gruid.Cell{Rune: r}
	if g.InFOV(p) {
		c.Style.Bg = ColorBackgroundSecondary
	} else {
		c.Style.Fg = ColorForegroundSecondary
	}
	c.Style.Attrs = AttrInMap
	if r == '#' {
		c.Style.Attrs |= AttrBold
	}
	gd.Set(ps, c)
}

func (md *model) drawStairsAt(gd gruid.Grid, p gruid.Point, r rune, origin gruid.Point) {
	g := md.g
	if p == InvalidPos || !g.Map.Explored(p) {
		return
	}
	ps := p.Sub(origin)
	if !ps.In(gd.Range()) {
		return
	}
	c := gd.At(ps)
	c.Rune = r
	c.Style.Fg = ColorStairs
	gd.Set(ps, c)
}

func (md *model) drawTravelPath(gd gruid.Grid, origin gruid.Point) {
	if md.targ.p == InvalidPos {
		return
	}
	for _, p := range md.auto.path {
		ps := p.Sub(origin)
		if !ps.In(gd.Range()) {
			continue
		}
		c := gd.At(ps)
		c.Style.Attrs |= AttrReverse
		gd.Set(ps, c)
	}
	ps := md.targ.p.Sub(origin)
	if ps.In(gd.Range()) {
		c := gd.At(ps)
		c.Style.Attrs |= AttrReverse
		gd.Set(ps, c)
	}
}

func (md *model) drawStatusDesc() {
	rg := md.status.menu.ActiveBounds()
	x := (rg.Min.X + rg.Max.X) / 2
	sz := md.status.desc.Content.Size()
	w, h := sz.X, sz.Y
	x -= w / 2
	if x+w > UIWidth {
		x = UIWidth - w
	}
	if x < 0 {
		x = 0
	}
	md.status.desc.Draw(md.gd.Slice(md.gd.Range().Lines(UIHeight-3-h, UIHeight-1).Shift(x, 0, 0, 0)))
}

// Markups contains the styling markup-characters we use for StyledText.
var Markups = map[rune]gruid.Style{
	'B': {Fg: ColorBlue},
	'C': {Fg: ColorCyan},
	'G': {Fg: ColorGreen},
	'M': {Fg: ColorMagenta},
	'O': {Fg: ColorOrange},
	'R': {Fg: ColorRed},
	'V': {Fg: ColorViolet},
	'Y': {Fg: ColorYellow},
	'b': {Fg: ColorBlue, Attrs: AttrInMap},
	'c': {Fg: ColorCyan, Attrs: AttrInMap},
	'g': {Fg: ColorGreen, Attrs: AttrInMap},
	'm': {Fg: ColorMagenta, Attrs: AttrInMap},
	'o': {Fg: ColorOrange, Attrs: AttrInMap},
	'r': {Fg: ColorRed, Attrs: AttrInMap},
	'v': {Fg: ColorViolet, Attrs: AttrInMap},
	'y': {Fg: ColorYellow, Attrs: AttrInMap},
}

func (md *model) drawTargInfo() {
	g := md.g
	origin := md.cameraOrigin()
	p := gruid.Point{}
	if md.targ.p.X-origin.X < UIWidth/2 {
		p.X += UIWidth/2 + 1
	}
	info := md.targ.info

	y := 2
	stt := ui.StyledText{}.WithMarkups(Markups)
	formatBox := func(title, s string, fg gruid.Color) {
		md.desc.Content = stt.WithText(s).Format(UIWidth/2 - 3)
		md.desc.Box = &ui.Box{Title: stt.WithText(title).WithStyle(gruid.Style{Fg: fg})}
		y += md.desc.Draw(md.gd.Slice(gruid.NewRange(0, y, UIWidth/2-1, 2+MapViewHeight).Add(p))).Size().Y
	}

	features := []string{TerrainName(g.Map.Known.At(md.targ.p))}
	switch {
	case md.targ.p == g.StairsP && g.Map.Explored(md.targ.p):
		features[0] = "staircase leading down"
	case md.targ.p == g.UpstairsP && g.Map.Explored(md.targ.p):
		features[0] = "staircase leading up"
	}
	if !info.sees && !info.unknown {
		features = append(features, "seen")
	} else if info.unknown {
		features = append(features, "unexplored")
	}
	t := features[0]
	if len(features) > 1 {
		t += " (" + strings.Join(features[1:], ", ") + ")"
	}
	var fg gruid.Color
	desc := TerrainDesc(g.Map.Known.At(md.targ.p))
	switch {
	case md.targ.p == g.StairsP && g.Map.Explored(md.targ.p):
		desc = "A staircase leading further down into the catacombs. Press > while standing on it."
	case md.targ.p == g.UpstairsP && g.Map.Explored(md.targ.p):
		desc = "A staircase leading back towards the surface. Press < while standing on it."
	}
	formatBox(t, desc, fg)
	for _, e := range info.entities {
		var sb strings.Builder
		name := e.Name
		cl := e.Color
		switch {
		case e.Fighter != nil:
			if info.sees {
				fmt.Fprintf(&sb, "HP:%d/%d A:%d D:%d", e.Fighter.HP, g.MaxHP(e), g.Power(e), g.Defense(e))
			} else {
				cl = ColorForeground
				fmt.Fprintf(&sb, "HP:?/%d", g.MaxHP(e))
			}
			if _, ok := e.Behavior.(*Confused); ok {
				name += " (confused)"
			}
		case e.IsItem():
			sb.WriteString(g.ItemDesc(e))
		default:
			sb.WriteString("The remains of a fallen dungeon dweller.")
		}
		formatBox(name, sb.String(), cl)
	}
}

func (md *model) drawLoadGameScreen() {
	ui.Textf("Castles and Catacombs %s", Version).WithStyle(gruid.Style{}.WithFg(ColorMagenta)).
		Draw(md.gd.Slice(gruid.NewRange(-11+UIWidth/2, 5, UIWidth, UIHeight)))
	ui.Text("—Press any key to load saved game—").
		Draw(md.gd.Slice(gruid.NewRange(-17+UIWidth/2, 18, UIWidth, UIHeight)))
	gd := md.gd.Slice(gruid.NewRange(-12+UIWidth/2, 7, UIWidth, UIHeight))
	drawGamePicture(gd)
}

func drawGamePicture(gd gruid.Grid) {
	markups := maps.Clone(Markups)
	for i, st := range markups {
		markups[i] = st.WithAttrs(AttrInMap)
	}
	st := gruid.Style{}.WithAttrs(AttrInMap)
	markups['w'] = st.WithFg(ColorForeground).WithBg(ColorBackgroundSecondary).WithAttrs(AttrBold | AttrInMap)
	markups['W'] = st.WithFg(ColorForegroundSecondary).WithBg(ColorBackground).WithAttrs(AttrBold | AttrInMap)
	markups['l'] = st.WithFg(ColorForeground).WithBg(ColorBackgroundSecondary)
	markups['y'] = st.WithFg(ColorYellow).WithBg(ColorBackgroundSecondary)
	markups['v'] = st.WithFg(ColorViolet).WithBg(ColorBackgroundSecondary)
	markups['r'] = st.WithFg(ColorRed).WithBg(ColorBackgroundSecondary)
	markups['b'] = st.WithFg(ColorBlue).WithBg(ColorBackgroundSecondary)
	markups['d'] = st.WithFg(ColorForegroundSecondary).WithBg(ColorBackground)
	markups['t'] = gruid.Style{}.WithFg(ColorGreen)
	stt := ui.StyledText{}.WithMarkups(markups)
	text := `@t────────────────────────
@W##########@w####@W##########
@W#@d........@w#@l..@rT@w#@d.....@w#@d..@W#
@W#@d.@w##@d....@w#@l.@b@@@l.@w#@d..@w####@d.@W#
@W#@d.@w#@d..@ro@d..@w+@l...@w+@d..@v!@d.@w#@d..@W#
@W#@d.@w#@d.....@w#@l.@y&@l.@w#@d.....@w#@d.@W#
@W#@d.@w####@d..@w#@l.@y>@l.@w#@d..@w###@d..@W#
@W#@d.......@d.@w####@d........@W#
@W######################
@t────────────────────────
`
	stt.WithText(text).Draw(gd)
}
