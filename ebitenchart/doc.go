// Package ebitenchart hosts hapticharts widgets inside an [Ebitengine] game.
//
// A [Host] places widgets on screen, polls mouse and touch input every frame
// and feeds each widget chart-local pointer samples. [DrawLayout] renders a
// widget's layout from the very regions the widget hit-tests, so what is
// drawn and what responds to touch never drift apart. [FlashDevice] is a
// visual stand-in for a haptic engine: it implements hapticharts.Device and
// animates a glow level with [gween] tweens.
//
//	host := ebitenchart.NewHost()
//	host.Add(widget, 40, 60)
//
//	func (g *Game) Update() error { g.host.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.host.Draw(s, ebitenchart.DefaultTheme) }
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package ebitenchart
