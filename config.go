package hapticharts

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// WidgetConfig is the declarative description of one widget: which chart,
// its data and knobs, and how feedback is delivered. Knobs left unset take
// the chart's defaults.
type WidgetConfig struct {
	Name   string    `yaml:"name"`
	Kind   string    `yaml:"kind"` // bar, stacked, pie or bubble
	Values []float64 `yaml:"values"`

	Padding    *float64 `yaml:"padding"`
	Gap        *float64 `yaml:"gap"`
	Spacing    *float64 `yaml:"spacing"`
	MaxValue   *float64 `yaml:"maxValue"`
	Separation *float64 `yaml:"separation"`
	Donut      bool     `yaml:"donut"`
	DonutRatio *float64 `yaml:"donutRatio"`
	StartAngle float64  `yaml:"startAngle"` // degrees
	EdgeBand   *float64 `yaml:"edgeBand"`
	Bubbles    []Bubble `yaml:"bubbles"`

	Feedback FeedbackConfig `yaml:"feedback"`
}

// FeedbackConfig selects the feedback mode and initial parameters.
type FeedbackConfig struct {
	Mode      string   `yaml:"mode"` // continuous (default) or pulse
	Intensity *float64 `yaml:"intensity"`
	Sharpness *float64 `yaml:"sharpness"`
}

// UnmarshalYAML accepts bubbles as {x, y, r} mappings.
func (b *Bubble) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
		R float64 `yaml:"r"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*b = Bubble{X: raw.X, Y: raw.Y, Radius: raw.R}
	return nil
}

// LoadWidgetConfigs parses a YAML document holding a list of widgets under a
// top-level "widgets" key.
func LoadWidgetConfigs(data []byte) ([]WidgetConfig, error) {
	var doc struct {
		Widgets []WidgetConfig `yaml:"widgets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse widget config: %w", err)
	}
	if len(doc.Widgets) == 0 {
		return nil, fmt.Errorf("parse widget config: no widgets")
	}
	for i, wc := range doc.Widgets {
		if _, err := wc.Chart(); err != nil {
			return nil, fmt.Errorf("parse widget config: widget %d: %w", i, err)
		}
		if _, err := wc.Feedback.FeedbackMode(); err != nil {
			return nil, fmt.Errorf("parse widget config: widget %d: %w", i, err)
		}
	}
	return doc.Widgets, nil
}

// Chart builds the Chart described by the config.
func (c WidgetConfig) Chart() (Chart, error) {
	switch c.Kind {
	case "bar":
		ch := DefaultBarChart()
		ch.Values = c.Values
		setKnob(&ch.Padding, c.Padding)
		setKnob(&ch.Gap, c.Gap)
		setKnob(&ch.MaxValue, c.MaxValue)
		return ch.Normalize(), nil
	case "stacked":
		ch := DefaultStackedBarChart()
		ch.Values = c.Values
		setKnob(&ch.Padding, c.Padding)
		setKnob(&ch.Spacing, c.Spacing)
		return ch.Normalize(), nil
	case "pie":
		ch := DefaultPieChart()
		ch.Values = c.Values
		setKnob(&ch.Padding, c.Padding)
		setKnob(&ch.Gap, c.Gap)
		setKnob(&ch.Separation, c.Separation)
		setKnob(&ch.DonutRatio, c.DonutRatio)
		ch.Donut = c.Donut
		ch.StartAngle = c.StartAngle * fullTurn / 360
		return ch.Normalize(), nil
	case "bubble":
		ch := DefaultBubbleChart()
		ch.Bubbles = c.Bubbles
		setKnob(&ch.EdgeBand, c.EdgeBand)
		return ch.Normalize(), nil
	case "":
		return nil, fmt.Errorf("missing chart kind")
	default:
		return nil, fmt.Errorf("unknown chart kind %q", c.Kind)
	}
}

// FeedbackMode returns the configured mode.
func (c FeedbackConfig) FeedbackMode() (FeedbackMode, error) {
	switch c.Mode {
	case "", "continuous":
		return ModeContinuous, nil
	case "pulse":
		return ModePulse, nil
	default:
		return ModeContinuous, fmt.Errorf("unknown feedback mode %q", c.Mode)
	}
}

// Params returns the configured initial parameters, defaulting each unset
// one to DefaultParams.
func (c FeedbackConfig) Params() Params {
	p := DefaultParams
	setKnob(&p.Intensity, c.Intensity)
	setKnob(&p.Sharpness, c.Sharpness)
	return p.Clamp()
}

// NewWidget builds a widget from the config, driving device.
func (c WidgetConfig) NewWidget(bounds Rect, device Device) (*Widget, error) {
	chart, err := c.Chart()
	if err != nil {
		return nil, fmt.Errorf("widget %q: %w", c.Name, err)
	}
	mode, err := c.Feedback.FeedbackMode()
	if err != nil {
		return nil, fmt.Errorf("widget %q: %w", c.Name, err)
	}
	fb := NewController(device, mode)
	fb.SetParams(c.Feedback.Params())
	return NewWidget(chart, bounds, fb), nil
}

func setKnob(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
