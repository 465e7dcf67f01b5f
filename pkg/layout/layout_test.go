package layout

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"side-by-side", SideBySide, false},
		{"lr", SideBySide, false},
		{"LR", SideBySide, false},
		{"⿰", SideBySide, false},
		{"stacked", Stacked, false},
		{"tb", Stacked, false},
		{" top-bottom ", Stacked, false},
		{"⿱", Stacked, false},
		{"", 0, true},
		{"diagonal", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKindAlternate(t *testing.T) {
	if SideBySide.Alternate() != Stacked {
		t.Error("side-by-side should alternate to stacked")
	}
	if Stacked.Alternate() != SideBySide {
		t.Error("stacked should alternate to side-by-side")
	}
	if SideBySide.Tag() != "lr" || Stacked.Tag() != "tb" {
		t.Error("unexpected tags")
	}
}

func TestKindText(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("tb")); err != nil || k != Stacked {
		t.Errorf("UnmarshalText(tb) = %v, %v", k, err)
	}
	if err := k.UnmarshalText([]byte("nope")); err == nil {
		t.Error("UnmarshalText should reject unknown kinds")
	}
	b, _ := SideBySide.MarshalText()
	if string(b) != "side-by-side" {
		t.Errorf("MarshalText() = %q", b)
	}
}

func TestNormalizeClamps(t *testing.T) {
	tests := []struct {
		name  string
		in    Config
		check func(Config) bool
	}{
		{"left width high", Config{LeftWidthRatio: 2}, func(c Config) bool { return c.LeftWidthRatio == 0.9 }},
		{"left width low", Config{LeftWidthRatio: 0}, func(c Config) bool { return c.LeftWidthRatio == 0.05 }},
		{"outer margin high", Config{OuterMarginRatio: 0.5}, func(c Config) bool { return c.OuterMarginRatio == 0.2 }},
		{"outer margin negative", Config{OuterMarginRatio: -1}, func(c Config) bool { return c.OuterMarginRatio == 0 }},
		{"inset high", Config{SlotInsetRatio: 0.9}, func(c Config) bool { return c.SlotInsetRatio == 0.4 }},
		{"inset nan", Config{SlotInsetRatio: math.NaN()}, func(c Config) bool { return c.SlotInsetRatio == DefaultSlotInsetRatio }},
		{"size zero", Config{Size: 0}, func(c Config) bool { return c.Size == DefaultSize }},
		{"size inf", Config{Size: math.Inf(1)}, func(c Config) bool { return c.Size == DefaultSize }},
		{"height zero", Config{HeightRatio: 0}, func(c Config) bool { return c.HeightRatio == DefaultHeightRatio }},
		{"height above one", Config{HeightRatio: 1.5}, func(c Config) bool { return c.HeightRatio == DefaultHeightRatio }},
		{"top high", Config{TopHeightRatio: 1}, func(c Config) bool { return c.TopHeightRatio == 0.95 }},
		{"align baseline", Config{Align: "BASELINE"}, func(c Config) bool { return c.Align == AlignBaseline }},
		{"align unknown", Config{Align: "top"}, func(c Config) bool { return c.Align == AlignCenter }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if !tt.check(got) {
				t.Errorf("Normalize() = %+v", got)
			}
		})
	}
}

func TestNormalizeKeepsDefaults(t *testing.T) {
	if got := Default().Normalize(); got != Default() {
		t.Errorf("Normalize(Default()) = %+v, want unchanged", got)
	}
	if got := DriverConfig().Normalize(); got.GutterRatio != 0 {
		t.Errorf("driver gutter = %v, want 0", got.GutterRatio)
	}
}

func TestPlanSideBySide(t *testing.T) {
	cfg := Default()
	p := Plan(SideBySide, cfg)

	outer := 1024 * 0.1
	gutter := 1024 * 0.02
	totalW := 1024 - 2*outer - gutter
	totalH := 1024 * 0.82
	leftW := totalW * 0.35

	left, right := p.Slots[0], p.Slots[1]
	if !approx(left.X, outer) || !approx(left.W, leftW) {
		t.Errorf("left slot = %+v", left)
	}
	if !approx(right.X, outer+leftW+gutter) || !approx(right.W, totalW-leftW) {
		t.Errorf("right slot = %+v", right)
	}
	if !approx(left.Y, (1024-totalH)/2) || left.Y != right.Y || left.H != right.H || !approx(left.H, totalH) {
		t.Errorf("slots should share the vertical band: %+v %+v", left, right)
	}
	if !approx(right.Right(), 1024-outer) {
		t.Errorf("right slot should end at the outer margin: %v", right.Right())
	}

	inner := left.Inner()
	if !approx(inner.X, outer+leftW*0.06) || !approx(inner.W, leftW*(1-0.12)) {
		t.Errorf("inner rect = %+v", inner)
	}
	if inner.Y != left.Y || inner.H != left.H {
		t.Error("inset must not change the vertical extent")
	}
}

func TestPlanSideBySideMinimumWidth(t *testing.T) {
	cfg := Default()
	cfg.Size = 10
	cfg.OuterMarginRatio = 0.2
	cfg.GutterRatio = 0.5
	p := Plan(SideBySide, cfg)

	if total := p.Slots[0].W + p.Slots[1].W; !approx(total, 1) {
		t.Errorf("total slot width = %v, want the 1 unit floor", total)
	}
}

func TestPlanStacked(t *testing.T) {
	cfg := Default()
	p := Plan(Stacked, cfg)

	gutter := 1024 * 0.02
	usable := 1024 - gutter
	topH := usable * 0.33

	top, bottom := p.Slots[0], p.Slots[1]
	if top.X != 0 || top.Y != 0 || top.W != 1024 || !approx(top.H, topH) {
		t.Errorf("top slot = %+v", top)
	}
	if bottom.X != 0 || bottom.W != 1024 || !approx(bottom.Y, topH+gutter) || !approx(bottom.H, usable-topH) {
		t.Errorf("bottom slot = %+v", bottom)
	}
	if top.Inset != 0 || bottom.Inset != 0 {
		t.Error("stacked slots have no inset")
	}
	if !approx(bottom.Bottom(), 1024) {
		t.Errorf("bottom slot should end at the canvas edge: %v", bottom.Bottom())
	}
}

func TestPlanNormalizes(t *testing.T) {
	p := Plan(SideBySide, Config{LeftWidthRatio: 5})
	if p.Config.LeftWidthRatio != 0.9 || p.Size() != DefaultSize {
		t.Errorf("plan config not normalized: %+v", p.Config)
	}
}
