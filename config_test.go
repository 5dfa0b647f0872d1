package mpctui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"narrow panel", func(c *Config) { c.Panel.Width = 1 }},
		{"short panel", func(c *Config) { c.Panel.Height = 3 }},
		{"negative poll", func(c *Config) { c.PollTimeout = -time.Millisecond }},
		{"unlabelled field", func(c *Config) { c.Form.Fields = []Field{{Value: "x"}} }},
		{"unknown theme", func(c *Config) { c.Theme = "neon" }},
		{"unknown border", func(c *Config) { c.Border = "double" }},
		{"too many actions", func(c *Config) {
			c.Form.Actions = make([]string, 16)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestConfigValidateEdges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Panel = PanelSize{Width: 2, Height: 4}
	cfg.PollTimeout = 0
	cfg.Form.Actions = make([]string, 15)
	cfg.Form.Fields = nil
	cfg.Theme = ""
	cfg.Border = ""

	assert.NoError(t, cfg.Validate())
}

func TestThemeByName(t *testing.T) {
	for name, want := range map[string]Theme{
		"":           ThemeDefault,
		"default":    ThemeDefault,
		"mono":       ThemeMonochrome,
		"monochrome": ThemeMonochrome,
		"classic":    ThemeClassic,
	} {
		got, err := ThemeByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ThemeByName("solarized")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestBorderByName(t *testing.T) {
	b, err := BorderByName("rounded")
	require.NoError(t, err)
	assert.Equal(t, BorderRounded, b)

	b, err = BorderByName("")
	require.NoError(t, err)
	assert.Equal(t, BorderSingle, b)

	_, err = BorderByName("thick")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestThemePairs(t *testing.T) {
	assert.Equal(t, ThemeDefault.Regular, ThemeDefault.Pair(pairFor(false)))
	assert.Equal(t, ThemeDefault.Highlight, ThemeDefault.Pair(pairFor(true)))
	assert.True(t, ThemeDefault.Highlight.Attr.Has(AttrInverse))
	assert.True(t, ThemeMonochrome.Highlight.Attr.Has(AttrBold))
	assert.True(t, ThemeMonochrome.Highlight.Attr.Has(AttrUnderline))
	assert.False(t, ThemeMonochrome.Highlight.Attr.Has(AttrInverse))
}

func TestThemeClassic(t *testing.T) {
	assert.Equal(t, White, ThemeClassic.Regular.FG)
	assert.Equal(t, Black, ThemeClassic.Regular.BG)
	assert.Equal(t, Black, ThemeClassic.Highlight.FG)
	assert.Equal(t, White, ThemeClassic.Highlight.BG)

	cfg := DefaultConfig()
	cfg.Theme = "classic"
	s := NewMemSurface(100, 24)
	app, err := NewApp(s, cfg)
	require.NoError(t, err)
	require.NoError(t, app.Step())
	require.NoError(t, app.Step())

	buf := s.Buffer()
	assert.Equal(t, ThemeClassic.Border, buf.Get(30, 0).Style)
	assert.Equal(t, ThemeClassic.Regular, buf.Get(31, 2).Style, "label")
	assert.Equal(t, ThemeClassic.Highlight, buf.Get(36, 2).Style, "focused value")
	assert.Equal(t, ThemeClassic.Hint, buf.Get(40, 14).Style)
}
