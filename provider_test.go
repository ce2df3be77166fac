package skincfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skincfg"
)

type stubTexture string

func (s stubTexture) TextureName() string { return string(s) }

type stubTextureStore map[string]stubTexture

func (s stubTextureStore) LookupTexture(name string) (skincfg.Texture, bool) {
	tex, ok := s[name]
	return tex, ok
}

func TestProvider(t *testing.T) {
	t.Run("GetConfig Delegates To Chain", func(t *testing.T) {
		store := skincfg.NewSkinStore()
		store.SetSetting("CursorExpand", "1")
		provider := skincfg.NewProvider(skincfg.NewSource("user", store))

		result := skincfg.GetConfig[bool](provider, skincfg.SettingKey("CursorExpand"))
		require.NotNil(t, result)

		value, ok := result.Value()
		assert.True(t, ok)
		assert.True(t, value)
	})

	t.Run("SetSources Rebuilds The Chain", func(t *testing.T) {
		user := skincfg.NewSkinStore()
		user.SetSetting("Name", "user skin")
		provider := skincfg.NewProvider(skincfg.NewSource("user", user))

		before := provider.Chain()

		beatmap := skincfg.NewSkinStore()
		beatmap.SetSetting("Name", "beatmap skin")
		provider.SetSources(
			skincfg.NewSource("beatmap", beatmap),
			skincfg.NewSource("user", user),
		)

		after := provider.Chain()
		assert.NotSame(t, before, after)
		assert.Equal(t, 1, before.Len())
		assert.Equal(t, 2, after.Len())

		result := skincfg.GetConfig[string](provider, skincfg.SettingKey("Name"))
		require.NotNil(t, result)

		value, _ := result.Value()
		assert.Equal(t, "beatmap skin", value)
	})

	t.Run("Texture Pass Through", func(t *testing.T) {
		textures := stubTextureStore{"cursor": stubTexture("cursor")}
		provider := skincfg.NewBuilder().
			WithStore("user", skincfg.NewSkinStore()).
			WithTextures(textures).
			MustBuild()

		tex, ok := provider.Texture("cursor")
		require.True(t, ok)
		assert.Equal(t, "cursor", tex.TextureName())

		_, ok = provider.Texture("missing")
		assert.False(t, ok)
	})

	t.Run("Unconfigured Asset Stores Report Missing", func(t *testing.T) {
		provider := skincfg.NewProvider(skincfg.NewSource("user", skincfg.NewSkinStore()))

		_, ok := provider.Texture("cursor")
		assert.False(t, ok)

		_, ok = provider.Sample("hit")
		assert.False(t, ok)

		_, ok = provider.Component("score")
		assert.False(t, ok)
	})
}
