package skincfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skincfg"
)

func TestBindable(t *testing.T) {
	newChain := func() *skincfg.Chain {
		store := skincfg.NewSkinStore()
		store.SetSetting("Name", "my skin")
		return skincfg.NewChain(skincfg.NewSource("user", store))
	}

	t.Run("Fresh Container Per Lookup", func(t *testing.T) {
		chain := newChain()

		first := skincfg.Resolve[string](chain, skincfg.SettingKey("Name"))
		second := skincfg.Resolve[string](chain, skincfg.SettingKey("Name"))

		require.NotNil(t, first)
		require.NotNil(t, second)
		assert.NotSame(t, first, second)
	})

	t.Run("Set Notifies Subscribers In Order", func(t *testing.T) {
		result := skincfg.Resolve[string](newChain(), skincfg.SettingKey("Name"))
		require.NotNil(t, result)

		var seen []string
		result.OnChange(func(v string) { seen = append(seen, "first:"+v) })
		result.OnChange(func(v string) { seen = append(seen, "second:"+v) })

		result.Set("updated")
		assert.Equal(t, []string{"first:updated", "second:updated"}, seen)

		value, ok := result.Value()
		assert.True(t, ok)
		assert.Equal(t, "updated", value)
	})

	t.Run("Set Clears Null State", func(t *testing.T) {
		store := skincfg.NewSkinStore()
		store.SetNullSetting("Name")
		chain := skincfg.NewChain(skincfg.NewSource("user", store))

		result := skincfg.Resolve[string](chain, skincfg.SettingKey("Name"))
		require.NotNil(t, result)
		assert.True(t, result.IsNull())

		result.Set("now set")
		assert.False(t, result.IsNull())

		value, ok := result.Value()
		assert.True(t, ok)
		assert.Equal(t, "now set", value)
	})
}
