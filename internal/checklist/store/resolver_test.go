package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPooledResolver(t *testing.T) {
	r := PooledResolver{Dir: "a11y-checklists"}

	t.Run("derives file from identity", func(t *testing.T) {
		path, err := r.Resolve("components-button--primary", "src/components/Button.stories.tsx")
		require.NoError(t, err)
		assert.Equal(t, "a11y-checklists/components-button--primary.a11y.json", path)
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := r.Resolve("x", "")
		require.NoError(t, err)
		b, err := r.Resolve("x", "some/other/path.tsx")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("sanitizes identity", func(t *testing.T) {
		path, err := r.Resolve("pages/Admin Panel", "")
		require.NoError(t, err)
		assert.Equal(t, "a11y-checklists/pages-Admin-Panel.a11y.json", path)
	})

	t.Run("rejects empty identity", func(t *testing.T) {
		_, err := r.Resolve("", "src/Button.tsx")
		assert.Error(t, err)
	})
}

func TestColocatedResolver(t *testing.T) {
	r := ColocatedResolver{}

	cases := []struct {
		name          string
		componentPath string
		want          string
	}{
		{"tsx component", "src/components/Button.tsx", "src/components/Button.a11y.json"},
		{"stories file loses whole suffix", "src/components/Button.stories.tsx", "src/components/Button.a11y.json"},
		{"stories js", "src/Card.stories.js", "src/Card.a11y.json"},
		{"vue component", "src/widgets/Picker.vue", "src/widgets/Picker.a11y.json"},
		{"case-insensitive extension", "src/Legacy.JSX", "src/Legacy.a11y.json"},
		{"leading dot-slash stripped", "./src/Button.tsx", "src/Button.a11y.json"},
		{"root-level file", "App.jsx", "App.a11y.json"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.Resolve("ignored-identity", tc.componentPath)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("rejects empty path", func(t *testing.T) {
		_, err := r.Resolve("id", "")
		assert.Error(t, err)
	})
}
