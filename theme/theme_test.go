package theme

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSS(t *testing.T) {
	t.Run("known themes append overlay after one newline", func(t *testing.T) {
		for _, name := range Names() {
			t.Run(string(name), func(t *testing.T) {
				overlay, ok := Overlay(name)
				require.True(t, ok)
				require.NotEmpty(t, overlay)

				css := CSS(name)
				assert.True(t, strings.HasPrefix(css, Base()))
				assert.Equal(t, Base()+"\n"+overlay, css)
			})
		}
	})

	t.Run("empty name yields base only", func(t *testing.T) {
		assert.Equal(t, Base(), CSS(""))
	})

	t.Run("unknown name yields base only", func(t *testing.T) {
		assert.Equal(t, Base(), CSS("solarized"))
		assert.Equal(t, Base(), CSS("Dracula"))
	})

	t.Run("deterministic across goroutines", func(t *testing.T) {
		want := CSS(Monokai)
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, want, CSS(Monokai))
			}()
		}
		wg.Wait()
	})
}

func TestBase(t *testing.T) {
	assert.Contains(t, Base(), ".swagger-ui")
	assert.False(t, strings.HasSuffix(Base(), "\n"))
}

func TestOverlay(t *testing.T) {
	css, ok := Overlay(Dracula)
	assert.True(t, ok)
	assert.Contains(t, css, "#282a36")

	css, ok = Overlay("unknown")
	assert.False(t, ok)
	assert.Empty(t, css)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 7)

	seen := make(map[Name]bool)
	for _, n := range names {
		assert.True(t, n.Valid(), "%s should be valid", n)
		assert.False(t, seen[n], "%s listed twice", n)
		seen[n] = true
	}

	assert.False(t, Name("").Valid())
	assert.False(t, Name("light").Valid())
}
