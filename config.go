package reasonify

import (
	"sync"

	"github.com/riverfjs/reasonify-go/internal/types"
)

// 导出类型别名
type MarkerPair = types.MarkerPair
type Span = types.Span
type RenderConfig = types.RenderConfig

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
//
// The returned value is shared; use WithConfig with a copy to customise it.
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}

// DefaultMarkerPairs returns the recognised reasoning marker pairs, in order.
func DefaultMarkerPairs() []MarkerPair {
	return types.DefaultMarkerPairs()
}
