package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/fastev/scripts"
	"go.starlark.net/starlark"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", scripts.Env{
			Predeclared: starlark.StringDict{
				"foo": starlark.MakeInt(42),
			},
		})
	})
}
