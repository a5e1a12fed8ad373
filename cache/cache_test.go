package cache

import (
	"testing"

	"github.com/matryer/is"

	"github.com/gridrush/gridrush/config"
)

func TestLoadOnce(t *testing.T) {
	is := is.New(t)
	Reset()
	t.Cleanup(Reset)

	cfg := config.DefaultConfig()
	calls := 0
	loader := func(cfg *config.Config, key string) (any, error) {
		calls++
		return key + "-object", nil
	}

	obj, err := Load(&cfg, "vocabulary:english", loader)
	is.NoErr(err)
	is.Equal(obj, "vocabulary:english-object")

	obj, err = Load(&cfg, "vocabulary:english", loader)
	is.NoErr(err)
	is.Equal(obj, "vocabulary:english-object")
	is.Equal(calls, 1)

	_, err = Load(&cfg, "vocabulary:italian", loader)
	is.NoErr(err)
	is.Equal(calls, 2)
}
