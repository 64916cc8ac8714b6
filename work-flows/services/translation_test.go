package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeTranslator(source, target string, fn translateFunc) *Translator {
	tr := NewTranslator(source, target)
	tr.translate = fn
	return tr
}

func TestTranslatorTransform(t *testing.T) {
	var gotSource, gotTarget string
	tr := fakeTranslator("en", "vi", func(text, source, target string) (string, error) {
		gotSource, gotTarget = source, target
		return "[" + target + "] " + text, nil
	})

	out, err := tr.Transform(context.Background(), "Play scales")
	require.NoError(t, err)
	assert.Equal(t, "[vi] Play scales", out)
	assert.Equal(t, "en", gotSource)
	assert.Equal(t, "vi", gotTarget)
}

func TestTranslatorSkipsWhenNothingToDo(t *testing.T) {
	calls := 0
	fn := func(text, source, target string) (string, error) {
		calls++
		return text, nil
	}

	out, err := fakeTranslator("en", "en", fn).Translate("Play scales")
	require.NoError(t, err)
	assert.Equal(t, "Play scales", out)

	out, err = fakeTranslator("en", "vi", fn).Translate("   ")
	require.NoError(t, err)
	assert.Empty(t, out)

	assert.Equal(t, 0, calls)
}

func TestTranslatorWrapsErrors(t *testing.T) {
	tr := fakeTranslator("en", "es", func(string, string, string) (string, error) {
		return "", errors.New("rate limited")
	})

	_, err := tr.Transform(context.Background(), "Play scales")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "translation failed: rate limited")
}

func TestTranslatorHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fakeTranslator("en", "es", nil).Transform(ctx, "Play scales")
	assert.ErrorIs(t, err, context.Canceled)
}
