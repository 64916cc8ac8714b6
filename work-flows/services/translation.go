package services

import (
	"context"
	"fmt"
	"strings"

	googletranslatefree "github.com/bas24/googletranslatefree"
)

type translateFunc func(text, sourceLang, targetLang string) (string, error)

type Translator struct {
	sourceLang string
	targetLang string
	translate  translateFunc
}

func NewTranslator(sourceLang, targetLang string) *Translator {
	if sourceLang == "" {
		sourceLang = "auto"
	}
	return &Translator{
		sourceLang: sourceLang,
		targetLang: targetLang,
		translate:  googletranslatefree.Translate,
	}
}

func (t *Translator) TargetLanguage() string {
	return t.targetLang
}

func (t *Translator) Translate(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if t.targetLang == "" || t.targetLang == t.sourceLang {
		return text, nil
	}

	translatedText, err := t.translate(text, t.sourceLang, t.targetLang)
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}

	return translatedText, nil
}

// Transform translates a practice plan before it is rendered.
func (t *Translator) Transform(ctx context.Context, plan string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return t.Translate(plan)
}
