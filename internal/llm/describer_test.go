package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"technomaster/internal/model"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	text   string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.text, f.err
}

func TestPromptDescriber_ReturnsTrimmedText(t *testing.T) {
	gen := &fakeGenerator{text: "  Tez va sifatli xizmat.\n"}
	d := NewPromptDescriber(gen, zap.NewNop())

	got := d.Describe(context.Background(), "SSD O'rnatish", model.CategoryHardware)

	assert.Equal(t, "Tez va sifatli xizmat.", got)
	assert.Contains(t, gen.prompt, "Mahsulot nomi: SSD O'rnatish")
	assert.Contains(t, gen.prompt, "Kategoriya: hardware")
}

func TestPromptDescriber_FallbackOnError(t *testing.T) {
	d := NewPromptDescriber(&fakeGenerator{err: errors.New("quota exceeded")}, zap.NewNop())

	assert.Equal(t, FallbackDescription, d.Describe(context.Background(), "X", model.CategoryRepair))
}

func TestPromptDescriber_FallbackOnEmpty(t *testing.T) {
	d := NewPromptDescriber(&fakeGenerator{text: " \n "}, zap.NewNop())

	assert.Equal(t, FallbackDescription, d.Describe(context.Background(), "X", model.CategorySoftware))
}

func TestStaticDescriber(t *testing.T) {
	assert.Equal(t, FallbackDescription, StaticDescriber{}.Describe(context.Background(), "X", model.CategoryConsulting))
}

func TestBuildPrompt_AsksForTwoSentences(t *testing.T) {
	p := BuildPrompt("Windows O'rnatish", model.CategorySoftware)
	assert.True(t, strings.Contains(p, "Maksimum 2 gap"))
}

func TestNewGeminiGenerator_RequiresKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), "", "")
	assert.Error(t, err)
}
