// Package llm produces marketing copy for catalog products.
package llm

import (
	"context"
	"fmt"
	"strings"

	"technomaster/internal/model"

	"go.uber.org/zap"
)

// FallbackDescription is returned whenever generation fails; it asks the admin to type the text
const FallbackDescription = "Tavsif yaratishda xatolik yuz berdi. Iltimos qo'lda kiriting."

// Describer turns a product name and category into descriptive text.
// It never fails: errors surface as FallbackDescription.
type Describer interface {
	Describe(ctx context.Context, name string, category model.Category) string
}

// TextGenerator is a single prompt-in, text-out completion call
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// PromptDescriber builds the product prompt and delegates to a TextGenerator
type PromptDescriber struct {
	gen    TextGenerator
	logger *zap.Logger
}

// NewPromptDescriber creates a PromptDescriber
func NewPromptDescriber(gen TextGenerator, logger *zap.Logger) *PromptDescriber {
	return &PromptDescriber{gen: gen, logger: logger}
}

func (d *PromptDescriber) Describe(ctx context.Context, name string, category model.Category) string {
	text, err := d.gen.Generate(ctx, BuildPrompt(name, category))
	if err != nil {
		d.logger.Warn("description generation failed", zap.String("name", name), zap.Error(err))
		return FallbackDescription
	}
	text = strings.TrimSpace(text)
	if text == "" {
		d.logger.Warn("description generation returned no text", zap.String("name", name))
		return FallbackDescription
	}
	return text
}

// BuildPrompt asks for at most two sentences of Uzbek advertising copy
func BuildPrompt(name string, category model.Category) string {
	return fmt.Sprintf(`Menga quyidagi kompyuter xizmati yoki mahsuloti uchun qisqa,
jozibali va o'zbek tilida reklama matni yozib ber.
Maksimum 2 gap bo'lsin.

Mahsulot nomi: %s
Kategoriya: %s
`, name, category)
}

// StaticDescriber is used when no generator is configured
type StaticDescriber struct{}

func (StaticDescriber) Describe(context.Context, string, model.Category) string {
	return FallbackDescription
}
