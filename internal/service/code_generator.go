package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/avc-dev/shortlink/internal/model"
)

// CodeGenerator генерирует случайные коды из алфавита URL-safe base64.
// Каждая позиция кода равномерно распределена по 64 символам.
type CodeGenerator struct {
	entropy io.Reader
}

// NewCodeGenerator создает генератор поверх crypto/rand
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{
		entropy: rand.Reader,
	}
}

// GenerateCode генерирует код длины length.
// Код может содержать '-' и '_', проверка формата остаётся за вызывающим.
func (g *CodeGenerator) GenerateCode(length int) (model.Code, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid code length %d", length)
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(g.entropy, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(buf)

	return model.Code(encoded[:length]), nil
}
