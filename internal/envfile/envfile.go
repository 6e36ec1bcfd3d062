// Package envfile перезаписывает .env файл фронтенда.
package envfile

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

const (
	DefaultFileName = ".env"
	APIBaseURLKey   = "EXPO_PUBLIC_API_BASE_URL"
)

// Writer - запись одной переменной в env-файл
type Writer struct {
	fs  afero.Fs
	key string
}

// NewWriter - конструктор для Writer
func NewWriter(fs afero.Fs, key string) *Writer {
	return &Writer{fs: fs, key: key}
}

// Key возвращает имя записываемой переменной.
func (w *Writer) Key() string {
	return w.key
}

// Write полностью заменяет содержимое файла строкой KEY="value" и переводом строки.
// Ошибки файловой системы не перехватываются.
func (w *Writer) Write(path, value string) (err error) {
	content, err := godotenv.Marshal(map[string]string{w.key: value})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", w.key, err)
	}

	file, err := w.fs.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		// Файл закрывается в любом случае, ошибка закрытия важна только при удачной записи
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if _, err = file.WriteString(content + "\n"); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// Current читает текущее значение переменной, если файл уже есть.
func (w *Writer) Current(path string) (string, bool, error) {
	file, err := w.fs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	defer file.Close()

	values, err := godotenv.Parse(file)
	if err != nil {
		return "", false, fmt.Errorf("parse %s: %w", path, err)
	}

	value, ok := values[w.key]
	return value, ok, nil
}
