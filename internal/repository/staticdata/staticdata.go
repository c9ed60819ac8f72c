// Package staticdata загружает авторские JSON-файлы (каталог, партии,
// депозиты) и отдаёт их как доменные коллекции. Это граница данных:
// файлы декодируются и валидируются здесь, бизнес-логика всегда
// получает уже проверенные структуры. Некорректное число или
// отсутствующий обязательный id — ошибка загрузки, а не тихая
// деградация во время показа.
package staticdata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"atelier-backoffice/internal/domain"
)

var validate = validator.New()

// loadJSON читает и декодирует файл, затем валидирует результат.
func loadJSON(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", domain.ErrDataLoad, path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: decode %s: %v", domain.ErrDataLoad, path, err)
	}
	if err := validate.Struct(target); err != nil {
		return fmt.Errorf("%w: validate %s: %v", domain.ErrDataLoad, path, err)
	}
	return nil
}
