package req

import (
	"encoding/json"
	"io"
)

// Decode читает JSON тело запроса в T, лишние поля - ошибка
func Decode[T any](body io.ReadCloser) (T, error) {
	defer body.Close()

	var v T
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, err
	}
	return v, nil
}
