package target

import "strings"

// fold 依次把逗号分隔的每一项交给 step 累加，遇到第一个错误立即返回
func fold[T any](raw string, acc []T, step func([]T, string) ([]T, error)) ([]T, error) {
	for _, token := range strings.Split(raw, ",") {
		var err error
		if acc, err = step(acc, token); err != nil {
			return nil, err
		}
	}
	return acc, nil
}
