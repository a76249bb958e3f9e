// Package usecase はpostsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPostNotFound は指定されたIDの投稿が存在しない場合に返されます。
	ErrPostNotFound = errors.New("post not found")

	// ErrForbidden は投稿者以外が編集・削除を試みた場合に返されます。
	// NotFoundとは区別して返し、クライアントが「存在しない」と
	// 「権限がない」を判別できるようにします。
	ErrForbidden = errors.New("not the owner of this post")
)

// ValidationError は入力値の検証エラーを表します。
// どのフィールドが不正かをFieldsで保持します。
type ValidationError struct {
	Fields []string
}

// Error はerrorインターフェースを実装します。
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}

// IsValidationError はerrがValidationErrorかどうかを判定します。
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
