package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sliceOf(items ...string) *[]string { return &items }

func TestUpdateProfileInputValidate(t *testing.T) {
	longBio := strings.Repeat("a", 301)
	okBio := strings.Repeat("a", 300)
	// 300文字（バイト数では900）— 文字数で数えること
	okBioJa := strings.Repeat("あ", 300)
	longBioJa := strings.Repeat("あ", 301)

	tests := []struct {
		name    string
		input   UpdateProfileInput
		wantErr bool
	}{
		{"空の更新は有効", UpdateProfileInput{}, false},
		{"画像3枚は有効", UpdateProfileInput{Images: sliceOf("a.png", "b.png", "c.png")}, false},
		{"画像4枚は無効", UpdateProfileInput{Images: sliceOf("a.png", "b.png", "c.png", "d.png")}, true},
		{"300文字の紹介文は有効", UpdateProfileInput{Bio: &okBio}, false},
		{"301文字の紹介文は無効", UpdateProfileInput{Bio: &longBio}, true},
		{"日本語300文字の紹介文は有効", UpdateProfileInput{Bio: &okBioJa}, false},
		{"日本語301文字の紹介文は無効", UpdateProfileInput{Bio: &longBioJa}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
